package main

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// legacyCharmaps maps the --legacy-encoding flag's accepted values to their
// golang.org/x/text/encoding/charmap encoders.
var legacyCharmaps = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
}

// wrapLegacyEncoding returns w unchanged if name is empty, or a writer that
// transcodes UTF-8 command output to the named legacy charset before it
// reaches w.
func wrapLegacyEncoding(w io.Writer, name string) (io.Writer, error) {
	if name == "" {
		return w, nil
	}
	enc, ok := legacyCharmaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown --legacy-encoding %q", name)
	}
	return enc.NewEncoder().Writer(w), nil
}
