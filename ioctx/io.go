package ioctx

import (
	"errors"
	"io"
)

// IoContext is the per-execution source identity, position, and byte
// streams: the source name used in diagnostics, 1-based line/column, and
// the underlying input reader / output writer.
type IoContext struct {
	Source string
	Line   int
	Column int

	input  io.Reader
	output io.Writer
	scratch [1]byte
}

// NewIoContext wraps input/output under the given source name, with line
// and column both starting at 0 (the lexer advances them as it reads).
func NewIoContext(source string, input io.Reader, output io.Writer) *IoContext {
	return &IoContext{Source: source, input: input, output: output}
}

// NextByte reads exactly one byte, returning (0, false, nil) at a clean EOF.
func (c *IoContext) NextByte() (byte, bool, error) {
	n, err := c.input.Read(c.scratch[:])
	if n == 1 {
		return c.scratch[0], true, nil
	}
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return 0, false, nil
}

// WriteStr writes s to the output sink.
func (c *IoContext) WriteStr(s string) error {
	_, err := io.WriteString(c.output, s)
	return err
}

// Output exposes the raw writer, for built-ins (like source) that hand the
// same sink to a nested IoContext.
func (c *IoContext) Output() io.Writer { return c.output }

// Input exposes the raw reader.
func (c *IoContext) Input() io.Reader { return c.input }
