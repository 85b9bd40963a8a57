package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/shellkit/ioctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAndApplyTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pwd: /foo\nvariables:\n  v1: abc\narguments:\n  - one\n  - two\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	uc := ioctx.NewUserContext()
	cfg.ApplyTo(uc)

	assert.Equal(t, "/foo", uc.Pwd())
	v, ok := uc.GetValue("v1")
	require.True(t, ok)
	assert.Equal(t, "abc", v)
	a0, _ := uc.GetArgument(0)
	a1, _ := uc.GetArgument(1)
	assert.Equal(t, "one", a0)
	assert.Equal(t, "two", a1)
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestWrapLegacyEncodingPassthroughWhenEmpty(t *testing.T) {
	w, err := wrapLegacyEncoding(os.Stdout, "")
	require.NoError(t, err)
	assert.Same(t, io.Writer(os.Stdout), w)
}

func TestWrapLegacyEncodingUnknownNameErrors(t *testing.T) {
	_, err := wrapLegacyEncoding(os.Stdout, "not-a-real-charset")
	require.Error(t, err)
}
