package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPathBasic(t *testing.T) {
	p, err := canonicalPath("/a/b", "../c")
	require.NoError(t, err)
	assert.Equal(t, "/a/c", p)

	p, err = canonicalPath("/", "/x//y/./z")
	require.NoError(t, err)
	assert.Equal(t, "/x/y/z", p)
}

func TestCanonicalPathBeyondRoot(t *testing.T) {
	_, err := canonicalPath("/a", "../..")
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrKindIllegalPathNavigation, rerr.Kind)
}

func TestCanonicalPathAbsoluteReset(t *testing.T) {
	p, err := canonicalPath("/a/b/c", "/x/y")
	require.NoError(t, err)
	assert.Equal(t, "/x/y", p)
}

func TestCanonicalPathDotAndEmptySegmentsSkipped(t *testing.T) {
	p, err := canonicalPath("/a", "./b//./c/")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", p)
}

func TestCanonicalPathRejectsDotDotInPwd(t *testing.T) {
	_, err := canonicalPath("/a/../b", ".")
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrKindIllegalPathNavigation, rerr.Kind)
}

func TestCanonicalPathRootIsSlash(t *testing.T) {
	p, err := canonicalPath("/", ".")
	require.NoError(t, err)
	assert.Equal(t, "/", p)
}

func TestCanonicalPathPopBeyondRootFails(t *testing.T) {
	_, err := canonicalPath("/", "..")
	require.Error(t, err)
}
