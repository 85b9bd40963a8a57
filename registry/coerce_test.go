package registry

import (
	"testing"

	"github.com/joshuapare/shellkit/class"
	"github.com/joshuapare/shellkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var holderTypeID = new(int)

// newHolderDescriptor is a class whose constructor takes a "User"-typed
// argument, to exercise coerceOne's default branch (resolving a class-typed
// argument as a registry path).
func newHolderDescriptor() *class.Descriptor {
	d := &class.Descriptor{
		Name:   "Holder",
		FQName: "demo.Holder",
		TypeID: holderTypeID,
	}
	d.Constructor = &class.Constructor{
		ParamTypes: []string{"User"},
		Invoke: func(args []value.Value) (*class.Instance, error) {
			return class.NewInstance(d, nil), nil
		},
	}
	return d
}

func newRegistryWithUserAndHolder(t *testing.T) *Registry {
	t.Helper()
	r := New()
	require.NoError(t, r.RegisterClass(newUserDescriptor()))
	require.NoError(t, r.RegisterClass(newHolderDescriptor()))
	return r
}

func TestClassTypedArgResolvesRelativeToRootNotPwd(t *testing.T) {
	r := newRegistryWithUserAndHolder(t)
	require.NoError(t, r.Mkdir("/", "users"))
	require.NoError(t, r.CreateParsed("/users", "u", "User", []string{"alice", "7"}))

	// pwd is "/users", but a relative arg like "u" is resolved against the
	// root, not against pwd: "/u" does not exist, so it is illegal
	// navigation (unknown path) rather than a silent resolve to "/users/u".
	err := r.CreateParsed("/users", "h", "Holder", []string{"u"})
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindIllegalPathNavigation, rerr.Kind)

	// An absolute path from root does resolve, regardless of pwd.
	require.NoError(t, r.CreateParsed("/users", "h2", "Holder", []string{"/users/u"}))
}

func TestClassTypedArgOnPlainDirectoryIsMissingAtPath(t *testing.T) {
	r := newRegistryWithUserAndHolder(t)
	require.NoError(t, r.Mkdir("/", "plain"))

	err := r.CreateParsed("/", "h", "Holder", []string{"/plain"})
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindMissingAtPath, rerr.Kind)
	assert.Equal(t, "instance", rerr.Expected)
}

func TestClassTypedArgWrongClassReportsFQNameAsGot(t *testing.T) {
	r := newRegistryWithUserAndHolder(t)
	require.NoError(t, r.CreateParsed("/", "u", "User", []string{"alice", "7"}))
	require.NoError(t, r.CreateParsed("/", "h1", "Holder", []string{"/u"}))

	err := r.CreateParsed("/", "h2", "Holder", []string{"/h1"})
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindInvalidCast, rerr.Kind)
	assert.Equal(t, "demo.Holder", rerr.Got)
}
