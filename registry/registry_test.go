package registry

import (
	"testing"

	"github.com/joshuapare/shellkit/class"
	"github.com/joshuapare/shellkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUser struct {
	name string
	id   int32
}

var testUserTypeID = new(int)

func newUserDescriptor() *class.Descriptor {
	d := &class.Descriptor{
		Name:   "User",
		FQName: "demo.User",
		TypeID: testUserTypeID,
		Attributes: map[string]class.Attribute{
			"user_id": {Get: func(inst *class.Instance) (value.Value, error) {
				u, _ := class.Downcast[*testUser](inst, testUserTypeID)
				return value.NewInteger(int64(u.id)), nil
			}},
		},
		Methods: map[string]class.Method{
			"add_one": {
				ParamTypes: []string{"int"},
				AliasPath:  "add",
				Invoke: func(inst *class.Instance, args []value.Value) (value.Value, error) {
					n, _ := args[0].Integer()
					u, _ := class.Downcast[*testUser](inst, testUserTypeID)
					return value.NewInteger(int64(u.id) + n + 1), nil
				},
			},
			"doit": {
				Invoke: func(inst *class.Instance, args []value.Value) (value.Value, error) {
					return value.NewBoolean(true), nil
				},
			},
		},
	}
	d.Constructor = &class.Constructor{
		ParamTypes: []string{"string", "int"},
		Invoke: func(args []value.Value) (*class.Instance, error) {
			name, _ := args[0].String()
			id, _ := args[1].Integer()
			return class.NewInstance(d, &testUser{name: name, id: int32(id)}), nil
		},
	}
	return d
}

func newRegistryWithUser(t *testing.T) *Registry {
	t.Helper()
	r := New()
	require.NoError(t, r.RegisterClass(newUserDescriptor()))
	return r
}

func TestMkdirCreatesMissingParents(t *testing.T) {
	r := New()
	require.NoError(t, r.Mkdir("/", "foo/bar/me"))
	p, err := r.Path("/foo/bar/me")
	require.NoError(t, err)
	assert.Equal(t, "/foo/bar/me", p)
}

func TestMkdirDuplicateFails(t *testing.T) {
	r := New()
	require.NoError(t, r.Mkdir("/", "foo/bar"))
	err := r.Mkdir("/", "foo/bar")
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindDuplicatePath, rerr.Kind)
}

func TestCdNavigatesUpAndDown(t *testing.T) {
	r := New()
	require.NoError(t, r.Mkdir("/", "foo/bar/me"))
	pwd, err := r.Cd("/", "foo/bar/me")
	require.NoError(t, err)
	pwd, err = r.Cd(pwd, "../..")
	require.NoError(t, err)
	assert.Equal(t, "/foo", pwd)
}

func TestCdUnknownPathFails(t *testing.T) {
	r := New()
	_, err := r.Cd("/", "nope")
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindIllegalPathNavigation, rerr.Kind)
}

func TestLsListsChildrenSorted(t *testing.T) {
	r := New()
	require.NoError(t, r.Mkdir("/", "foo/bar"))
	entries, err := r.Ls("/foo", ".")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bar/", entries[0].Line)
}

func TestCreateInstanceAndMaterializesChildren(t *testing.T) {
	r := newRegistryWithUser(t)
	require.NoError(t, r.Mkdir("/", "foo"))
	require.NoError(t, r.CreateParsed("/foo", "bar", "User", []string{"alice", "7"}))

	entries, err := r.Ls("/foo/bar", ".")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.ElementsMatch(t, []string{"user_id", "add", "doit"}, names)

	v, err := r.Attr("/foo/bar", "user_id")
	require.NoError(t, err)
	id, _ := v.Integer()
	assert.Equal(t, int64(7), id)

	v, err = r.InvokeParsed("/foo/bar", "add", []string{"41"})
	require.NoError(t, err)
	sum, _ := v.Integer()
	assert.Equal(t, int64(49), sum)
}

func TestCreateInstanceAtExistingPlainDirectorySucceeds(t *testing.T) {
	r := newRegistryWithUser(t)
	require.NoError(t, r.Mkdir("/", "foo/bar"))
	err := r.CreateParsed("/foo", "bar", "User", []string{"alice", "7"})
	require.NoError(t, err, "installing an instance at an existing plain directory is allowed")
}

func TestCreateInstanceAtOccupiedPathFails(t *testing.T) {
	r := newRegistryWithUser(t)
	require.NoError(t, r.CreateParsed("/", "u", "User", []string{"alice", "7"}))
	err := r.CreateParsed("/", "u", "User", []string{"bob", "8"})
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindDuplicatePath, rerr.Kind)
}

func TestCreateParsedCoercionFailure(t *testing.T) {
	r := newRegistryWithUser(t)
	err := r.CreateParsed("/", "x", "User", []string{"alice", "abc"})
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindInvalidMethodParameter, rerr.Kind)
	assert.Equal(t, 1, rerr.ParamIndex)
	assert.Equal(t, "int", rerr.ParamType)
}

func TestAttrWrongPathFails(t *testing.T) {
	r := newRegistryWithUser(t)
	require.NoError(t, r.Mkdir("/", "plain"))
	_, err := r.Attr("/", "plain")
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindMissingAtPath, rerr.Kind)
	assert.Equal(t, "attribute", rerr.Expected)
}

func TestInvokeMethodWithoutArguments(t *testing.T) {
	r := newRegistryWithUser(t)
	require.NoError(t, r.CreateParsed("/", "u", "User", []string{"alice", "7"}))
	v, err := r.InvokeParsed("/u", "doit", nil)
	require.NoError(t, err)
	b, _ := v.Boolean()
	assert.True(t, b)
}

func TestUnknownClassFails(t *testing.T) {
	r := New()
	err := r.CreateParsed("/", "x", "Nope", nil)
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindUnknownClass, rerr.Kind)
}

func TestRegisterDuplicateClassFails(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterClass(newUserDescriptor()))
	err := r.RegisterClass(newUserDescriptor())
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, ErrKindDuplicateClass, rerr.Kind)
}
