package shell_test

import (
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/shellkit/class"
	"github.com/joshuapare/shellkit/ioctx"
	"github.com/joshuapare/shellkit/registry"
	"github.com/joshuapare/shellkit/shell"
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
			"username": {Get: func(inst *class.Instance) (value.Value, error) {
				u, _ := class.Downcast[*testUser](inst, testUserTypeID)
				return value.NewString(u.name), nil
			}},
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

func newTestShell(t *testing.T) *shell.Shell {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.RegisterClass(newUserDescriptor()))
	return shell.New(r)
}

func runShell(t *testing.T, sh *shell.Shell, script string) (string, *ioctx.UserContext, error) {
	t.Helper()
	uc := ioctx.NewUserContext()
	var out strings.Builder
	err := sh.Run("test", strings.NewReader(script), &out, uc)
	return out.String(), uc, err
}

func TestAssignSetsVariable(t *testing.T) {
	sh := newTestShell(t)
	_, uc, err := runShell(t, sh, "foo = bar\n")
	require.NoError(t, err)
	v, ok := uc.GetValue("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestDefaultAssignDoesNotOverwrite(t *testing.T) {
	sh := newTestShell(t)
	_, uc, err := runShell(t, sh, "foo = abc\nfoo := def\n")
	require.NoError(t, err)
	v, _ := uc.GetValue("foo")
	assert.Equal(t, "abc", v)
}

func TestDefaultAssignSetsWhenAbsent(t *testing.T) {
	sh := newTestShell(t)
	_, uc, err := runShell(t, sh, "foo := hij\n")
	require.NoError(t, err)
	v, _ := uc.GetValue("foo")
	assert.Equal(t, "hij", v)
}

func TestUnsetRemovesVariable(t *testing.T) {
	sh := newTestShell(t)
	_, uc, err := runShell(t, sh, "foo = bar\nunset foo\n")
	require.NoError(t, err)
	_, ok := uc.GetValue("foo")
	assert.False(t, ok)
}

func TestEchoWritesSpaceJoinedArgs(t *testing.T) {
	sh := newTestShell(t)
	out, _, err := runShell(t, sh, "v1 = abc\nv2 := hij\necho $v1 $v2\n")
	require.NoError(t, err)
	assert.Equal(t, "abc hij", out)
}

func TestMkdirAndCdAndPwd(t *testing.T) {
	sh := newTestShell(t)
	out, uc, err := runShell(t, sh, "mkdir /foo/bar/me\ncd /foo/bar/me\ncd ../..\npwd\n")
	require.NoError(t, err)
	assert.Equal(t, "/foo", out)
	assert.Equal(t, "/foo", uc.Pwd())
}

func TestLsListsCreatedDirectory(t *testing.T) {
	sh := newTestShell(t)
	out, _, err := runShell(t, sh, "mkdir /foo/bar\ncd /foo\nls\n")
	require.NoError(t, err)
	assert.Equal(t, "bar/\n", out)
}

func TestCreateAndExecuteMethod(t *testing.T) {
	sh := newTestShell(t)
	out, _, err := runShell(t, sh, "create /foo/bar demo.User jgreco 42\n/foo/bar/add 41\n")
	require.NoError(t, err)
	assert.Equal(t, "84", out)
}

func TestCreateWithWrongArgTypeIsRegistryError(t *testing.T) {
	sh := newTestShell(t)
	_, _, err := runShell(t, sh, "create /foo/bar demo.User jgreco notanumber\n")
	require.Error(t, err)
	serr, ok := err.(*shell.Error)
	require.True(t, ok)
	assert.Equal(t, shell.ErrKindRegistry, serr.Kind)
}

func TestSourceWithoutSubshellPropagatesVariables(t *testing.T) {
	sh := newTestShell(t)
	dir := t.TempDir()
	path := dir + "/sub.commands"
	require.NoError(t, writeFile(path, "v1 = foo\nv2 = bar\n"))

	_, uc, err := runShell(t, sh, "v1 = hello\nsource "+path+"\n")
	require.NoError(t, err)
	v1, _ := uc.GetValue("v1")
	v2, _ := uc.GetValue("v2")
	assert.Equal(t, "foo", v1)
	assert.Equal(t, "bar", v2)
}

func TestSourceSubshellIsolatesVariables(t *testing.T) {
	sh := newTestShell(t)
	dir := t.TempDir()
	path := dir + "/sub.commands"
	require.NoError(t, writeFile(path, "v1 = foo\nv2 = bar\n"))

	_, uc, err := runShell(t, sh, "v1 = hello\nsource -s "+path+"\n")
	require.NoError(t, err)
	v1, _ := uc.GetValue("v1")
	_, v2ok := uc.GetValue("v2")
	assert.Equal(t, "hello", v1)
	assert.False(t, v2ok)
}

func TestSourcePassesPositionalArguments(t *testing.T) {
	sh := newTestShell(t)
	dir := t.TempDir()
	path := dir + "/sub.commands"
	require.NoError(t, writeFile(path, "echo $0 $1\n"))

	out, _, err := runShell(t, sh, "source "+path+" alpha beta\n")
	require.NoError(t, err)
	assert.Equal(t, "alpha beta", out)
}

func TestUnknownCommandIsRegistryErrorViaExecute(t *testing.T) {
	sh := newTestShell(t)
	_, _, err := runShell(t, sh, "/does/not/exist\n")
	require.Error(t, err)
	serr, ok := err.(*shell.Error)
	require.True(t, ok)
	assert.Equal(t, shell.ErrKindRegistry, serr.Kind)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
