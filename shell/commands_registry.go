package shell

import (
	"github.com/joshuapare/shellkit/ioctx"
	"github.com/joshuapare/shellkit/value"
)

// MkdirCommand implements `mkdir <dir>`, creating missing parents.
type MkdirCommand struct{}

func (MkdirCommand) Name() string { return "mkdir" }

func (MkdirCommand) Validate(tokens []string) (bool, error) {
	if len(tokens) == 0 || tokens[0] != "mkdir" {
		return false, nil
	}
	if len(tokens) != 2 {
		return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidFormat, Format: "mkdir <dir>"}
	}
	return true, nil
}

func (MkdirCommand) Execute(tokens []string, uc *ioctx.UserContext, _ *ioctx.IoContext, sh *Shell) error {
	if err := sh.registry.Mkdir(uc.Pwd(), tokens[1]); err != nil {
		return errRegistry(tokens, err)
	}
	return nil
}

// CdCommand implements `cd <dir>`.
type CdCommand struct{}

func (CdCommand) Name() string { return "cd" }

func (CdCommand) Validate(tokens []string) (bool, error) {
	if len(tokens) == 0 || tokens[0] != "cd" {
		return false, nil
	}
	if len(tokens) != 2 {
		return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidFormat, Format: "cd <dir>"}
	}
	return true, nil
}

func (CdCommand) Execute(tokens []string, uc *ioctx.UserContext, _ *ioctx.IoContext, sh *Shell) error {
	path, err := sh.registry.Cd(uc.Pwd(), tokens[1])
	if err != nil {
		return errRegistry(tokens, err)
	}
	uc.SetPwd(path)
	return nil
}

// CreateCommand implements `create <dir> <class> [args ...]`.
type CreateCommand struct{}

func (CreateCommand) Name() string { return "create" }

func (CreateCommand) Validate(tokens []string) (bool, error) {
	if len(tokens) == 0 || tokens[0] != "create" {
		return false, nil
	}
	if len(tokens) < 3 {
		return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidFormat, Format: "create <dir> <struct> [args ...]"}
	}
	return true, nil
}

func (CreateCommand) Execute(tokens []string, uc *ioctx.UserContext, _ *ioctx.IoContext, sh *Shell) error {
	args := tokens[3:]
	if err := sh.registry.CreateParsed(uc.Pwd(), tokens[1], tokens[2], args); err != nil {
		return errRegistry(tokens, err)
	}
	return nil
}

// LsCommand implements `ls [dir]`, listing the direct children of dir (or
// pwd), one rendered line per child.
type LsCommand struct{}

func (LsCommand) Name() string { return "ls" }

func (LsCommand) Validate(tokens []string) (bool, error) {
	if len(tokens) == 0 || tokens[0] != "ls" {
		return false, nil
	}
	if len(tokens) != 1 && len(tokens) != 2 {
		return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidFormat, Format: "ls [dir]"}
	}
	return true, nil
}

func (LsCommand) Execute(tokens []string, uc *ioctx.UserContext, io *ioctx.IoContext, sh *Shell) error {
	cd := "."
	if len(tokens) == 2 {
		cd = tokens[1]
	}
	entries, err := sh.registry.Ls(uc.Pwd(), cd)
	if err != nil {
		return errRegistry(tokens, err)
	}
	for _, e := range entries {
		if werr := io.WriteStr(e.Line + "\n"); werr != nil {
			return errIo(tokens, werr)
		}
	}
	return nil
}

// ExecuteCommand invokes the method referenced by the first token's path,
// writing the resulting value in the shell's doubled-brace wire format. It
// matches any tokens the other built-ins didn't, so it must be tried last by
// the dispatcher. Reading an attribute's value is not a shell built-in; it is
// only reachable through the Go-level Registry.Attr API.
type ExecuteCommand struct{}

func (ExecuteCommand) Name() string { return "execute" }

func (ExecuteCommand) Validate(tokens []string) (bool, error) {
	return len(tokens) > 0, nil
}

func (ExecuteCommand) Execute(tokens []string, uc *ioctx.UserContext, io *ioctx.IoContext, sh *Shell) error {
	path := tokens[0]
	args := tokens[1:]

	result, err := sh.registry.InvokeParsed(uc.Pwd(), path, args)
	if err != nil {
		return errRegistry(tokens, err)
	}

	if werr := io.WriteStr(FormatValue(result)); werr != nil {
		return errIo(tokens, werr)
	}
	return nil
}

// attributeReader is satisfied by *class.Instance, kept narrow here so
// formatInstanceInto can serialize the attributes of any value.Instance that
// offers them, without importing class.
type attributeReader interface {
	AttributeNames() []string
	GetAttr(name string) (value.Value, error)
}
