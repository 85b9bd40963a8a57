package shell

import "github.com/joshuapare/shellkit/ioctx"

// EchoCommand writes its arguments back to the output, space-joined.
type EchoCommand struct{}

func (EchoCommand) Name() string { return "echo" }

func (EchoCommand) Validate(tokens []string) (bool, error) {
	return len(tokens) > 0 && tokens[0] == "echo", nil
}

func (EchoCommand) Execute(tokens []string, _ *ioctx.UserContext, io *ioctx.IoContext, _ *Shell) error {
	for i := 1; i < len(tokens); i++ {
		if i != 1 {
			if err := io.WriteStr(" "); err != nil {
				return errIo(tokens, err)
			}
		}
		if err := io.WriteStr(tokens[i]); err != nil {
			return errIo(tokens, err)
		}
	}
	return nil
}

// PwdCommand writes the current working directory to the output.
type PwdCommand struct{}

func (PwdCommand) Name() string { return "pwd" }

func (PwdCommand) Validate(tokens []string) (bool, error) {
	if len(tokens) == 0 || tokens[0] != "pwd" {
		return false, nil
	}
	if len(tokens) != 1 {
		return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidFormat, Format: "pwd"}
	}
	return true, nil
}

func (PwdCommand) Execute(tokens []string, uc *ioctx.UserContext, io *ioctx.IoContext, _ *Shell) error {
	if err := io.WriteStr(uc.Pwd()); err != nil {
		return errIo(tokens, err)
	}
	return nil
}
