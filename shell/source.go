package shell

import (
	"os"

	"github.com/joshuapare/shellkit/ioctx"
)

// maxSourceRecursion bounds how many nested `source` commands may be active
// at once, guarding against a file that sources itself.
const maxSourceRecursion = 10

// SourceCommand implements `source [-s] <file> [args ...]`. Without -s,
// variables and pwd set while executing file are copied back into the
// calling context when it returns; with -s (subshell) they're discarded.
type SourceCommand struct{}

func (SourceCommand) Name() string { return "source" }

func (SourceCommand) Validate(tokens []string) (bool, error) {
	if len(tokens) == 0 || tokens[0] != "source" {
		return false, nil
	}
	n := len(tokens)
	if (n == 2 && tokens[1] != "-s") || n >= 3 {
		return true, nil
	}
	return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidFormat, Format: "source [-s] <file>"}
}

func (SourceCommand) Execute(tokens []string, uc *ioctx.UserContext, io *ioctx.IoContext, sh *Shell) error {
	subshell := tokens[1] == "-s"
	argStart := 2
	if subshell {
		argStart = 3
	}
	fileName := tokens[argStart-1]

	f, err := os.Open(fileName)
	if err != nil {
		return errCommandExecution(tokens, &CommandExecutionError{Kind: CommandExecutionErrKindUnableToOpenFile, File: fileName, Err: err})
	}
	defer f.Close()

	if uc.Depth() >= maxSourceRecursion {
		return errCommandExecution(tokens, &CommandExecutionError{Kind: CommandExecutionErrKindMaxSourceDepth, Depth: uc.Depth()})
	}

	childUc := uc.Clone()
	childUc.ClearArguments()
	for i := argStart; i < len(tokens); i++ {
		childUc.AddArgument(tokens[i])
	}
	childUc.IncDepth()

	childIo := ioctx.NewIoContext(fileName, f, io.Output())

	if err := sh.Execute(childUc, childIo); err != nil {
		return err
	}

	if !subshell {
		uc.SetPwd(childUc.Pwd())
		uc.ClearVariables()
		for k, v := range childUc.Variables() {
			uc.SetValue(k, v)
		}
	}

	return nil
}
