package shell

import "github.com/joshuapare/shellkit/lexer"

// CommandValidationErrKind enumerates why a command's tokens were rejected
// before execution.
type CommandValidationErrKind int

const (
	CommandValidationErrKindInvalidFormat CommandValidationErrKind = iota
	CommandValidationErrKindInvalidVariableName
)

// CommandValidationError is returned from Command.Validate when the tokens
// look like they are meant for this command but are malformed.
type CommandValidationError struct {
	Kind   CommandValidationErrKind
	Format string
	Var    string
}

func (e *CommandValidationError) Error() string {
	switch e.Kind {
	case CommandValidationErrKindInvalidFormat:
		return "invalid command format, expected: " + e.Format
	case CommandValidationErrKindInvalidVariableName:
		return "invalid variable name: " + e.Var
	default:
		return "invalid command"
	}
}

// CommandExecutionErrKind enumerates the shell-level (as opposed to registry-
// level) failures a built-in command can produce while executing.
type CommandExecutionErrKind int

const (
	CommandExecutionErrKindUnableToOpenFile CommandExecutionErrKind = iota
	CommandExecutionErrKindMaxSourceDepth
)

// CommandExecutionError reports a built-in command failure that isn't a
// registry or lexer error: a file that couldn't be opened, or a recursion
// guard trip.
type CommandExecutionError struct {
	Kind  CommandExecutionErrKind
	File  string
	Depth int
	Err   error
}

func (e *CommandExecutionError) Error() string {
	switch e.Kind {
	case CommandExecutionErrKindUnableToOpenFile:
		msg := "unable to open file: " + e.File
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		return msg
	case CommandExecutionErrKindMaxSourceDepth:
		return "source command invoked too many times recursively"
	default:
		return "command execution error"
	}
}

func (e *CommandExecutionError) Unwrap() error { return e.Err }

// ErrKind discriminates the five sources of failure Shell.Execute can
// surface, mirroring the original shell's error enum.
type ErrKind int

const (
	ErrKindLexer ErrKind = iota
	ErrKindCommandValidation
	ErrKindRegistry
	ErrKindIo
	ErrKindCommandExecution
)

// Error wraps whichever underlying error a command pipeline produced,
// tagging it with the source line when the failure is a lexer error (the
// wrapped *lexer.Error also carries the source name and column).
type Error struct {
	Kind   ErrKind
	Line   int
	Tokens []string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "shell error"
}

func (e *Error) Unwrap() error { return e.Err }

func errLexer(le *lexer.Error) *Error {
	return &Error{Kind: ErrKindLexer, Line: le.Line, Err: le}
}

func errCommandValidation(tokens []string, cause error) *Error {
	return &Error{Kind: ErrKindCommandValidation, Tokens: tokens, Err: cause}
}

func errRegistry(tokens []string, cause error) *Error {
	return &Error{Kind: ErrKindRegistry, Tokens: tokens, Err: cause}
}

func errIo(tokens []string, cause error) *Error {
	return &Error{Kind: ErrKindIo, Tokens: tokens, Err: cause}
}

func errCommandExecution(tokens []string, cause error) *Error {
	return &Error{Kind: ErrKindCommandExecution, Tokens: tokens, Err: cause}
}
