package shell

import (
	"github.com/joshuapare/shellkit/ioctx"
)

// Command is one built-in operation the dispatcher can match a token group
// against. Validate reports whether tokens belong to this command at all
// (false) as opposed to belonging to it but being malformed (an error).
type Command interface {
	Name() string
	Validate(tokens []string) (bool, error)
	Execute(tokens []string, uc *ioctx.UserContext, io *ioctx.IoContext, sh *Shell) error
}

func isVariableName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		alpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if i == 0 {
			if !alpha && c != '_' {
				return false
			}
			continue
		}
		if !alpha && !digit && c != '_' {
			return false
		}
	}
	return true
}

// validateAssignment matches the 3-token `var <sign> value` shape shared by
// assign and default_assign, returning false (not an error) when the sign
// token doesn't match so the dispatcher can try the other command.
func validateAssignment(tokens []string, sign string) (bool, error) {
	if len(tokens) == 3 && tokens[1] == sign {
		if !isVariableName(tokens[0]) {
			return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidVariableName, Var: tokens[0]}
		}
		return true, nil
	}
	return false, nil
}
