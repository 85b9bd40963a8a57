package shell

import "github.com/joshuapare/shellkit/ioctx"

// AssignCommand implements `var = value`, unconditionally overwriting var.
type AssignCommand struct{}

func (AssignCommand) Name() string { return "assign" }

func (AssignCommand) Validate(tokens []string) (bool, error) {
	return validateAssignment(tokens, "=")
}

func (AssignCommand) Execute(tokens []string, uc *ioctx.UserContext, _ *ioctx.IoContext, _ *Shell) error {
	uc.SetValue(tokens[0], tokens[2])
	return nil
}

// DefaultAssignCommand implements `var := value`, only setting var if it has
// no existing value.
type DefaultAssignCommand struct{}

func (DefaultAssignCommand) Name() string { return "default_assign" }

func (DefaultAssignCommand) Validate(tokens []string) (bool, error) {
	return validateAssignment(tokens, ":=")
}

func (DefaultAssignCommand) Execute(tokens []string, uc *ioctx.UserContext, _ *ioctx.IoContext, _ *Shell) error {
	uc.SetDefaultValue(tokens[0], tokens[2])
	return nil
}

// UnsetCommand implements `unset var [var ...]`.
type UnsetCommand struct{}

func (UnsetCommand) Name() string { return "unset" }

func (UnsetCommand) Validate(tokens []string) (bool, error) {
	if len(tokens) == 0 || tokens[0] != "unset" {
		return false, nil
	}
	if len(tokens) == 1 {
		return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidFormat, Format: "unset [var ...]"}
	}
	for _, v := range tokens[1:] {
		if !isVariableName(v) {
			return false, &CommandValidationError{Kind: CommandValidationErrKindInvalidVariableName, Var: v}
		}
	}
	return true, nil
}

func (UnsetCommand) Execute(tokens []string, uc *ioctx.UserContext, _ *ioctx.IoContext, _ *Shell) error {
	for _, v := range tokens[1:] {
		uc.RemoveValue(v)
	}
	return nil
}
