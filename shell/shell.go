// Package shell implements the command dispatcher: lexes a byte stream into
// token groups, matches each group against an ordered list of built-in
// commands, and executes the first match against a registry.Registry.
package shell

import (
	"io"

	"github.com/joshuapare/shellkit/ioctx"
	"github.com/joshuapare/shellkit/lexer"
	"github.com/joshuapare/shellkit/registry"
)

// Shell owns the object registry and the ordered list of commands tried
// against each token group. Commands are tried in order and the first whose
// Validate reports true wins; execute is deliberately last since it matches
// any non-empty token group.
type Shell struct {
	registry *registry.Registry
	commands []Command
	lexer    *lexer.Lexer
}

// New returns a Shell wired to registry with the default built-in command
// set, in claim order: assign, default_assign, unset, source, cd, mkdir,
// create, echo, pwd, ls, execute.
func New(reg *registry.Registry) *Shell {
	return &Shell{
		registry: reg,
		lexer:    lexer.New(),
		commands: []Command{
			AssignCommand{},
			DefaultAssignCommand{},
			UnsetCommand{},
			SourceCommand{},
			CdCommand{},
			MkdirCommand{},
			CreateCommand{},
			EchoCommand{},
			PwdCommand{},
			LsCommand{},
			ExecuteCommand{},
		},
	}
}

// AddCommand registers a user-defined command, tried after every other
// built-in but before the catch-all execute, which claims any non-empty
// token group.
func (sh *Shell) AddCommand(c Command) {
	last := len(sh.commands) - 1
	sh.commands = append(sh.commands[:last], c, sh.commands[last])
}

// Registry exposes the underlying registry.Registry for callers that need to
// register classes or inspect the tree directly.
func (sh *Shell) Registry() *registry.Registry { return sh.registry }

// Run lexes and executes every command in input against uc, writing command
// output to output, until the stream is exhausted.
func (sh *Shell) Run(source string, input io.Reader, output io.Writer, uc *ioctx.UserContext) error {
	ioc := ioctx.NewIoContext(source, input, output)
	return sh.Execute(uc, ioc)
}

// Execute drives the lex-match-execute loop over io until exhausted.
func (sh *Shell) Execute(uc *ioctx.UserContext, io *ioctx.IoContext) error {
	for {
		group, lerr := sh.lexer.Next(uc, io)
		if lerr != nil {
			return errLexer(lerr)
		}
		if group == nil {
			return nil
		}
		if err := sh.dispatch(group.Tokens, uc, io); err != nil {
			return err
		}
	}
}

func (sh *Shell) dispatch(tokens []string, uc *ioctx.UserContext, io *ioctx.IoContext) error {
	for _, c := range sh.commands {
		ok, verr := c.Validate(tokens)
		if verr != nil {
			return errCommandValidation(tokens, verr)
		}
		if !ok {
			continue
		}
		return c.Execute(tokens, uc, io, sh)
	}
	return nil
}
