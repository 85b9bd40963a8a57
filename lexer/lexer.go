// Package lexer implements the byte-stream tokenizer: quoting, escapes, line
// continuation, comments, and inline variable/positional-argument expansion.
// It turns a byte stream plus a user context into a lazy sequence of token
// groups, one per logical command line.
package lexer

import "github.com/joshuapare/shellkit/ioctx"

// Lexer holds no state of its own; all per-stream state (line, column,
// reader, writer) lives on the ioctx.IoContext passed to Next, so the same
// Lexer value can drive multiple independent streams.
type Lexer struct{}

// New returns a Lexer.
func New() *Lexer { return &Lexer{} }

// Next reads and returns the next command from io, or (nil, nil) when the
// stream is exhausted with nothing pending.
func (l *Lexer) Next(uc *ioctx.UserContext, io *ioctx.IoContext) (*TokenGroup, *Error) {
	return lexCommand(uc, io)
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func lexCommand(uc *ioctx.UserContext, io *ioctx.IoContext) (*TokenGroup, *Error) {
	io.Line++
	io.Column = 1
	startLine := io.Line

	var token []byte
	tokenQuoted := false
	var tokens []string

	inQuotes := false
	inComment := false
	inBackslash := false

	finalize := func(force bool) *Error {
		if len(token) == 0 && !force {
			return nil
		}
		expanded, err := expand(uc, string(token), tokenQuoted, io.Source, startLine, io.Column)
		if err != nil {
			return err
		}
		tokens = append(tokens, expanded)
		token = token[:0]
		tokenQuoted = false
		return nil
	}

	for {
		b, ok, err := io.NextByte()
		if err != nil {
			return nil, newIoError(io.Source, io.Line, io.Column, err)
		}
		if !ok {
			if inQuotes {
				return nil, newErr(ErrKindUnterminatedQuote, io.Source, io.Line, io.Column)
			}
			if ferr := finalize(false); ferr != nil {
				return nil, ferr
			}
			if len(tokens) == 0 {
				return nil, nil
			}
			return &TokenGroup{Line: startLine, Tokens: tokens}, nil
		}
		io.Column++

		if b == '\n' {
			if inQuotes {
				return nil, newErr(ErrKindUnterminatedQuote, io.Source, io.Line, io.Column)
			}
			if ferr := finalize(false); ferr != nil {
				return nil, ferr
			}
			if !inBackslash && len(tokens) > 0 {
				return &TokenGroup{Line: startLine, Tokens: tokens}, nil
			}
			io.Line++
			io.Column = 1
			if len(tokens) == 0 && !inBackslash {
				startLine = io.Line
			}
			inQuotes = false
			inComment = false
			inBackslash = false
			continue
		}

		if inComment {
			continue
		}

		if inBackslash {
			inBackslash = false
			if !inQuotes {
				return nil, newEscError(io.Source, io.Line, io.Column, b)
			}
			switch b {
			case 'n':
				token = append(token, '\n')
			case '\\':
				token = append(token, '\\')
			case '"':
				token = append(token, '"')
			default:
				return nil, newEscError(io.Source, io.Line, io.Column, b)
			}
			continue
		}

		switch {
		case b == '\\':
			inBackslash = true
		case b == '"':
			inQuotes = !inQuotes
			if !inQuotes {
				tokenQuoted = true
				if ferr := finalize(true); ferr != nil {
					return nil, ferr
				}
			}
		case b == '#' && !inQuotes:
			if ferr := finalize(false); ferr != nil {
				return nil, ferr
			}
			inComment = true
		case isASCIISpace(b) && !inQuotes:
			if ferr := finalize(false); ferr != nil {
				return nil, ferr
			}
		default:
			token = append(token, b)
		}
	}
}
