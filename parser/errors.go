package parser

import (
	"errors"
	"fmt"

	"git.sr.ht/~mango/tiny/lexer"
)

var errZeroStep = errors.New("a for-loop step of 0 never terminates")

// Error is a syntax error.  Parsing stops at the first one.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type errExpected struct {
	want string
	got  lexer.Token
}

func (e errExpected) Error() string {
	return fmt.Sprintf("Expected %s but got %s", e.want, e.got)
}

type errLexer string

func (e errLexer) Error() string {
	return string(e)
}

type errRange string

func (e errRange) Error() string {
	return fmt.Sprintf("integer literal ‘%s’ is out of range", string(e))
}
