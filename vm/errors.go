package vm

import (
	"errors"
	"fmt"
	"strings"

	"git.sr.ht/~mango/tiny/value"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrArithmetic   = errors.New("arithmetic fault")
	ErrUndeclared   = errors.New("undeclared variable")
)

// Error is a runtime error together with the line of the statement that
// raised it.  Execution never continues past one.
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

type errTypeMismatch struct {
	what string       // The operator or construct that was misused
	got  []value.Kind // The kinds it was given
}

func (e errTypeMismatch) Error() string {
	ks := make([]string, len(e.got))
	for i, k := range e.got {
		ks[i] = k.String()
	}

	if len(ks) == 1 {
		return fmt.Sprintf("Type mismatch: %s must be an integer, not %s",
			e.what, ks[0])
	}
	return fmt.Sprintf("Type mismatch: %s expects integers, not %s",
		e.what, strings.Join(ks, " and "))
}

type errDivByZero value.Integer

func (e errDivByZero) Error() string {
	return fmt.Sprintf("Attempt to divide %d by zero", value.Integer(e))
}

type errUndeclared string

func (e errUndeclared) Error() string {
	return fmt.Sprintf("Variable ‘%s’ is used before being declared", string(e))
}

func (_ errTypeMismatch) Unwrap() error { return ErrTypeMismatch }
func (_ errDivByZero) Unwrap() error    { return ErrArithmetic }
func (_ errUndeclared) Unwrap() error   { return ErrUndeclared }
