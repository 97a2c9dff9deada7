package vm

import (
	"io"
	"os"

	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/value"
)

// context is handed to every evaluation and execution function.  It is the
// only way they reach the outside world.
type context struct {
	out    io.Writer
	scope  Scope
	strict bool
}

// Vm runs programs against a single Scope.  The same Vm may run any number of
// programs; variables persist between them.
type Vm struct {
	Env Scope
	Out io.Writer

	// Strict makes reading an undeclared variable an error instead of
	// yielding the empty value
	Strict bool
}

// New returns a Vm with a fresh Env that prints to out.  A nil out means the
// standard output.
func New(out io.Writer) *Vm {
	if out == nil {
		out = os.Stdout
	}
	return &Vm{Env: NewEnv(), Out: out}
}

func (vm *Vm) ctx() context {
	return context{vm.Out, vm.Env, vm.Strict}
}

// Run executes the statements of prog in order.  The first error stops
// execution and is returned as an *Error.
func (vm *Vm) Run(prog ast.Program) error {
	return execStmts(prog, vm.ctx())
}

func (vm *Vm) Exec(s ast.Stmt) error {
	return execStmt(s, vm.ctx())
}

func (vm *Vm) Eval(e ast.Expr) (value.Value, error) {
	return eval(e, vm.ctx())
}

// Eval evaluates e against s.  Undeclared variables evaluate to the empty
// value.
func Eval(e ast.Expr, s Scope) (value.Value, error) {
	return eval(e, context{scope: s})
}
