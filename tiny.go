// Package tiny ties the lexer, parser and vm together.  It is what the
// command-line driver and the REPL use to turn source text into a running
// program.
package tiny

import (
	"os"

	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/lexer"
	"git.sr.ht/~mango/tiny/parser"
	"git.sr.ht/~mango/tiny/vm"
)

// Parse lexes and parses src.  Syntax errors are of type *parser.Error.
func Parse(src string) (ast.Program, error) {
	l := lexer.New(src)
	go l.Run()
	return parser.Parse(l.Out)
}

// ParseFile is like Parse, but reads the source from the named file.
func ParseFile(name string) (ast.Program, error) {
	bytes, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(string(bytes))
}

// Run parses src and runs it on m.  Nothing is executed if src contains a
// syntax error.  Runtime errors are of type *vm.Error.
func Run(m *vm.Vm, src string) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	return m.Run(prog)
}

// RunFile is like Run, but reads the source from the named file.
func RunFile(m *vm.Vm, name string) error {
	prog, err := ParseFile(name)
	if err != nil {
		return err
	}
	return m.Run(prog)
}
