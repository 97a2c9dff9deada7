package repl

import (
	"fmt"
	"strings"

	"git.sr.ht/~mango/opts"

	"git.sr.ht/~mango/tiny"
	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/value"
)

// A command is run with its name in args[0], like a process.
type command func(r *Repl, args []string) error

var commands = map[string]command{
	"dump":  dump,
	"help":  help,
	"load":  load,
	"quit":  quit,
	"reset": reset,
	"vars":  vars,
}

var helpText = `:vars [-k]      list variables, with their kinds if -k is given
:reset          forget all variables
:load file      run file in this session
:dump source    print the syntax tree of source
:help           print this message
:quit           leave the REPL
`

func vars(r *Repl, args []string) error {
	var kflag bool

	flags, optind, err := opts.GetLong(args, []opts.LongOpt{
		{Short: 'k', Long: "kinds", Arg: opts.None},
	})
	if err != nil {
		return err
	}
	for _, f := range flags {
		switch f.Key {
		case 'k':
			kflag = true
		}
	}
	if len(args[optind:]) != 0 {
		return errUsage("vars [-k]")
	}

	for _, name := range r.env.Names() {
		v, _ := r.env.Get(name)
		line := name + " = " + value.Quote(v)
		if kflag {
			line = v.Kind().String() + " " + line
		}
		if _, err := fmt.Fprintln(r.vm.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func reset(r *Repl, args []string) error {
	if len(args) != 1 {
		return errUsage("reset")
	}
	r.env.Reset()
	return nil
}

func load(r *Repl, args []string) error {
	if len(args) != 2 {
		return errUsage("load file")
	}
	return tiny.RunFile(r.vm, args[1])
}

// dump joins its arguments with single spaces, so runs of whitespace inside
// string literals are not preserved
func dump(r *Repl, args []string) error {
	if len(args) < 2 {
		return errUsage("dump source")
	}
	prog, err := tiny.Parse(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	return ast.Dump(r.vm.Out, prog)
}

func help(r *Repl, _ []string) error {
	_, err := fmt.Fprint(r.vm.Out, helpText)
	return err
}

func quit(_ *Repl, _ []string) error {
	return errQuit
}
