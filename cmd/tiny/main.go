package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/tiny"
	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/log"
	"git.sr.ht/~mango/tiny/parser"
	"git.sr.ht/~mango/tiny/repl"
	"git.sr.ht/~mango/tiny/vm"
)

const (
	exitFailure = 1 // Usage, I/O and syntax errors
	exitRuntime = 2 // The program failed while running
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func usage(w io.Writer) int {
	fmt.Fprintln(w, "Usage: tiny [-dst] file\n"+
		"       tiny -i [-st]")
	return exitFailure
}

func run(args []string, stdout, stderr io.Writer) int {
	var dflag, iflag bool

	log.Out = stderr
	m := vm.New(stdout)

	opts, optind, err := getopt.Getopts(args, "dist")
	if err != nil {
		log.Err("%s", err)
		return usage(stderr)
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			dflag = true
		case 'i':
			iflag = true
		case 's':
			m.Strict = true
		case 't':
			log.Verbose = true
		}
	}

	rest := args[optind:]
	switch {
	case iflag && (dflag || len(rest) != 0):
		return usage(stderr)
	case iflag:
		if err := repl.New(m).Run(); err != nil {
			log.Err("%s", err)
			return exitFailure
		}
		return 0
	case len(rest) != 1:
		return usage(stderr)
	}

	file := rest[0]
	prog, err := tiny.ParseFile(file)
	if err != nil {
		return report(file, err)
	}

	if dflag {
		if err := ast.Dump(stdout, prog); err != nil {
			log.Err("%s", err)
			return exitFailure
		}
		return 0
	}

	if err := m.Run(prog); err != nil {
		return report(file, err)
	}
	return 0
}

// report prints a single diagnostic for err and returns the matching exit
// status
func report(file string, err error) int {
	var (
		pe *fs.PathError
		se *parser.Error
		re *vm.Error
	)

	switch {
	case errors.As(err, &pe):
		log.Err("Failed to %s file ‘%s’: %s", pe.Op, pe.Path, pe.Err)
	case errors.As(err, &se):
		log.Err("%s:%d: %s", file, se.Line, se.Err)
	case errors.As(err, &re):
		log.Err("%s:%d: %s", file, re.Line, re.Err)
		return exitRuntime
	default:
		log.Err("%s", err)
	}
	return exitFailure
}
