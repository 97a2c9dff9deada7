// Package repl implements the interactive mode of tiny.  Input is read with
// line editing and history, accumulated until it forms complete statements,
// and run against a single persistent Vm.
package repl

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"git.sr.ht/~mango/tiny"
	"git.sr.ht/~mango/tiny/log"
	"git.sr.ht/~mango/tiny/pkg/stringsx"
	"git.sr.ht/~mango/tiny/vm"
)

const (
	historyFile = ".tiny_history"
	promptMain  = "> "
	promptCont  = "… "
)

type Repl struct {
	vm  *vm.Vm
	env *vm.Env
}

// New returns a REPL running on m.  Variables persist across entries.  If the
// scope of m is not an *vm.Env it is replaced by a fresh one, since the meta
// commands need to list and clear it.
func New(m *vm.Vm) *Repl {
	env, ok := m.Env.(*vm.Env)
	if !ok {
		env = vm.NewEnv()
		m.Env = env
	}
	return &Repl{vm: m, env: env}
}

// Run reads and runs entries until end of input or ‘:quit’.  Errors in an
// entry are reported and the session continues.
func (r *Repl) Run() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		src, err := read(ln)
		switch {
		case errors.Is(err, io.EOF):
			io.WriteString(r.vm.Out, "\n")
			return nil
		case err != nil:
			return err
		case strings.TrimSpace(src) == "":
			continue
		}

		ln.AppendHistory(src)
		switch err := r.Eval(src); {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			log.Err("%s", err)
		}
	}
}

// read prompts until the accumulated input is complete.  Aborting with
// Ctrl-C throws away what has been typed so far.
func read(ln *liner.State) (string, error) {
	var sb strings.Builder

	for {
		prompt := promptMain
		if sb.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			sb.Reset()
			continue
		case err != nil:
			return "", err
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		if src := sb.String(); Complete(src) {
			return src, nil
		}
	}
}

// Eval runs a single entry.  Entries starting with a colon are meta commands;
// everything else is source code.
func (r *Repl) Eval(src string) error {
	s := strings.TrimSpace(src)
	if !strings.HasPrefix(s, ":") {
		return tiny.Run(r.vm, src)
	}

	args := stringsx.FieldsMulti(s[1:], []string{" ", "\t"})
	if len(args) == 0 {
		return errUnknownCommand("")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return errUnknownCommand(args[0])
	}
	return cmd(r, args)
}
