package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~mango/tiny/log"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "script.tn")
	if err := os.WriteFile(name, []byte(src), 0o644); err != nil {
		t.Fatalf("Failed to write ‘%s’: %s", name, err)
	}
	return name
}

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() {
		log.Out = os.Stderr
		log.Verbose = false
	})

	var out, err bytes.Buffer
	code := run(append([]string{"tiny"}, args...), &out, &err)
	return code, out.String(), err.String()
}

func TestRun(t *testing.T) {
	name := writeScript(t, "int x\nx = 3 + 4 * 2\nprint x\n")
	code, out, err := runCapture(t, name)

	if code != 0 {
		t.Fatalf("Expected exit status 0 but got %d (%s)", code, err)
	}
	if out != "11\n" {
		t.Fatalf("Stdout returned unexpected ‘%s’", out)
	}
	if err != "" {
		t.Fatalf("Stderr returned unexpected ‘%s’", err)
	}
}

func TestUsage(t *testing.T) {
	name := writeScript(t, "print 1\n")

	for _, args := range [][]string{
		{},
		{name, name},
		{"-x", name},
		{"-i", name},
		{"-id"},
	} {
		code, out, err := runCapture(t, args...)
		if code != exitFailure {
			t.Fatalf("%q: Expected exit status %d but got %d", args, exitFailure, code)
		}
		if out != "" {
			t.Fatalf("%q: Expected nothing to run but got ‘%s’", args, out)
		}
		if !strings.Contains(err, "Usage: tiny") {
			t.Fatalf("%q: Expected usage but got ‘%s’", args, err)
		}
	}
}

func TestMissingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nope.tn")
	code, _, err := runCapture(t, name)

	if code != exitFailure {
		t.Fatalf("Expected exit status %d but got %d", exitFailure, code)
	}
	want := "tiny: Failed to open file ‘" + name + "’: no such file or directory\n"
	if err != want {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, err)
	}
}

func TestSyntaxError(t *testing.T) {
	name := writeScript(t, "print 1\nprint )\n")
	code, out, err := runCapture(t, name)

	if code != exitFailure {
		t.Fatalf("Expected exit status %d but got %d", exitFailure, code)
	}
	if out != "" {
		t.Fatalf("Expected nothing to run but got ‘%s’", out)
	}
	want := "tiny: " + name + ":2: Expected expression but got ‘)’\n"
	if err != want {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, err)
	}
}

func TestRuntimeError(t *testing.T) {
	name := writeScript(t, "print 1\nprint 1 / 0\nprint 2\n")
	code, out, err := runCapture(t, name)

	if code != exitRuntime {
		t.Fatalf("Expected exit status %d but got %d", exitRuntime, code)
	}
	if out != "1\n" {
		t.Fatalf("Stdout returned unexpected ‘%s’", out)
	}
	want := "tiny: " + name + ":2: Attempt to divide 1 by zero\n"
	if err != want {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, err)
	}
}

func TestStrict(t *testing.T) {
	name := writeScript(t, "print y\nprint \"after\"\n")

	code, out, _ := runCapture(t, name)
	if code != 0 || out != "after\n" {
		t.Fatalf("Expected lenient run to print ‘after’ but got %d, ‘%s’", code, out)
	}

	code, out, err := runCapture(t, "-s", name)
	if code != exitRuntime {
		t.Fatalf("Expected exit status %d but got %d", exitRuntime, code)
	}
	if out != "" {
		t.Fatalf("Stdout returned unexpected ‘%s’", out)
	}
	if !strings.Contains(err, ":1: Variable ‘y’ is used before being declared") {
		t.Fatalf("Stderr returned unexpected ‘%s’", err)
	}
}

func TestDump(t *testing.T) {
	name := writeScript(t, "x = 1\nprint x\n")
	code, out, err := runCapture(t, "-d", name)

	if code != 0 {
		t.Fatalf("Expected exit status 0 but got %d (%s)", code, err)
	}
	if !strings.Contains(out, "kind: assign") || !strings.Contains(out, "kind: print") {
		t.Fatalf("Stdout returned unexpected ‘%s’", out)
	}
}

func TestTrace(t *testing.T) {
	name := writeScript(t, "x = 1\nprint x\n")
	code, out, err := runCapture(t, "-t", name)

	if code != 0 {
		t.Fatalf("Expected exit status 0 but got %d (%s)", code, err)
	}
	if out != "1\n" {
		t.Fatalf("Stdout returned unexpected ‘%s’", out)
	}
	want := "tiny: trace: 1: x =\ntiny: trace: 2: print\n"
	if err != want {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, err)
	}
}
