package vm

import (
	"maps"
	"slices"

	"git.sr.ht/~mango/tiny/value"
)

// Scope is the variable store a program reads and writes.  There is only ever
// one scope per program; blocks do not introduce new ones.
type Scope interface {
	// Get returns the value bound to name and whether name was bound at all
	Get(name string) (value.Value, bool)
	Set(name string, v value.Value)
}

// Env is the Scope a Vm uses unless told otherwise
type Env struct {
	vars map[string]value.Value
}

func NewEnv() *Env {
	return &Env{vars: make(map[string]value.Value, 64)}
}

func (e *Env) Get(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Names returns the names of all bound variables in sorted order
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

func (e *Env) Len() int {
	return len(e.vars)
}

// Reset unbinds every variable
func (e *Env) Reset() {
	clear(e.vars)
}
