// Package value holds the runtime values of tiny programs.  A value is one of
// Integer, Text, or Empty; the set is closed so that a type switch over a
// Value is always exhaustive.
package value

import "strconv"

type Kind int

const (
	KindEmpty Kind = iota
	KindInteger
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInteger:
		return "integer"
	case KindText:
		return "string"
	}
	panic("unreachable")
}

type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// Integer is a signed 64-bit integer
type Integer int64

// Text is a string of bytes
type Text string

// Empty is the value of anything that was never given one
type Empty struct{}

func (_ Integer) isValue() {}
func (_ Text) isValue()    {}
func (_ Empty) isValue()   {}

func (_ Integer) Kind() Kind { return KindInteger }
func (_ Text) Kind() Kind    { return KindText }
func (_ Empty) Kind() Kind   { return KindEmpty }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (t Text) String() string    { return string(t) }
func (_ Empty) String() string   { return "" }

// Truthy reports whether i is nonzero.
func (i Integer) Truthy() bool {
	return i != 0
}

// Bool converts b to the integer 1 or 0.
func Bool(b bool) Integer {
	if b {
		return 1
	}
	return 0
}

// Default returns the value a freshly declared variable of kind k holds.
func Default(k Kind) Value {
	switch k {
	case KindInteger:
		return Integer(0)
	case KindText:
		return Text("")
	case KindEmpty:
		return Empty{}
	}
	panic("unreachable")
}

// Quote renders v the way it would appear in source code.  It is meant for
// diagnostics and dumps, not for Print.
func Quote(v Value) string {
	switch v := v.(type) {
	case Integer:
		return v.String()
	case Text:
		return strconv.Quote(string(v))
	case Empty:
		return "empty"
	}
	panic("unreachable")
}
