package ast

import "git.sr.ht/~mango/tiny/value"

// Program is a complete script
type Program = []Stmt

// Expr is a node that evaluates to a value.  Expressions never change once
// the parser has built them, and every non-leaf node is the sole owner of its
// children.
type Expr interface {
	isExpr()
}

// Literal is a constant integer or string
type Literal struct {
	Value value.Value
}

// VarRef is a bare identifier
type VarRef struct {
	Name string
}

// Arith is one of ‘+’, ‘-’, ‘*’, or ‘/’
type Arith struct {
	Op       ArithOp
	Lhs, Rhs Expr
}

// Compare is one of ‘<’, ‘<=’, ‘>’, ‘>=’, or ‘==’
type Compare struct {
	Op       CompareOp
	Lhs, Rhs Expr
}

// Not is the ‘!’ operator
type Not struct {
	Operand Expr
}

// Logical is either ‘&&’ or ‘||’.  Both sides are always evaluated.
type Logical struct {
	Op       LogicalOp
	Lhs, Rhs Expr
}

func (_ *Literal) isExpr() {}
func (_ *VarRef) isExpr()  {}
func (_ *Arith) isExpr()   {}
func (_ *Compare) isExpr() {}
func (_ *Not) isExpr()     {}
func (_ *Logical) isExpr() {}

// Stmt is a node that is executed for its effect
type Stmt interface {
	// Pos returns the line the statement starts on
	Pos() int
	isStmt()
}

// Line is embedded in every statement to record where it came from
type Line int

func (l Line) Pos() int { return int(l) }

// CreateVar declares Name with the default value of Type, replacing whatever
// was bound to it before
type CreateVar struct {
	Line
	Type value.Kind
	Name string
}

type Print struct {
	Line
	Expr Expr
}

type Assign struct {
	Line
	Name string
	Expr Expr
}

// If runs Body when Cond is truthy and Else otherwise.  A nil Else means
// there was no else-branch in the source.
type If struct {
	Line
	Cond       Expr
	Body, Else []Stmt
}

type While struct {
	Line
	Cond Expr
	Body []Stmt
}

// For counts Var from Start towards End, which is evaluated only once.  A
// non-negative Step counts up while Var < End, a negative one counts down
// while Var > End.
type For struct {
	Line
	Var        string
	Start, End Expr
	Step       int64
	Body       []Stmt
}

func (_ *CreateVar) isStmt() {}
func (_ *Print) isStmt()     {}
func (_ *Assign) isStmt()    {}
func (_ *If) isStmt()        {}
func (_ *While) isStmt()     {}
func (_ *For) isStmt()       {}
