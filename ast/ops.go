package ast

type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

func (op ArithOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	panic("unreachable")
}

type CompareOp int

const (
	Less CompareOp = iota
	LessEq
	More
	MoreEq
	Eq
)

func (op CompareOp) String() string {
	switch op {
	case Less:
		return "<"
	case LessEq:
		return "<="
	case More:
		return ">"
	case MoreEq:
		return ">="
	case Eq:
		return "=="
	}
	panic("unreachable")
}

type LogicalOp int

const (
	And LogicalOp = iota
	Or
)

func (op LogicalOp) String() string {
	switch op {
	case And:
		return "&&"
	case Or:
		return "||"
	}
	panic("unreachable")
}
