package vm

import (
	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/value"
)

func eval(e ast.Expr, ctx context) (value.Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.VarRef:
		return evalVarRef(e, ctx)
	case *ast.Arith:
		return evalArith(e, ctx)
	case *ast.Compare:
		return evalCompare(e, ctx)
	case *ast.Not:
		return evalNot(e, ctx)
	case *ast.Logical:
		return evalLogical(e, ctx)
	}
	panic("unreachable")
}

func evalVarRef(e *ast.VarRef, ctx context) (value.Value, error) {
	v, ok := ctx.scope.Get(e.Name)
	switch {
	case ok:
		return v, nil
	case ctx.strict:
		return nil, errUndeclared(e.Name)
	}
	return value.Empty{}, nil
}

// evalOperands evaluates lhs and then rhs, in that order, and makes sure both
// are integers
func evalOperands(what string, lhs, rhs ast.Expr,
	ctx context) (value.Integer, value.Integer, error) {
	l, err := eval(lhs, ctx)
	if err != nil {
		return 0, 0, err
	}
	r, err := eval(rhs, ctx)
	if err != nil {
		return 0, 0, err
	}

	x, ok1 := l.(value.Integer)
	y, ok2 := r.(value.Integer)
	if !ok1 || !ok2 {
		return 0, 0, errTypeMismatch{
			what: what,
			got:  []value.Kind{l.Kind(), r.Kind()},
		}
	}
	return x, y, nil
}

func evalArith(e *ast.Arith, ctx context) (value.Value, error) {
	x, y, err := evalOperands("operator ‘"+e.Op.String()+"’", e.Lhs, e.Rhs, ctx)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.Add:
		return x + y, nil
	case ast.Sub:
		return x - y, nil
	case ast.Mul:
		return x * y, nil
	case ast.Div:
		if y == 0 {
			return nil, errDivByZero(x)
		}
		return x / y, nil
	}
	panic("unreachable")
}

func evalCompare(e *ast.Compare, ctx context) (value.Value, error) {
	x, y, err := evalOperands("operator ‘"+e.Op.String()+"’", e.Lhs, e.Rhs, ctx)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.Less:
		return value.Bool(x < y), nil
	case ast.LessEq:
		return value.Bool(x <= y), nil
	case ast.More:
		return value.Bool(x > y), nil
	case ast.MoreEq:
		return value.Bool(x >= y), nil
	case ast.Eq:
		return value.Bool(x == y), nil
	}
	panic("unreachable")
}

func evalNot(e *ast.Not, ctx context) (value.Value, error) {
	v, err := eval(e.Operand, ctx)
	if err != nil {
		return nil, err
	}
	x, ok := v.(value.Integer)
	if !ok {
		return nil, errTypeMismatch{
			what: "operand of ‘!’",
			got:  []value.Kind{v.Kind()},
		}
	}
	return value.Bool(!x.Truthy()), nil
}

// evalLogical never short-circuits; the right-hand side is evaluated even
// when the left-hand side already decides the result
func evalLogical(e *ast.Logical, ctx context) (value.Value, error) {
	x, y, err := evalOperands("operator ‘"+e.Op.String()+"’", e.Lhs, e.Rhs, ctx)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.And:
		return value.Bool(x.Truthy() && y.Truthy()), nil
	case ast.Or:
		return value.Bool(x.Truthy() || y.Truthy()), nil
	}
	panic("unreachable")
}

// evalCond evaluates the condition of an if- or while-statement
func evalCond(what string, e ast.Expr, ctx context) (bool, error) {
	v, err := eval(e, ctx)
	if err != nil {
		return false, err
	}
	x, ok := v.(value.Integer)
	if !ok {
		return false, errTypeMismatch{what: what, got: []value.Kind{v.Kind()}}
	}
	return x.Truthy(), nil
}
