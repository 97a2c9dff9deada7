package vm

import (
	"errors"
	"io"

	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/log"
	"git.sr.ht/~mango/tiny/value"
)

func execStmts(xs []ast.Stmt, ctx context) error {
	for _, x := range xs {
		if err := execStmt(x, ctx); err != nil {
			return err
		}
	}
	return nil
}

func execStmt(s ast.Stmt, ctx context) error {
	var err error

	switch s := s.(type) {
	case *ast.CreateVar:
		log.Trace("%d: %s %s", s.Pos(), s.Type, s.Name)
		ctx.scope.Set(s.Name, value.Default(s.Type))
	case *ast.Print:
		log.Trace("%d: print", s.Pos())
		err = execPrint(s, ctx)
	case *ast.Assign:
		log.Trace("%d: %s =", s.Pos(), s.Name)
		err = execAssign(s, ctx)
	case *ast.If:
		log.Trace("%d: if", s.Pos())
		err = execIf(s, ctx)
	case *ast.While:
		log.Trace("%d: while", s.Pos())
		err = execWhile(s, ctx)
	case *ast.For:
		log.Trace("%d: for %s", s.Pos(), s.Var)
		err = execFor(s, ctx)
	default:
		panic("unreachable")
	}

	// Errors from nested statements already know their line
	var re *Error
	if err != nil && !errors.As(err, &re) {
		err = &Error{Line: s.Pos(), Err: err}
	}
	return err
}

// execPrint writes the value followed by a newline.  The empty value prints
// nothing at all, not even the newline.
func execPrint(s *ast.Print, ctx context) error {
	v, err := eval(s.Expr, ctx)
	if err != nil {
		return err
	}
	if _, ok := v.(value.Empty); ok {
		return nil
	}
	_, err = io.WriteString(ctx.out, v.String()+"\n")
	return err
}

func execAssign(s *ast.Assign, ctx context) error {
	v, err := eval(s.Expr, ctx)
	if err != nil {
		return err
	}
	ctx.scope.Set(s.Name, v)
	return nil
}

func execIf(s *ast.If, ctx context) error {
	ok, err := evalCond("if-condition", s.Cond, ctx)
	switch {
	case err != nil:
		return err
	case ok:
		return execStmts(s.Body, ctx)
	}
	return execStmts(s.Else, ctx)
}

func execWhile(s *ast.While, ctx context) error {
	for {
		ok, err := evalCond("while-condition", s.Cond, ctx)
		if err != nil || !ok {
			return err
		}
		if err := execStmts(s.Body, ctx); err != nil {
			return err
		}
	}
}

func execFor(s *ast.For, ctx context) error {
	start, err := eval(s.Start, ctx)
	if err != nil {
		return err
	}
	ctx.scope.Set(s.Var, start)

	v, err := eval(s.End, ctx)
	if err != nil {
		return err
	}

	_, ok1 := start.(value.Integer)
	end, ok2 := v.(value.Integer)
	if !ok1 || !ok2 {
		return errTypeMismatch{
			what: "for-loop bounds",
			got:  []value.Kind{start.Kind(), v.Kind()},
		}
	}

	step := value.Integer(s.Step)
	for {
		i, err := loopVar(s.Var, ctx)
		if err != nil {
			return err
		}
		if step >= 0 && i >= end || step < 0 && i <= end {
			return nil
		}

		if err := execStmts(s.Body, ctx); err != nil {
			return err
		}

		// The body may have changed the loop variable
		if i, err = loopVar(s.Var, ctx); err != nil {
			return err
		}
		ctx.scope.Set(s.Var, i+step)
	}
}

func loopVar(name string, ctx context) (value.Integer, error) {
	v, ok := ctx.scope.Get(name)
	if !ok {
		v = value.Empty{}
	}
	i, ok := v.(value.Integer)
	if !ok {
		return 0, errTypeMismatch{
			what: "for-loop variable ‘" + name + "’",
			got:  []value.Kind{v.Kind()},
		}
	}
	return i, nil
}
