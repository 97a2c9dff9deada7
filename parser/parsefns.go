package parser

import (
	"strconv"

	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/lexer"
	"git.sr.ht/~mango/tiny/value"
)

var (
	types = map[string]value.Kind{
		"int":    value.KindInteger,
		"string": value.KindText,
	}

	arithOps = map[lexer.TokenType]ast.ArithOp{
		lexer.TokPlus:  ast.Add,
		lexer.TokMinus: ast.Sub,
		lexer.TokStar:  ast.Mul,
		lexer.TokSlash: ast.Div,
	}

	compareOps = map[lexer.TokenType]ast.CompareOp{
		lexer.TokLt: ast.Less,
		lexer.TokLe: ast.LessEq,
		lexer.TokGt: ast.More,
		lexer.TokGe: ast.MoreEq,
		lexer.TokEq: ast.Eq,
	}
)

func (p *parser) parseProgram() ast.Program {
	prog := ast.Program{}

	for {
		switch p.peek().Kind {
		case lexer.TokEndStmt:
			p.next()
		case lexer.TokEof:
			return prog
		default:
			prog = append(prog, p.parseStmt())
			p.parseStmtEnd()
		}
	}
}

func (p *parser) parseBody() []ast.Stmt {
	p.expect(lexer.TokBcOpen, "opening brace")
	xs := []ast.Stmt{}

	for {
		switch t := p.peek(); t.Kind {
		case lexer.TokEndStmt:
			p.next()
		case lexer.TokBcClose:
			p.next()
			return xs
		case lexer.TokEof:
			p.expected("closing brace", t)
		default:
			xs = append(xs, p.parseStmt())
			p.parseStmtEnd()
		}
	}
}

// parseStmtEnd makes sure nothing trails a statement.  A closing brace may
// end the last statement of a block without a newline.
func (p *parser) parseStmtEnd() {
	switch t := p.peek(); t.Kind {
	case lexer.TokEndStmt:
		p.next()
	case lexer.TokEof, lexer.TokBcClose:
	default:
		p.expected("semicolon or newline", t)
	}
}

func (p *parser) parseStmt() ast.Stmt {
	t := p.peek()
	line := ast.Line(t.Line)

	switch t.Kind {
	case lexer.TokIdent:
		return p.parseAssign(line)
	case lexer.TokKeyword:
	default:
		p.expected("statement", t)
	}

	switch t.Val {
	case "int", "string":
		p.next()
		name := p.expect(lexer.TokIdent, "variable name")
		return &ast.CreateVar{Line: line, Type: types[t.Val], Name: name.Val}
	case "print":
		p.next()
		return &ast.Print{Line: line, Expr: p.parseExpr()}
	case "if":
		p.next()
		return p.parseIf(line)
	case "while":
		p.next()
		return &ast.While{Line: line, Cond: p.parseExpr(), Body: p.parseBody()}
	case "for":
		p.next()
		return p.parseFor(line)
	}

	p.expected("statement", t)
	panic("unreachable")
}

func (p *parser) parseAssign(line ast.Line) *ast.Assign {
	name := p.next()
	p.expect(lexer.TokAssign, "‘=’")
	p.skipNewlines()
	return &ast.Assign{Line: line, Name: name.Val, Expr: p.parseExpr()}
}

func (p *parser) parseIf(line ast.Line) *ast.If {
	cond := ast.If{Line: line}
	cond.Cond = p.parseExpr()
	cond.Body = p.parseBody()

	if !p.peekKeyword("else") {
		return &cond
	}
	p.next() // Consume ‘else’

	if t := p.peek(); p.peekKeyword("if") {
		p.next() // Consume ‘if’
		cond.Else = []ast.Stmt{p.parseIf(ast.Line(t.Line))}
	} else {
		cond.Else = p.parseBody()
	}
	return &cond
}

func (p *parser) parseFor(line ast.Line) *ast.For {
	loop := ast.For{Line: line, Step: 1}
	loop.Var = p.expect(lexer.TokIdent, "loop variable").Val
	p.expect(lexer.TokAssign, "‘=’")
	loop.Start = p.parseExpr()
	p.expectKeyword("to")
	loop.End = p.parseExpr()

	if p.peekKeyword("step") {
		p.next()
		neg := p.peek().Kind == lexer.TokMinus
		if neg {
			p.next()
		}
		t := p.expect(lexer.TokNumber, "integer step")
		loop.Step = p.parseInt(t, neg)
		if loop.Step == 0 {
			p.fail(t.Line, errZeroStep)
		}
	}

	loop.Body = p.parseBody()
	return &loop
}

func (p *parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *parser) parseOr() ast.Expr {
	lhs := p.parseAnd()
	for p.peek().Kind == lexer.TokLOr {
		p.next()
		p.skipNewlines()
		lhs = &ast.Logical{Op: ast.Or, Lhs: lhs, Rhs: p.parseAnd()}
	}
	return lhs
}

func (p *parser) parseAnd() ast.Expr {
	lhs := p.parseCompare()
	for p.peek().Kind == lexer.TokLAnd {
		p.next()
		p.skipNewlines()
		lhs = &ast.Logical{Op: ast.And, Lhs: lhs, Rhs: p.parseCompare()}
	}
	return lhs
}

func (p *parser) parseCompare() ast.Expr {
	lhs := p.parseAdditive()
	for {
		op, ok := compareOps[p.peek().Kind]
		if !ok {
			return lhs
		}
		p.next()
		p.skipNewlines()
		lhs = &ast.Compare{Op: op, Lhs: lhs, Rhs: p.parseAdditive()}
	}
}

func (p *parser) parseAdditive() ast.Expr {
	lhs := p.parseTerm()
	for {
		op, ok := arithOps[p.peek().Kind]
		if !ok || (op != ast.Add && op != ast.Sub) {
			return lhs
		}
		p.next()
		p.skipNewlines()
		lhs = &ast.Arith{Op: op, Lhs: lhs, Rhs: p.parseTerm()}
	}
}

func (p *parser) parseTerm() ast.Expr {
	lhs := p.parseUnary()
	for {
		op, ok := arithOps[p.peek().Kind]
		if !ok || (op != ast.Mul && op != ast.Div) {
			return lhs
		}
		p.next()
		p.skipNewlines()
		lhs = &ast.Arith{Op: op, Lhs: lhs, Rhs: p.parseUnary()}
	}
}

func (p *parser) parseUnary() ast.Expr {
	switch p.peek().Kind {
	case lexer.TokNot:
		p.next()
		return &ast.Not{Operand: p.parseUnary()}
	case lexer.TokMinus:
		p.next()
		if t := p.peek(); t.Kind == lexer.TokNumber {
			p.next()
			return &ast.Literal{Value: value.Integer(p.parseInt(t, true))}
		}
		return &ast.Arith{
			Op:  ast.Sub,
			Lhs: &ast.Literal{Value: value.Integer(0)},
			Rhs: p.parseUnary(),
		}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() ast.Expr {
	switch t := p.next(); t.Kind {
	case lexer.TokNumber:
		return &ast.Literal{Value: value.Integer(p.parseInt(t, false))}
	case lexer.TokString:
		return &ast.Literal{Value: value.Text(t.Val)}
	case lexer.TokIdent:
		return &ast.VarRef{Name: t.Val}
	case lexer.TokPOpen:
		p.skipNewlines()
		e := p.parseExpr()
		p.skipNewlines()
		p.expect(lexer.TokPClose, "closing parenthesis")
		return e
	default:
		p.expected("expression", t)
	}
	panic("unreachable")
}

func (p *parser) parseInt(t lexer.Token, neg bool) int64 {
	s := t.Val
	if neg {
		s = "-" + s
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.fail(t.Line, errRange(s))
	}
	return n
}
