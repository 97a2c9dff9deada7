package parser

import (
	"git.sr.ht/~mango/tiny/ast"
	"git.sr.ht/~mango/tiny/lexer"
)

type parser struct {
	toks  <-chan lexer.Token
	cache *lexer.Token
}

// Parse reads tokens from toks until the end of file and returns the
// program they make up.  On a syntax error the remaining tokens are drained
// so that the lexer feeding toks can finish.
func Parse(toks <-chan lexer.Token) (prog ast.Program, err error) {
	p := parser{toks: toks}

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			go func() {
				for range toks {
				}
			}()
			prog, err = nil, e
		}
	}()

	return p.parseProgram(), nil
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	p.cache = nil
	return t
}

func (p *parser) peek() lexer.Token {
	if p.cache != nil {
		return *p.cache
	}

	t, ok := <-p.toks
	switch {
	case !ok:
		t = lexer.Token{Kind: lexer.TokEof}
	case t.Kind == lexer.TokError:
		p.fail(t.Line, errLexer(t.Val))
	}
	p.cache = &t
	return t
}

func (p *parser) fail(line int, err error) {
	panic(&Error{Line: line, Err: err})
}

func (p *parser) expected(want string, got lexer.Token) {
	p.fail(got.Line, errExpected{want, got})
}

// expect consumes the next token, failing unless it is of kind k
func (p *parser) expect(k lexer.TokenType, want string) lexer.Token {
	t := p.next()
	if t.Kind != k {
		p.expected(want, t)
	}
	return t
}

func (p *parser) expectKeyword(kw string) {
	if t := p.next(); t.Kind != lexer.TokKeyword || t.Val != kw {
		p.expected("‘"+kw+"’", t)
	}
}

func (p *parser) peekKeyword(kw string) bool {
	t := p.peek()
	return t.Kind == lexer.TokKeyword && t.Val == kw
}

func (p *parser) skipNewlines() {
	for p.peek().Kind == lexer.TokEndStmt {
		p.next()
	}
}
