package lexer

import "testing"

func getTokens(s string) []Token {
	l := New(s)
	go l.Run()

	xs := []Token{}
	for t := range l.Out {
		xs = append(xs, t)
	}
	return xs
}

func kinds(xs []Token) []TokenType {
	ys := make([]TokenType, len(xs))
	for i, x := range xs {
		ys[i] = x.Kind
	}
	return ys
}

func assertTokens(t *testing.T, xs, ys []TokenType) {
	t.Helper()

	for i := range min(len(xs), len(ys)) {
		if xs[i] != ys[i] {
			t.Fatalf("Expected token type ‘%s’ at position %d but got ‘%s’",
				xs[i], i, ys[i])
		}
	}

	if len(xs) != len(ys) {
		t.Fatalf("Expected %d tokens but got %d", len(xs), len(ys))
	}
}

func TestEmitTokenTypes(t *testing.T) {
	xs := []TokenType{
		TokEndStmt,
		TokKeyword, TokIdent, TokEndStmt,
		TokIdent, TokAssign, TokNumber, TokPlus, TokNumber, TokStar, TokNumber,
		TokEndStmt,
		TokKeyword, TokIdent, TokLe, TokNumber, TokLAnd, TokNot, TokPOpen,
		TokIdent, TokEq, TokNumber, TokPClose, TokBcOpen, TokEndStmt,
		TokKeyword, TokString, TokEndStmt,
		TokBcClose, TokKeyword, TokBcOpen, TokBcClose, TokEndStmt,
		TokKeyword, TokIdent, TokAssign, TokNumber, TokKeyword, TokNumber,
		TokKeyword, TokMinus, TokNumber, TokBcOpen, TokBcClose, TokEndStmt,
		TokIdent, TokLt, TokIdent, TokLOr, TokIdent, TokGt, TokIdent, TokGe,
		TokIdent, TokSlash, TokIdent, TokEndStmt,
		TokEof,
	}
	s := `
	int x
	x = 3 + 4 * 2
	if x <= 11 && !(x == 5) {
		print "hello"
	} else {}
	for i = 3 to 0 step -1 {}
	a < b || c > d >= e / f
	`

	assertTokens(t, xs, kinds(getTokens(s)))
}

func TestSkipComment(t *testing.T) {
	xs := []TokenType{
		TokEndStmt, TokEndStmt, TokEndStmt,
		TokEndStmt, TokEndStmt, TokKeyword, TokIdent,
		TokEndStmt, TokEof,
	}
	s := `
	#!/usr/bin/tiny

	# This declares an integer

	int x # Hello world
	`

	assertTokens(t, xs, kinds(getTokens(s)))
}

func TestCommentAtEof(t *testing.T) {
	xs := []TokenType{TokKeyword, TokIdent, TokEof}
	assertTokens(t, xs, kinds(getTokens("print x # no newline")))
}

func TestSemicolons(t *testing.T) {
	xs := []TokenType{
		TokKeyword, TokIdent, TokEndStmt,
		TokIdent, TokAssign, TokNumber, TokEndStmt,
		TokEof,
	}
	assertTokens(t, xs, kinds(getTokens("int x; x = 1;")))
}

func TestStringEscapes(t *testing.T) {
	xs := getTokens(`"foo\tbar\n\"baz\"\\"`)
	if xs[0].Kind != TokString {
		t.Fatalf("Expected string but got ‘%s’", xs[0].Kind)
	}
	if want := "foo\tbar\n\"baz\"\\"; xs[0].Val != want {
		t.Fatalf("Expected %q but got %q", want, xs[0].Val)
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	xs := getTokens("int integer _x x1 string strings")
	want := []struct {
		kind TokenType
		val  string
	}{
		{TokKeyword, "int"},
		{TokIdent, "integer"},
		{TokIdent, "_x"},
		{TokIdent, "x1"},
		{TokKeyword, "string"},
		{TokIdent, "strings"},
	}

	for i, w := range want {
		if xs[i].Kind != w.kind || xs[i].Val != w.val {
			t.Errorf("Expected %s ‘%s’ but got %s ‘%s’",
				w.kind, w.val, xs[i].Kind, xs[i].Val)
		}
	}
}

func TestTokenLines(t *testing.T) {
	xs := getTokens("int x\n\n  x = 1\n# comment\nprint x")
	want := map[string]int{"int": 1, "=": 3, "1": 3, "print": 5}

	for _, x := range xs {
		if n, ok := want[x.Val]; ok && x.Line != n {
			t.Errorf("Expected ‘%s’ on line %d but got %d", x.Val, n, x.Line)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		msg  string
	}{
		{`"unterminated`, 1, "unterminated string"},
		{"x = \"foo\nbar\"", 1, "unterminated string"},
		{`"\q"`, 1, "invalid escape sequence ‘\\q’"},
		{"\n\nx & y", 3, "unexpected ‘&’; did you mean ‘&&’?"},
		{"x | y", 1, "unexpected ‘|’; did you mean ‘||’?"},
		{"x = 12ab", 1, "malformed number ‘12a’"},
		{"x = $", 1, "unexpected character ‘$’"},
	}

	for _, tt := range tests {
		xs := getTokens(tt.src)
		last := xs[len(xs)-1]
		if last.Kind != TokError {
			t.Errorf("Expected error for %q but got ‘%s’", tt.src, last)
			continue
		}
		if last.Val != tt.msg {
			t.Errorf("Expected error ‘%s’ but got ‘%s’", tt.msg, last.Val)
		}
		if last.Line != tt.line {
			t.Errorf("Expected error on line %d but got %d", tt.line, last.Line)
		}
	}
}
