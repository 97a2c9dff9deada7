package lexer

import "unicode"

func IsEol(r rune) bool {
	return r == ';' ||
		r == '\n'
}

func IsIdentStart(r rune) bool {
	return unicode.IsLetter(r) ||
		r == '_'
}

func IsIdentChar(r rune) bool {
	return IsIdentStart(r) ||
		unicode.IsDigit(r)
}

// IsOpener reports whether r opens a bracketed region that must be closed
// before a statement can end
func IsOpener(r rune) bool {
	return r == '(' ||
		r == '{'
}

func Closer(r rune) rune {
	switch r {
	case '(':
		return ')'
	case '{':
		return '}'
	}
	panic("unreachable")
}

// IsBinary reports whether kind is an operator that needs a right-hand side.
// The parser lets a newline follow such operators.
func IsBinary(kind TokenType) bool {
	return kind == TokAssign ||
		kind == TokPlus ||
		kind == TokMinus ||
		kind == TokStar ||
		kind == TokSlash ||
		kind == TokLt ||
		kind == TokLe ||
		kind == TokGt ||
		kind == TokGe ||
		kind == TokEq ||
		kind == TokLAnd ||
		kind == TokLOr
}
