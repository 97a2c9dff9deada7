package lexer

import (
	"strings"
	"unicode"
)

var escapes = map[rune]rune{
	'\\': '\\',
	'"':  '"',
	'0':  '\000',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

var keywords = map[string]bool{
	"else":   true,
	"for":    true,
	"if":     true,
	"int":    true,
	"print":  true,
	"step":   true,
	"string": true,
	"to":     true,
	"while":  true,
}

var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'(': TokPOpen,
	')': TokPClose,
	'{': TokBcOpen,
	'}': TokBcClose,
}

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		l.ignore()
		switch r := l.next(); {
		case r == eof:
			l.emit(TokEof)
			return nil
		case IsEol(r):
			l.emit(TokEndStmt)
		case r == '#':
			return skipComment
		case unicode.IsSpace(r):
		case r == '"':
			return lexString
		case unicode.IsDigit(r):
			return lexNumber
		case IsIdentStart(r):
			return lexIdent
		case r == '&':
			return lexAmp
		case r == '|':
			return lexPipe
		case r == '=':
			l.emitEither('=', TokEq, TokAssign)
		case r == '<':
			l.emitEither('=', TokLe, TokLt)
		case r == '>':
			l.emitEither('=', TokGe, TokGt)
		case r == '!':
			l.emit(TokNot)
		default:
			if k, ok := singles[r]; ok {
				l.emit(k)
			} else {
				return l.errorf("unexpected character ‘%c’", r)
			}
		}
	}
}

// emitEither emits a if the next rune is r and b otherwise
func (l *lexer) emitEither(r rune, a, b TokenType) {
	if l.accept(string(r)) {
		l.emit(a)
	} else {
		l.emit(b)
	}
}

func skipComment(l *lexer) lexFn {
	if i := strings.IndexByte(l.input[l.pos:], '\n'); i != -1 {
		l.pos += i
	} else {
		l.pos = len(l.input)
	}
	return lexDefault
}

func lexAmp(l *lexer) lexFn {
	if !l.accept("&") {
		return l.errorf("unexpected ‘&’; did you mean ‘&&’?")
	}
	l.emit(TokLAnd)
	return lexDefault
}

func lexPipe(l *lexer) lexFn {
	if !l.accept("|") {
		return l.errorf("unexpected ‘|’; did you mean ‘||’?")
	}
	l.emit(TokLOr)
	return lexDefault
}

func lexNumber(l *lexer) lexFn {
	l.acceptFunc(unicode.IsDigit)
	if r := l.peek(); IsIdentChar(r) {
		return l.errorf("malformed number ‘%s%c’", l.input[l.start:l.pos], r)
	}
	l.emit(TokNumber)
	return lexDefault
}

func lexIdent(l *lexer) lexFn {
	l.acceptFunc(IsIdentChar)
	if keywords[l.input[l.start:l.pos]] {
		l.emit(TokKeyword)
	} else {
		l.emit(TokIdent)
	}
	return lexDefault
}

func lexString(l *lexer) lexFn {
	sb := strings.Builder{}
	for {
		switch r := l.next(); r {
		case eof, '\n':
			return l.errorf("unterminated string")
		case '\\':
			e := l.next()
			r, ok := escapes[e]
			if !ok {
				return l.errorf("invalid escape sequence ‘\\%c’", e)
			}
			sb.WriteRune(r)
		case '"':
			l.send(TokString, sb.String())
			return lexDefault
		default:
			sb.WriteRune(r)
		}
	}
}
