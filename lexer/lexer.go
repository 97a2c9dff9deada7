package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const eof rune = -1

type lexer struct {
	input string     // The input string to lex
	start int        // The start of the current token in input
	pos   int        // The pos of the cursor in input
	width int        // Width of the last rune lexed
	line  int        // The line the cursor is on
	sline int        // The line the current token started on
	Out   chan Token // Token output channel
}

func New(input string) *lexer {
	return &lexer{
		input: input,
		line:  1,
		sline: 1,
		Out:   make(chan Token),
	}
}

// Run lexes the input, sending tokens on Out.  Out is closed after the final
// TokEof or TokError.
func (l *lexer) Run() {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	close(l.Out)
}

func (l *lexer) emit(t TokenType) {
	l.send(t, l.input[l.start:l.pos])
}

// send is like emit, but for tokens whose value differs from the source text
func (l *lexer) send(t TokenType, val string) {
	l.Out <- Token{Kind: t, Val: val, Line: l.sline}
	l.ignore()
}

func (l *lexer) ignore() {
	l.start = l.pos
	l.sline = l.line
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
	if l.width == 1 && l.input[l.pos] == '\n' {
		l.line--
	}
}

// accept consumes the next rune if it is in valid
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *lexer) acceptFunc(f func(rune) bool) {
	for f(l.next()) {
	}
	l.backup()
}

func (l *lexer) errorf(format string, args ...any) lexFn {
	l.Out <- Token{
		Kind: TokError,
		Val:  fmt.Sprintf(format, args...),
		Line: l.sline,
	}
	return nil
}
