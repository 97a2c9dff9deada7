package repl

import (
	"unicode/utf8"

	"git.sr.ht/~mango/tiny/lexer"
	"git.sr.ht/~mango/tiny/pkg/stack"
)

// Complete reports whether src can be handed to the parser, or whether more
// input should be read first.  Input is incomplete while a bracket is left
// open or the last token is a binary operator.  Lexical errors and mismatched
// brackets count as complete so the parser gets to report them.
func Complete(src string) bool {
	l := lexer.New(src)
	go l.Run()
	defer func() {
		for range l.Out {
		}
	}()

	closers := stack.New[rune](8)
	last := lexer.TokEndStmt

	for t := range l.Out {
		switch t.Kind {
		case lexer.TokError:
			return true
		case lexer.TokEof:
			return len(closers) == 0 && !lexer.IsBinary(last)
		case lexer.TokPOpen, lexer.TokPClose, lexer.TokBcOpen, lexer.TokBcClose:
			r, _ := utf8.DecodeRuneInString(t.Val)
			if lexer.IsOpener(r) {
				closers.Push(lexer.Closer(r))
			} else if !closers.TopIs(r) {
				return true
			} else {
				closers.Pop()
			}
		}

		if t.Kind != lexer.TokEndStmt {
			last = t.Kind
		}
	}
	return true
}
