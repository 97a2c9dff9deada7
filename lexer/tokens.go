package lexer

import "fmt"

type TokenType int

const (
	// TokError is the token emitted during a lexing error.  It signals the end
	// of lexical analysis.
	TokError TokenType = iota

	TokEndStmt // End of statement, either a newline or semicolon
	TokEof     // End of file

	TokIdent   // A variable name
	TokKeyword // A reserved word such as ‘if’ or ‘int’
	TokNumber  // An integer literal
	TokString  // A double-quoted string literal

	TokAssign // The ‘=’ operator

	TokPlus  // The ‘+’ operator
	TokMinus // The ‘-’ operator
	TokStar  // The ‘*’ operator
	TokSlash // The ‘/’ operator

	TokLt // The ‘<’ operator
	TokLe // The ‘<=’ operator
	TokGt // The ‘>’ operator
	TokGe // The ‘>=’ operator
	TokEq // The ‘==’ operator

	TokNot  // The ‘!’ operator
	TokLAnd // The ‘&&’ operator
	TokLOr  // The ‘||’ operator

	TokPOpen   // An opening parenthesis
	TokPClose  // A closing parenthesis
	TokBcOpen  // An opening brace
	TokBcClose // A closing brace
)

type Token struct {
	Kind TokenType
	Val  string
	Line int
}

// Maximum length of a string before truncation in diagnostics printing
// TokString
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "Error: " + t.Val

	case TokEndStmt:
		return "end of statement"
	case TokEof:
		return "end of file"

	case TokIdent, TokKeyword, TokNumber:
		return "‘" + t.Val + "’"
	case TokString:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("string “%.*s…”", maxStrLen, t.Val)
		}
		return "string “" + t.Val + "”"
	}

	return "‘" + t.Kind.String() + "’"
}

func (k TokenType) String() string {
	switch k {
	case TokError:
		return "error"
	case TokEndStmt:
		return "end of statement"
	case TokEof:
		return "end of file"
	case TokIdent:
		return "identifier"
	case TokKeyword:
		return "keyword"
	case TokNumber:
		return "number"
	case TokString:
		return "string"
	case TokAssign:
		return "="
	case TokPlus:
		return "+"
	case TokMinus:
		return "-"
	case TokStar:
		return "*"
	case TokSlash:
		return "/"
	case TokLt:
		return "<"
	case TokLe:
		return "<="
	case TokGt:
		return ">"
	case TokGe:
		return ">="
	case TokEq:
		return "=="
	case TokNot:
		return "!"
	case TokLAnd:
		return "&&"
	case TokLOr:
		return "||"
	case TokPOpen:
		return "("
	case TokPClose:
		return ")"
	case TokBcOpen:
		return "{"
	case TokBcClose:
		return "}"
	}
	panic("unreachable")
}
