package parser

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	LEAF     // decimal digit run, or a single letter
	OPERATOR // any other non-space character, always one rune long
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:      "EOF",
	LEAF:     "LEAF",
	OPERATOR: "OPERATOR",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Pos    int    // 0-based rune offset in the input line
}

func (t Token) String() string {
	return fmt.Sprintf("%-8s %-6q  col %d", t.Type, t.Lexeme, t.Pos+1)
}
