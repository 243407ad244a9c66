package parser

import "unicode"

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// scanNumber collects a run of consecutive decimal digits into one LEAF.
// The first digit must still be at l.peek().
func (l *Lexer) scanNumber() Token {
	start := l.pos
	for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: LEAF, Lexeme: string(l.src[start:l.pos]), Pos: start}
}

// nextToken skips whitespace and returns the next token. There is no
// lexical-error case: every non-space rune that is not a digit or letter is
// accepted as a single-rune OPERATOR, leaving role checks to the parser.
func (l *Lexer) nextToken() Token {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Pos: l.pos}
	}

	if unicode.IsDigit(l.peek()) {
		return l.scanNumber()
	}

	pos := l.pos
	ch := l.advance()
	if unicode.IsLetter(ch) {
		// Names are a single rune long in this grammar; "ab" is two leaves.
		return Token{Type: LEAF, Lexeme: string(ch), Pos: pos}
	}
	return Token{Type: OPERATOR, Lexeme: string(ch), Pos: pos}
}

// Lex tokenises src and returns all tokens including the final EOF token.
func Lex(src string) []Token {
	l := newLexer(src)
	var tokens []Token
	for {
		tok := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}
