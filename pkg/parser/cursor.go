package parser

// Cursor is a forward-only, single-pass view over a token sequence. A parse
// owns its cursor exclusively; there is no rewinding and no sharing, so a
// consumed token is gone for good.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor wraps an already-lexed token sequence.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the next unconsumed token without advancing. Once the
// sequence is exhausted it returns an EOF token forever.
func (c *Cursor) Peek() Token {
	if c.pos >= len(c.tokens) {
		return Token{Type: EOF}
	}
	return c.tokens[c.pos]
}

// Next consumes and returns the next token, or EOF once exhausted.
func (c *Cursor) Next() Token {
	tok := c.Peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}
