// Package parser turns one line of expression text into an immutable
// expression tree. Internally it is a single forward pass: a rune lexer, a
// forward-only token cursor, and a precedence-climbing parser whose entire
// grammar is the binding-power table in bindings.go plus two structural
// rules (grouping and the ternary '?').
package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

// Parse builds the expression tree for one line of input. The whole line
// must form exactly one expression; trailing tokens are rejected rather
// than silently dropped.
func Parse(src string) (Expr, error) {
	c := NewCursor(Lex(src))
	expr, err := parseExpr(c, 0)
	if err != nil {
		return nil, err
	}
	if tok := c.Peek(); tok.Type != EOF {
		return nil, errors.Wrapf(ErrUnexpectedToken,
			"column %d: trailing %q after a complete expression", tok.Pos+1, tok.Lexeme)
	}
	return expr, nil
}

// parseExpr consumes one operand, then folds in the operators to its right
// for as long as their left binding power meets minBP. Recursion depth
// tracks operator nesting; everything else is this loop.
func parseExpr(c *Cursor, minBP int) (Expr, error) {
	lhs, err := parseOperand(c)
	if err != nil {
		return nil, err
	}

	for {
		tok := c.Peek()
		if tok.Type != OPERATOR {
			// EOF ends the expression. A leaf can never continue one, so
			// it is left for the caller, which reports it as trailing.
			break
		}

		if lbp, ok := postfixPower(tok.Lexeme); ok {
			if lbp < minBP {
				break
			}
			c.Next()
			lhs = &OpNode{Op: tok.Lexeme, Children: []Expr{lhs}}
			continue
		}

		lbp, rbp, ok := infixPower(tok.Lexeme)
		if !ok || lbp < minBP {
			// The operator belongs to an enclosing construct, like the ')'
			// a group is waiting for, or it is trailing input for Parse to
			// reject.
			break
		}
		c.Next()

		if tok.Lexeme == "?" {
			// Ternary: the middle operand restarts at the lowest power,
			// the right one climbs from the '?' right power. There is no
			// ':' in the grammar, so "a ? b c" is the full form.
			mhs, err := parseExpr(c, 0)
			if err != nil {
				return nil, err
			}
			rhs, err := parseExpr(c, rbp)
			if err != nil {
				return nil, err
			}
			lhs = &OpNode{Op: tok.Lexeme, Children: []Expr{lhs, mhs, rhs}}
			continue
		}

		rhs, err := parseExpr(c, rbp)
		if err != nil {
			return nil, err
		}
		lhs = &OpNode{Op: tok.Lexeme, Children: []Expr{lhs, rhs}}
	}

	return lhs, nil
}

// parseOperand consumes the head of an expression: a leaf, a parenthesized
// group, or a prefix operator applied to whatever follows it.
func parseOperand(c *Cursor) (Expr, error) {
	tok := c.Next()
	switch {
	case tok.Type == LEAF:
		return &Atom{Value: tok.Lexeme}, nil

	case tok.Type == OPERATOR && tok.Lexeme == "(":
		// Grouping adds no node of its own: parse the inside back at the
		// lowest power, then insist on the ')' the operator loop left
		// behind.
		inner, err := parseExpr(c, 0)
		if err != nil {
			return nil, err
		}
		if closer := c.Next(); closer.Lexeme != ")" {
			return nil, errors.Wrapf(ErrUnexpectedToken,
				"column %d: expected ')' to close the group opened at column %d, got %s",
				closer.Pos+1, tok.Pos+1, describe(closer))
		}
		return inner, nil

	case tok.Type == OPERATOR:
		rbp, ok := prefixPower(tok.Lexeme)
		if !ok {
			return nil, errors.Wrapf(ErrUnboundOperator,
				"column %d: %q cannot start an expression", tok.Pos+1, tok.Lexeme)
		}
		rhs, err := parseExpr(c, rbp)
		if err != nil {
			return nil, err
		}
		return &OpNode{Op: tok.Lexeme, Children: []Expr{rhs}}, nil
	}

	return nil, errors.Wrapf(ErrUnexpectedToken,
		"column %d: expression expected, got %s", tok.Pos+1, describe(tok))
}

// describe renders a token for an error message.
func describe(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}
