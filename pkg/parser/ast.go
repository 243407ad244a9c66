package parser

import "strings"

// Expr is a node of the parsed expression tree. Nodes are immutable once
// built, and every child belongs to exactly one parent.
type Expr interface {
	exprNode()

	// String renders the node in postfix order: children left to right,
	// then the node's own symbol. That ordering doubles as the instruction
	// order a stack machine wants, so the rendering of a tree and the
	// program linearized from it always agree.
	String() string
}

// Atom is a leaf: a digit run or a single-letter name.
//
//	3 + x
//	^   ^  Atom{Value: "3"}, Atom{Value: "x"}
type Atom struct {
	Value string
}

func (*Atom) exprNode()        {}
func (a *Atom) String() string { return a.Value }

// OpNode is an operator applied to its operands. Children holds one node
// for a prefix or postfix operator, two for infix, three for the ternary
// form of '?'.
type OpNode struct {
	Op       string
	Children []Expr
}

func (*OpNode) exprNode() {}

func (n *OpNode) String() string {
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(n.Op)
	return sb.String()
}
