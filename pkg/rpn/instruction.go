// Package rpn defines the flat, backend-facing form of an expression: a
// postfix (reverse-Polish) instruction sequence, the linearizer that
// produces one from a parsed tree, and the Backend contract for anything
// that can execute one.
package rpn

import (
	"strconv"
	"strings"
)

// Opcode distinguishes the two instruction forms of a postfix program.
type Opcode int

const (
	// Push places an integer constant on the evaluation stack.
	Push Opcode = iota

	// Apply pops two operands (the first pop is the right one), applies
	// the operator named by Sym and pushes the single result.
	Apply
)

// Instruction is one step of a postfix program.
type Instruction struct {
	Op  Opcode
	Val int64  // Push only
	Sym string // Apply only
}

func (in Instruction) String() string {
	if in.Op == Push {
		return strconv.FormatInt(in.Val, 10)
	}
	return in.Sym
}

// Program is a postfix instruction sequence. The order is load-bearing: a
// backend reads it strictly left to right with no knowledge of the tree it
// came from.
type Program []Instruction

// String renders the canonical postfix text, e.g. "3 4 +". For every
// linearizable tree it agrees with the tree's own String rendering.
func (p Program) String() string {
	parts := make([]string, len(p))
	for i, in := range p {
		parts[i] = in.String()
	}
	return strings.Join(parts, " ")
}
