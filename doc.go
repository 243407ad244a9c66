// Package jitxpr turns infix expression text into postfix stack programs
// and runs them.
//
// The pipeline is a straight line through the subpackages: pkg/parser
// tokenizes a line and builds an expression tree with a binding-power
// (Pratt) parser; pkg/rpn flattens the tree into a postfix instruction
// sequence and defines the Backend contract; pkg/vm is the stack-machine
// backend that validates, encodes and executes such a sequence. pkg/eval
// chains the stages for callers that just want an answer, and cmd/jitxpr
// wraps the whole thing in a CLI with a REPL.
package jitxpr
