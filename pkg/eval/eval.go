// Package eval chains the full pipeline for one line of input: parse the
// text into a tree, linearize the tree into a postfix program, hand the
// program to a backend, run what comes back.
package eval

import (
	"github.com/golang/glog"

	"github.com/MustafaAamir/JITxpr/pkg/parser"
	"github.com/MustafaAamir/JITxpr/pkg/rpn"
)

// Result is the outcome of evaluating one line.
type Result struct {
	Postfix string // canonical postfix rendering of the parsed expression
	Value   int64  // what the backend computed for it
}

// Evaluate parses line, linearizes the tree and runs it on be. Parse and
// linearization failures return as-is; anything that fails past the backend
// boundary, at compile time or at run time, comes back wrapped in
// *rpn.BackendError.
func Evaluate(line string, be rpn.Backend) (Result, error) {
	expr, err := parser.Parse(line)
	if err != nil {
		return Result{}, err
	}
	prog, err := rpn.Linearize(expr)
	if err != nil {
		return Result{}, err
	}

	fn, err := be.Compile(prog)
	if err != nil {
		return Result{}, &rpn.BackendError{Err: err}
	}
	value, err := fn()
	if err != nil {
		return Result{}, &rpn.BackendError{Err: err}
	}

	glog.V(3).Infof("evaluated %q: %s -> %d", line, prog, value)
	return Result{Postfix: prog.String(), Value: value}, nil
}

// Postfix parses line and returns the tree's postfix rendering without
// executing anything. Unlike Evaluate it needs no backend, so it also
// handles expressions with name leaves that nothing could run.
func Postfix(line string) (string, error) {
	expr, err := parser.Parse(line)
	if err != nil {
		return "", err
	}
	glog.V(5).Infof("parsed %q -> %s", line, expr)
	return expr.String(), nil
}
