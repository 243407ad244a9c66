package rpn

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/MustafaAamir/JITxpr/pkg/contract"
	"github.com/MustafaAamir/JITxpr/pkg/parser"
)

// Linearize flattens an expression tree into its postfix program: every
// child left to right, then the node's own operator. Operator symbols pass
// through untouched; whether a given symbol is executable is for the
// backend to decide at compile time.
func Linearize(e parser.Expr) (Program, error) {
	contract.Require(e != nil, "e")

	var prog Program
	if err := emit(&prog, e); err != nil {
		return nil, err
	}
	return prog, nil
}

func emit(prog *Program, e parser.Expr) error {
	switch n := e.(type) {
	case *parser.Atom:
		v, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrNonNumeric, "leaf %q", n.Value)
		}
		*prog = append(*prog, Instruction{Op: Push, Val: v})

	case *parser.OpNode:
		for _, c := range n.Children {
			if err := emit(prog, c); err != nil {
				return err
			}
		}
		*prog = append(*prog, Instruction{Op: Apply, Sym: n.Op})

	default:
		contract.Failf("unhandled expression node %T", e)
	}
	return nil
}
