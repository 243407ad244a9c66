package vm

import (
	"github.com/golang/glog"

	"github.com/MustafaAamir/JITxpr/pkg/rpn"
)

// Compiler is the stack-machine rpn.Backend. All validation happens in
// Compile via Assemble, so the function it hands back can only fail on
// division by zero.
//
// A Compiler holds no state. Concurrent Compile calls are safe, and so are
// concurrent invocations of any returned function: each invocation runs on
// a fresh Machine that exists only for that call.
type Compiler struct{}

var _ rpn.Backend = Compiler{}

// Compile assembles the program and wraps it in a callable.
func (Compiler) Compile(prog rpn.Program) (rpn.Func, error) {
	code, err := Assemble(prog)
	if err != nil {
		return nil, err
	}
	glog.V(5).Infof("assembled %d instructions into %d bytes", len(prog), len(code))

	return func() (int64, error) {
		return NewMachine(code).Run()
	}, nil
}
