package vm

import "errors"

// Compile-time rejections (Assemble) and runtime faults (Machine.Run) share
// one sentinel set; what distinguishes them is when they can occur. After a
// successful Assemble the only fault left to runtime is ErrDivisionByZero.
var (
	// ErrUnknownInstruction reports an operator symbol or opcode byte
	// outside the machine's instruction set.
	ErrUnknownInstruction = errors.New("unknown instruction")

	// ErrStackUnderflow reports an operator that needs more operands than
	// the evaluation stack holds.
	ErrStackUnderflow = errors.New("evaluation stack underflow")

	// ErrBadStackDepth reports a program that would finish with more than
	// one value on the stack.
	ErrBadStackDepth = errors.New("program must leave exactly one value")

	// ErrEmptyProgram reports a program with no instructions: there would
	// be no value to return.
	ErrEmptyProgram = errors.New("empty program")

	// ErrTruncatedProgram reports bytecode that ends mid-instruction or
	// never executes a RET.
	ErrTruncatedProgram = errors.New("truncated bytecode")

	// ErrDivisionByZero reports an integer division whose right operand
	// was zero.
	ErrDivisionByZero = errors.New("division by zero")
)
