// Package vm is the in-process stack machine backend: a validating
// assembler from postfix programs to bytecode, and a small machine that
// executes the bytecode over an int64 evaluation stack.
package vm

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/MustafaAamir/JITxpr/pkg/contract"
	"github.com/MustafaAamir/JITxpr/pkg/rpn"
)

// Bytecode layout: one opcode byte, followed for OpPush by an 8-byte
// little-endian two's-complement operand. Assemble terminates every
// program with OpRet.
const (
	OpPush byte = 0x01
	OpAdd  byte = 0x02
	OpSub  byte = 0x03
	OpMul  byte = 0x04
	OpDiv  byte = 0x05
	OpRet  byte = 0x06
)

// opNames is used by the execution trace.
var opNames = map[byte]string{
	OpPush: "PUSH",
	OpAdd:  "ADD",
	OpSub:  "SUB",
	OpMul:  "MUL",
	OpDiv:  "DIV",
	OpRet:  "RET",
}

// symToOp maps the operator symbols this machine can execute. Everything
// the parser accepts but this map omits ('!', '[', '?', '=', '.') is a
// compile-time ErrUnknownInstruction.
var symToOp = map[string]byte{
	"+": OpAdd,
	"-": OpSub,
	"*": OpMul,
	"/": OpDiv,
}

// opToSym is the disassembly view of symToOp.
var opToSym = map[byte]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// Assemble validates a postfix program and encodes it to bytecode. Unknown
// operator symbols, operators that would underflow the evaluation stack,
// and programs that do not finish with exactly one value are all rejected
// here, before anything runs; the simulated stack depth below is the whole
// verifier.
func Assemble(prog rpn.Program) ([]byte, error) {
	if len(prog) == 0 {
		return nil, errors.WithStack(ErrEmptyProgram)
	}

	code := make([]byte, 0, len(prog)*9+1)
	depth := 0
	for i, in := range prog {
		switch in.Op {
		case rpn.Push:
			var operand [8]byte
			binary.LittleEndian.PutUint64(operand[:], uint64(in.Val))
			code = append(code, OpPush)
			code = append(code, operand[:]...)
			depth++

		case rpn.Apply:
			op, ok := symToOp[in.Sym]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownInstruction, "instruction %d: %q", i, in.Sym)
			}
			if depth < 2 {
				return nil, errors.Wrapf(ErrStackUnderflow,
					"instruction %d: %q needs two operands, stack holds %d", i, in.Sym, depth)
			}
			code = append(code, op)
			depth--

		default:
			contract.Failf("instruction %d has impossible opcode %d", i, in.Op)
		}
	}

	if depth != 1 {
		return nil, errors.Wrapf(ErrBadStackDepth, "%d values at end of program", depth)
	}
	return append(code, OpRet), nil
}

// Disassemble renders bytecode back into postfix text. The trailing RET
// renders as nothing, so disassembling Assemble's output reproduces the
// source program's String form.
func Disassemble(code []byte) (string, error) {
	var parts []string
	for pc := 0; pc < len(code); {
		op := code[pc]
		pc++

		switch op {
		case OpPush:
			if pc+8 > len(code) {
				return "", errors.Wrapf(ErrTruncatedProgram, "push operand at offset %d", pc)
			}
			v := int64(binary.LittleEndian.Uint64(code[pc : pc+8]))
			parts = append(parts, strconv.FormatInt(v, 10))
			pc += 8

		case OpAdd, OpSub, OpMul, OpDiv:
			parts = append(parts, opToSym[op])

		case OpRet:
			// end marker, renders as nothing

		default:
			return "", errors.Wrapf(ErrUnknownInstruction, "opcode 0x%02x at offset %d", op, pc-1)
		}
	}
	return strings.Join(parts, " "), nil
}
