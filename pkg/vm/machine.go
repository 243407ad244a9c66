package vm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// TraceOut is where the machine writes an execution trace: one line per
// instruction, showing the opcode just executed and the stack after it.
// Nil (the default) disables tracing entirely.
var TraceOut io.Writer

// Machine executes one program of bytecode over an int64 evaluation stack.
// A Machine is single-use and belongs to one goroutine: Run walks the code
// once, returns the result, and the machine is done.
type Machine struct {
	code  []byte
	pc    int
	stack []int64
}

// NewMachine prepares a machine for one run of code.
func NewMachine(code []byte) *Machine {
	return &Machine{code: code, stack: make([]int64, 0, 16)}
}

func (m *Machine) push(v int64) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop() (int64, error) {
	if len(m.stack) == 0 {
		return 0, errors.Wrapf(ErrStackUnderflow, "pc %d", m.pc)
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// Run executes the program until its RET and returns the value left on top
// of the stack. Bytecode straight from Assemble can only fail here with
// ErrDivisionByZero; the other faults guard hand-built bytecode.
func (m *Machine) Run() (int64, error) {
	for m.pc < len(m.code) {
		op := m.code[m.pc]
		m.pc++

		switch op {
		case OpPush:
			if m.pc+8 > len(m.code) {
				return 0, errors.Wrapf(ErrTruncatedProgram, "push operand at pc %d", m.pc)
			}
			v := int64(binary.LittleEndian.Uint64(m.code[m.pc : m.pc+8]))
			m.pc += 8
			m.push(v)

		case OpAdd, OpSub, OpMul, OpDiv:
			right, err := m.pop() // first pop is always the right operand
			if err != nil {
				return 0, err
			}
			left, err := m.pop()
			if err != nil {
				return 0, err
			}

			var v int64
			switch op {
			case OpAdd:
				v = left + right
			case OpSub:
				v = left - right
			case OpMul:
				v = left * right
			case OpDiv:
				if right == 0 {
					return 0, errors.Wrapf(ErrDivisionByZero, "%d / 0 at pc %d", left, m.pc-1)
				}
				v = left / right // truncates toward zero
			}
			m.push(v)

		case OpRet:
			top, err := m.pop()
			if err != nil {
				return 0, err
			}
			m.trace(op)
			return top, nil

		default:
			return 0, errors.Wrapf(ErrUnknownInstruction, "opcode 0x%02x at pc %d", op, m.pc-1)
		}

		m.trace(op)
	}
	return 0, errors.Wrap(ErrTruncatedProgram, "ran off the end without a RET")
}

func (m *Machine) trace(op byte) {
	if TraceOut == nil {
		return
	}
	fmt.Fprintf(TraceOut, "vm: pc=%-3d %-4s stack=%v\n", m.pc, opNames[op], m.stack)
}
