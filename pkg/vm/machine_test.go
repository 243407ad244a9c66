package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MustafaAamir/JITxpr/pkg/rpn"
)

// runPostfix assembles a postfix string and runs it on a fresh machine.
func runPostfix(t *testing.T, postfix string) (int64, error) {
	t.Helper()
	prog, err := rpn.ParseProgram(postfix)
	require.NoError(t, err)
	code, err := Assemble(prog)
	require.NoError(t, err)
	return NewMachine(code).Run()
}

func TestMachineRun(t *testing.T) {
	tests := []struct {
		name    string
		postfix string
		want    int64
	}{
		{name: "Add", postfix: "3 4 +", want: 7},
		{name: "Sub", postfix: "10 5 -", want: 5},
		{name: "Mul", postfix: "6 7 *", want: 42},
		{name: "Div", postfix: "8 2 /", want: 4},
		{name: "Div Truncates", postfix: "7 2 /", want: 3},
		{name: "Div Truncates Toward Zero", postfix: "-7 2 /", want: -3},
		{name: "Precedence Shape", postfix: "3 4 5 * +", want: 23},
		{name: "Grouped Shape", postfix: "3 4 + 5 *", want: 35},
		{name: "Chained", postfix: "1 2 + 3 * 4 - 5 *", want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runPostfix(t, tt.postfix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestMachineOperandOrder pins the pop order: the first pop is the right
// operand, so "10 3 -" is 10 minus 3 and not the reverse.
func TestMachineOperandOrder(t *testing.T) {
	got, err := runPostfix(t, "10 3 -")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	got, err = runPostfix(t, "20 5 /")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestMachineDivisionByZero(t *testing.T) {
	_, err := runPostfix(t, "1 0 /")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// The fault happens at run time, not compile time.
	prog, err := rpn.ParseProgram("1 0 /")
	require.NoError(t, err)
	_, err = Assemble(prog)
	assert.NoError(t, err)
}

// TestMachineRawBytecodeFaults covers bytecode that did not come out of
// Assemble; the machine must fail cleanly rather than misread it.
func TestMachineRawBytecodeFaults(t *testing.T) {
	tests := []struct {
		name    string
		code    []byte
		wantErr error
	}{
		{name: "Truncated Push", code: []byte{OpPush, 0x01, 0x02}, wantErr: ErrTruncatedProgram},
		{name: "Missing Ret", code: []byte{OpPush, 1, 0, 0, 0, 0, 0, 0, 0}, wantErr: ErrTruncatedProgram},
		{name: "Unknown Opcode", code: []byte{0xFF}, wantErr: ErrUnknownInstruction},
		{name: "Ret On Empty Stack", code: []byte{OpRet}, wantErr: ErrStackUnderflow},
		{name: "Add On Empty Stack", code: []byte{OpAdd}, wantErr: ErrStackUnderflow},
		{name: "Empty Code", code: nil, wantErr: ErrTruncatedProgram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMachine(tt.code).Run()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMachineTrace(t *testing.T) {
	var buf bytes.Buffer
	TraceOut = &buf
	t.Cleanup(func() { TraceOut = nil })

	got, err := runPostfix(t, "3 4 +")
	require.NoError(t, err)
	require.Equal(t, int64(7), got)

	out := buf.String()
	assert.Contains(t, out, "PUSH")
	assert.Contains(t, out, "ADD")
	assert.Contains(t, out, "RET")
	assert.Contains(t, out, "stack=[7]")
}
