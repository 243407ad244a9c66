package rpn

// Func is the zero-argument callable a backend produces: each invocation
// evaluates the compiled expression from scratch and returns its value.
type Func func() (int64, error)

// Backend turns a postfix program into an executable. The contract every
// implementation honors:
//
//   - maintain an integer evaluation stack;
//   - Push places the literal on it;
//   - Apply pops the right operand first, then the left, applies the
//     operator and pushes the single result;
//   - the program's value is the sole value left at the end;
//   - reject instructions you do not recognize instead of guessing.
//
// Parsing and linearization know nothing about any particular backend, and
// a backend never sees the expression tree.
type Backend interface {
	Compile(Program) (Func, error)
}
