package rpn

import "errors"

// ErrNonNumeric reports a leaf that does not fit a 64-bit integer. The
// instruction set has no variable loads, so a name like "x" parses and
// renders but can never be linearized into an executable program.
var ErrNonNumeric = errors.New("leaf is not a 64-bit integer")

// BackendError marks a failure that crossed the backend boundary, whether
// the backend refused the program at compile time or the compiled function
// faulted while running. errors.As picks out the kind; errors.Is still
// reaches the backend's own sentinel through Unwrap.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string { return "backend: " + e.Err.Error() }
func (e *BackendError) Unwrap() error { return e.Err }
