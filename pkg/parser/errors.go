package parser

import "errors"

// A failed parse is fatal to the whole line: Parse never returns a partial
// tree, and an identical input fails identically every time. Callers match
// the failure kind with errors.Is; the wrapped message carries the column
// and the offending lexeme.
var (
	// ErrUnexpectedToken reports a token that cannot appear where it was
	// found: end of input where an operand was required, a group missing
	// its ')', or trailing input after a complete expression.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnboundOperator reports an operator used in a role for which it
	// has no binding power, such as '*' in prefix position.
	ErrUnboundOperator = errors.New("operator has no binding power")
)
