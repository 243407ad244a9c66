package parser

// Binding powers: one pair of plain integers per operator role. Comparing
// powers is all the precedence logic there is; an infix operator with
// left < right associates to the left, left > right to the right. The table
// is fixed at compile time and shared by every parse.
//
//	=      infix    2, 1    right-associative
//	?      infix    4, 3    ternary head, see parseExpr
//	+ -    infix    5, 6
//	* /    infix    7, 8
//	+ -    prefix   9
//	! [    postfix  11
//	.      infix    14, 13  right-associative
//
// '(' and ')' never reach the table. Grouping is a structural rule in
// parseOperand that restarts at the lowest power and consumes its own ')',
// so neither delimiter can be picked up by the operator loop.

// prefixPower returns the right binding power of op in prefix position.
func prefixPower(op string) (int, bool) {
	switch op {
	case "+", "-":
		return 9, true
	}
	return 0, false
}

// infixPower returns the left and right binding powers of op in infix
// position.
func infixPower(op string) (int, int, bool) {
	switch op {
	case "=":
		return 2, 1, true
	case "?":
		return 4, 3, true
	case "+", "-":
		return 5, 6, true
	case "*", "/":
		return 7, 8, true
	case ".":
		return 14, 13, true
	}
	return 0, 0, false
}

// postfixPower returns the left binding power of op in postfix position.
func postfixPower(op string) (int, bool) {
	switch op {
	case "!", "[":
		return 11, true
	}
	return 0, false
}
