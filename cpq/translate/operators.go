package translate

import "github.com/nof-sh/cpq/cpq/quad"

// ArithOp is an arithmetic operator of an expression or term.
type ArithOp int

// Arithmetic operators
const (
	Add      ArithOp = iota // +
	Subtract                // -
	Multiply                // *
	Divide                  // /
)

// ParseArithOp returns the operator spelled by lexeme.
func ParseArithOp(lexeme string) (ArithOp, bool) {
	switch lexeme {
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	case "*":
		return Multiply, true
	case "/":
		return Divide, true
	}
	return 0, false
}

func (op ArithOp) family() quad.Family {
	switch op {
	case Add:
		return quad.Add
	case Subtract:
		return quad.Subtract
	case Multiply:
		return quad.Multiply
	case Divide:
		return quad.Divide
	}
	quad.Internalf("unknown arithmetic operator %d", int(op))
	return 0
}

// RelOp is a relational operator of a boolfactor.
type RelOp int

// Relational operators
const (
	EqualTo              RelOp = iota // ==
	NotEqualTo                        // !=
	GreaterThan                       // >
	LessThan                          // <
	GreaterThanOrEqualTo              // >=
	LessThanOrEqualTo                 // <=
)

// ParseRelOp returns the operator spelled by lexeme.
func ParseRelOp(lexeme string) (RelOp, bool) {
	switch lexeme {
	case "==":
		return EqualTo, true
	case "!=":
		return NotEqualTo, true
	case ">":
		return GreaterThan, true
	case "<":
		return LessThan, true
	case ">=":
		return GreaterThanOrEqualTo, true
	case "<=":
		return LessThanOrEqualTo, true
	}
	return 0, false
}
