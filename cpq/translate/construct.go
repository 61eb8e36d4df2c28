package translate

import "github.com/nof-sh/cpq/cpq/quad"

// Construct is the translation of one grammar constituent: the code it emits
// and, for expressions, the operand holding its value. A poisoned construct
// carries a local error; rules that consume it emit nothing and are poisoned
// themselves.
type Construct struct {
	Code     []quad.Line
	Value    quad.Operand
	poisoned bool
}

// Poisoned returns a construct that carries an error.
func Poisoned() Construct {
	return Construct{poisoned: true}
}

// Value returns an expression construct with no code.
func Value(op quad.Operand) Construct {
	return Construct{Value: op}
}

// IsPoisoned reports whether the construct carries an error.
func (c Construct) IsPoisoned() bool {
	return c.poisoned
}

func anyPoisoned(cs ...Construct) bool {
	for _, c := range cs {
		if c.poisoned {
			return true
		}
	}
	return false
}

// join concatenates code into a fresh slice so no construct shares its
// backing array with another.
func join(parts ...[]quad.Line) []quad.Line {
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	code := make([]quad.Line, 0, n)
	for _, part := range parts {
		code = append(code, part...)
	}
	return code
}
