package translate

import "github.com/nof-sh/cpq/cpq/quad"

// Boolean values are integers restricted to 0 and 1. QUAD has no logical or
// ordering-with-equality instructions, so those are built from arithmetic.

var (
	zero = quad.Literal("0")
	one  = quad.Literal("1")
)

// Relop translates a comparison into a fresh integer temporary holding 0 or 1.
// >= and <= are computed as (strict comparison + equality) > 0.
//
//	boolfactor -> expression RELOP expression
func (e *Engine) Relop(op RelOp, lhs, rhs Construct) Construct {
	if anyPoisoned(lhs, rhs) {
		return Poisoned()
	}

	result := e.temps.NewInt()
	code, l, r, typ := e.balance(lhs, rhs)

	var strict quad.Family
	switch op {
	case EqualTo:
		return e.compare(code, quad.Equal.For(typ), result, l, r)
	case NotEqualTo:
		return e.compare(code, quad.NotEqual.For(typ), result, l, r)
	case GreaterThan:
		return e.compare(code, quad.GreaterThan.For(typ), result, l, r)
	case LessThan:
		return e.compare(code, quad.LessThan.For(typ), result, l, r)
	case GreaterThanOrEqualTo:
		strict = quad.GreaterThan
	case LessThanOrEqualTo:
		strict = quad.LessThan
	default:
		quad.Internalf("unknown relational operator %d", int(op))
	}

	equal := e.temps.NewInt()
	sum := e.temps.NewInt()
	either := e.temps.NewInt()
	code = append(code,
		quad.Instr(strict.For(typ), result, l, r),
		quad.Instr(quad.Equal.For(typ), equal, l, r),
		quad.Instr(quad.IADD, sum, result, equal),
		quad.Instr(quad.IGRT, either, sum, zero),
	)
	return Construct{Code: code, Value: either}
}

func (e *Engine) compare(code []quad.Line, op quad.Opcode, result, l, r quad.Operand) Construct {
	return Construct{Code: append(code, quad.Instr(op, result, l, r)), Value: result}
}

// Not translates a logical negation as 1 - value.
//
//	boolfactor -> NOT '(' boolexpr ')'
func (e *Engine) Not(operand Construct) Construct {
	if operand.IsPoisoned() {
		return Poisoned()
	}

	result := e.temps.NewInt()
	code := join(operand.Code, []quad.Line{quad.Instr(quad.ISUB, result, one, operand.Value)})
	return Construct{Code: code, Value: result}
}

// And translates a conjunction: both sides are normalized with != 0, the
// product is tested with > 0.
//
//	boolterm -> boolterm AND boolfactor
func (e *Engine) And(lhs, rhs Construct) Construct {
	return e.combine(quad.IMLT, lhs, rhs)
}

// Or translates a disjunction: both sides are normalized with != 0, the sum
// is tested with > 0.
//
//	boolexpr -> boolexpr OR boolterm
func (e *Engine) Or(lhs, rhs Construct) Construct {
	return e.combine(quad.IADD, lhs, rhs)
}

func (e *Engine) combine(op quad.Opcode, lhs, rhs Construct) Construct {
	if anyPoisoned(lhs, rhs) {
		return Poisoned()
	}

	l := e.temps.NewInt()
	r := e.temps.NewInt()
	combined := e.temps.NewInt()
	result := e.temps.NewInt()
	code := join(lhs.Code, rhs.Code, []quad.Line{
		quad.Instr(quad.INQL, l, lhs.Value, zero),
		quad.Instr(quad.INQL, r, rhs.Value, zero),
		quad.Instr(op, combined, l, r),
		quad.Instr(quad.IGRT, result, combined, zero),
	})
	return Construct{Code: code, Value: result}
}
