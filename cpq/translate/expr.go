package translate

import (
	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/quad"
)

// Ident translates a factor naming a variable.
//
//	factor -> ID
func (e *Engine) Ident(name string, pos diag.Position) Construct {
	if e.symbols.TypeOf(name) == quad.Unknown {
		e.errorf(diag.Undeclared, pos, "use of undeclared variable %s", name)
		return Poisoned()
	}
	return Value(quad.Ident(name))
}

// Number translates a numeric literal factor.
//
//	factor -> NUM
func (e *Engine) Number(text string) Construct {
	return Value(quad.Literal(text))
}

// Arith translates a binary arithmetic operation. Two integers give an
// integer temporary; any float operand makes the result a float temporary.
//
//	expression -> expression ADDOP term
//	term -> term MULOP factor
func (e *Engine) Arith(op ArithOp, lhs, rhs Construct) Construct {
	if anyPoisoned(lhs, rhs) {
		return Poisoned()
	}

	var result quad.Operand
	if e.typeOf(lhs.Value) == quad.Integer && e.typeOf(rhs.Value) == quad.Integer {
		result = e.temps.NewInt()
	} else {
		result = e.temps.NewFloat()
	}

	code, l, r, typ := e.balance(lhs, rhs)
	code = append(code, quad.Instr(op.family().For(typ), result, l, r))
	return Construct{Code: code, Value: result}
}

// Cast translates an explicit conversion. Casting a value to its own type
// returns it unchanged.
//
//	factor -> CAST '(' expression ')'
func (e *Engine) Cast(target quad.Type, expr Construct) Construct {
	if expr.IsPoisoned() {
		return Poisoned()
	}
	if e.typeOf(expr.Value) == target {
		return expr
	}

	var conv []quad.Line
	var value quad.Operand
	switch target {
	case quad.Float:
		conv, value = e.widen(expr.Value)
	case quad.Integer:
		conv, value = e.narrow(expr.Value)
	default:
		quad.Internalf("cannot cast to %s", target)
	}
	return Construct{Code: join(expr.Code, conv), Value: value}
}
