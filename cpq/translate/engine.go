// Package translate is the syntax-directed translation engine: one rule per
// grammar construct, each taking the constructs of the children and
// returning the construct of the parent.
package translate

import (
	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/quad"
)

// SymbolTable is the view of the symbol table the engine needs.
type SymbolTable interface {
	TypeOf(name string) quad.Type
	SetType(name string, typ quad.Type) error
}

// Engine holds the per-compilation state shared by the translation rules.
// An Engine must not be reused across compilation units.
type Engine struct {
	symbols SymbolTable
	temps   *quad.TempAllocator
	labels  *quad.LabelAllocator
	report  diag.Reporter
}

// NewEngine returns a translation engine.
func NewEngine(symbols SymbolTable, temps *quad.TempAllocator, labels *quad.LabelAllocator, report diag.Reporter) *Engine {
	return &Engine{
		symbols: symbols,
		temps:   temps,
		labels:  labels,
		report:  report,
	}
}

// typeOf classifies an operand. Identifiers resolve through the symbol table,
// literals by their spelling and temporaries by their kind.
func (e *Engine) typeOf(op quad.Operand) quad.Type {
	switch op.Kind {
	case quad.Identifier:
		if t := e.symbols.TypeOf(op.Text); t != quad.Unknown {
			return t
		}
	case quad.IntTemp, quad.IntLiteral:
		return quad.Integer
	case quad.FloatTemp, quad.FloatLiteral:
		return quad.Float
	}

	quad.Internalf("operand %q has no type", op.Text)
	return quad.Unknown
}

// widen converts an integer operand to a float one. Literals are respelled,
// anything else goes through a fresh float temporary.
func (e *Engine) widen(op quad.Operand) ([]quad.Line, quad.Operand) {
	if e.typeOf(op) == quad.Float {
		return nil, op
	}
	if op.IsLiteral() {
		return nil, op.Widened()
	}

	result := e.temps.NewFloat()
	return []quad.Line{quad.Instr(quad.ITOR, result, op)}, result
}

// narrow converts a float operand to an integer one.
func (e *Engine) narrow(op quad.Operand) ([]quad.Line, quad.Operand) {
	if e.typeOf(op) == quad.Integer {
		return nil, op
	}
	if op.IsLiteral() {
		return nil, op.Narrowed()
	}

	result := e.temps.NewInt()
	return []quad.Line{quad.Instr(quad.RTOI, result, op)}, result
}

// balance concatenates the code of both operands and brings their values to
// a common type, widening the integer side of a mixed pair.
func (e *Engine) balance(lhs, rhs Construct) ([]quad.Line, quad.Operand, quad.Operand, quad.Type) {
	code := join(lhs.Code, rhs.Code)
	l, r := lhs.Value, rhs.Value

	switch lt, rt := e.typeOf(l), e.typeOf(r); {
	case lt == quad.Integer && rt == quad.Integer:
		return code, l, r, quad.Integer

	case lt == quad.Float && rt == quad.Float:
		return code, l, r, quad.Float

	case lt == quad.Float && rt == quad.Integer:
		widen, fr := e.widen(r)
		return join(code, widen), l, fr, quad.Float

	case lt == quad.Integer && rt == quad.Float:
		widen, fl := e.widen(l)
		return join(code, widen), fl, r, quad.Float

	default:
		quad.Internalf("unhandled operand types %s and %s", lt, rt)
	}
	return nil, l, r, quad.Unknown
}

func (e *Engine) errorf(kind diag.Kind, pos diag.Position, format string, args ...interface{}) {
	e.report.Report(diag.Errorf(kind, pos, format, args...))
}

func (e *Engine) warnf(kind diag.Kind, pos diag.Position, format string, args ...interface{}) {
	e.report.Report(diag.Warnf(kind, pos, format, args...))
}
