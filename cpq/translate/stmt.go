package translate

import (
	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/quad"
)

// Name is an identifier together with where it was written.
type Name struct {
	Text string
	Pos  diag.Position
}

// Declare gives every name of an id-list its declared type. Declaring a name
// again replaces its type and is reported as a warning.
//
//	declaration -> idlist ':' type ';'
func (e *Engine) Declare(names []Name, typ quad.Type) Construct {
	for _, name := range names {
		if prev := e.symbols.TypeOf(name.Text); prev != quad.Unknown {
			e.warnf(diag.Redeclared, name.Pos, "variable %s already declared as %s, now %s", name.Text, prev, typ)
		}
		if err := e.symbols.SetType(name.Text, typ); err != nil {
			e.errorf(diag.Internal, name.Pos, "%s", err)
		}
	}
	return Construct{}
}

// Assign translates an assignment. An int value stored into a float variable
// is widened; a float value stored into an int variable is an error.
//
//	assignment_stmt -> ID '=' expression ';'
func (e *Engine) Assign(target Name, expr Construct) Construct {
	if expr.IsPoisoned() {
		return Poisoned()
	}

	typ := e.symbols.TypeOf(target.Text)
	value := expr.Value
	var conv []quad.Line

	switch typ {
	case quad.Unknown:
		e.errorf(diag.Undeclared, target.Pos, "assignment to undeclared variable %s", target.Text)
		return Poisoned()

	case quad.Integer:
		if e.typeOf(value) == quad.Float {
			e.errorf(diag.TypeMismatch, target.Pos, "cannot assign float value to int variable %s", target.Text)
			return Poisoned()
		}

	case quad.Float:
		conv, value = e.widen(value)
	}

	code := join(expr.Code, conv, []quad.Line{
		quad.Instr(quad.Store.For(typ), quad.Ident(target.Text), value),
	})
	return Construct{Code: code}
}

// Input translates reading a value into a variable.
//
//	input_stmt -> INPUT '(' ID ')' ';'
func (e *Engine) Input(target Name) Construct {
	typ := e.symbols.TypeOf(target.Text)
	if typ == quad.Unknown {
		e.errorf(diag.Undeclared, target.Pos, "input into undeclared variable %s", target.Text)
		return Poisoned()
	}
	return Construct{Code: []quad.Line{quad.Instr(quad.Input.For(typ), quad.Ident(target.Text))}}
}

// Output translates printing an expression.
//
//	output_stmt -> OUTPUT '(' expression ')' ';'
func (e *Engine) Output(expr Construct) Construct {
	if expr.IsPoisoned() {
		return Poisoned()
	}

	out := quad.Instr(quad.Print.For(e.typeOf(expr.Value)), expr.Value)
	return Construct{Code: join(expr.Code, []quad.Line{out})}
}

// If translates a two-armed conditional:
//
//	<condition>
//	JMPZ else cond
//	<then>
//	JUMP end
//	else:
//	<else>
//	end:
//
//	if_stmt -> IF '(' boolexpr ')' stmt ELSE stmt
func (e *Engine) If(cond, then, els Construct) Construct {
	if cond.IsPoisoned() {
		return Poisoned()
	}

	end := e.labels.New()
	elseLabel := e.labels.New()

	code := join(
		cond.Code,
		[]quad.Line{quad.Instr(quad.JMPZ, elseLabel, cond.Value)},
		then.Code,
		[]quad.Line{quad.Instr(quad.JUMP, end), quad.Define(elseLabel)},
		els.Code,
		[]quad.Line{quad.Define(end)},
	)
	return Construct{Code: code}
}

// While translates a loop:
//
//	entry:
//	<condition>
//	JMPZ exit cond
//	<body>
//	JUMP entry
//	exit:
//
//	while_stmt -> WHILE '(' boolexpr ')' stmt
func (e *Engine) While(cond, body Construct) Construct {
	if cond.IsPoisoned() {
		return Poisoned()
	}

	entry := e.labels.New()
	exit := e.labels.New()

	code := join(
		[]quad.Line{quad.Define(entry)},
		cond.Code,
		[]quad.Line{quad.Instr(quad.JMPZ, exit, cond.Value)},
		body.Code,
		[]quad.Line{quad.Instr(quad.JUMP, entry), quad.Define(exit)},
	)
	return Construct{Code: code}
}

// Switch accepts a switch statement without generating code for it.
//
//	switch_stmt -> SWITCH '(' expression ')' '{' caselist DEFAULT ':' stmtlist '}'
func (e *Engine) Switch(pos diag.Position, _ Construct) Construct {
	e.warnf(diag.Unimplemented, pos, "switch statement generates no code")
	return Construct{}
}

// Break accepts a break statement without generating code for it.
//
//	break_stmt -> BREAK ';'
func (e *Engine) Break() Construct {
	return Construct{}
}

// Statement closes a statement: an erroneous statement contributes no code,
// and its error does not spread to the enclosing statements.
//
//	stmt -> assignment_stmt | input_stmt | ... | stmt_block
func (e *Engine) Statement(stmt Construct) Construct {
	if stmt.IsPoisoned() {
		return Construct{}
	}
	return Construct{Code: stmt.Code}
}

// Block concatenates the code of a statement list.
//
//	stmt_block -> '{' stmtlist '}'
func (e *Engine) Block(stmts ...Construct) Construct {
	parts := make([][]quad.Line, len(stmts))
	for i, stmt := range stmts {
		parts[i] = e.Statement(stmt).Code
	}
	return Construct{Code: join(parts...)}
}

// Program closes the compilation unit. Declarations contribute no code, so
// the program is its statement block.
//
//	program -> declarations stmt_block
func (e *Engine) Program(body Construct) Construct {
	return e.Statement(body)
}
