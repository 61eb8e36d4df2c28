// Package parser is a recursive descent parser for CPL. It does not build a
// tree: every production hands the constructs of its children to the
// translation engine as soon as it has parsed them, so rules fire in
// post-order.
package parser

import (
	"strings"

	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/lexer"
	"github.com/nof-sh/cpq/cpq/quad"
	"github.com/nof-sh/cpq/cpq/translate"
)

// bailout is the panic value used to abandon a construct after a syntax
// error. It never escapes the parser.
type bailout struct{}

// Parser represents a CPL parser.
type Parser struct {
	scanner   *lexer.Scanner
	engine    *translate.Engine
	report    diag.Reporter
	lookahead lexer.Token

	errors    int
	lastError *diag.Position
}

// New returns a parser reading tokens from scanner and translating through
// engine. Syntax errors go to report.
func New(scanner *lexer.Scanner, engine *translate.Engine, report diag.Reporter) *Parser {
	return &Parser{
		scanner:   scanner,
		engine:    engine,
		report:    report,
		lookahead: scanner.Scan(),
	}
}

// Errors returns the number of syntax errors recorded.
func (p *Parser) Errors() int {
	return p.errors
}

// Parse parses a whole program and returns its translation.
//
//	program -> declarations stmt_block
func (p *Parser) Parse() (program translate.Construct) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			program = translate.Poisoned()
		}
		p.checkBraces()
	}()

	p.declarations()
	body := p.block()

	if p.lookahead.TokenType != lexer.EOF {
		p.unexpected("EOF")
	}

	return p.engine.Program(body)
}

// checkBraces drains the input and reports a nesting mismatch.
func (p *Parser) checkBraces() {
	for p.lookahead.TokenType != lexer.EOF {
		p.skip()
	}
	if depth := p.scanner.Depth(); depth > 0 {
		p.errorf(p.lookahead.Position, "%d unclosed {", depth)
	} else if depth < 0 {
		p.errorf(p.lookahead.Position, "%d unmatched }", -depth)
	}
}

func (p *Parser) skip() {
	p.lookahead = p.scanner.Scan()
}

// match consumes the lookahead if it is one of tokenTypes.
func (p *Parser) match(tokenTypes ...lexer.TokenType) (lexer.Token, bool) {
	for _, tokType := range tokenTypes {
		if tokType == p.lookahead.TokenType {
			token := p.lookahead
			p.skip()
			return token, true
		}
	}

	return p.lookahead, false
}

// expect consumes the lookahead, which must be one of tokenTypes.
func (p *Parser) expect(tokenTypes ...lexer.TokenType) lexer.Token {
	token, ok := p.match(tokenTypes...)
	if !ok {
		expected := make([]string, len(tokenTypes))
		for i, tokType := range tokenTypes {
			expected[i] = tokType.String()
		}
		p.unexpected(strings.Join(expected, ", "))
	}
	return token
}

// unexpected records a syntax error at the lookahead and abandons the
// current construct.
func (p *Parser) unexpected(expected string) {
	p.errorf(p.lookahead.Position, "found %s, expected %s", p.lookahead.Lexeme, expected)
	panic(bailout{})
}

// errorf records a syntax error unless one was already recorded at pos.
func (p *Parser) errorf(pos diag.Position, format string, args ...interface{}) {
	if p.lastError != nil && *p.lastError == pos {
		return
	}
	p.lastError = &pos
	p.errors++
	p.report.Report(diag.Errorf(diag.Syntax, pos, format, args...))
}

// guard runs parse. If parse bails out on a syntax error, the rest of the
// construct is skipped and a poisoned construct is returned instead.
func (p *Parser) guard(stopAtBlock bool, parse func() translate.Construct) (c translate.Construct) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize(stopAtBlock)
			c = translate.Poisoned()
		}
	}()
	return parse()
}

// synchronize discards tokens up to and including a ';' at the current
// nesting level, up to a '}' closing the enclosing block, or through the '}'
// closing a block that was opened while skipping.
func (p *Parser) synchronize(stopAtBlock bool) {
	level := 0
	for {
		switch p.lookahead.TokenType {
		case lexer.EOF:
			return

		case lexer.SEMICOLON:
			p.skip()
			if level == 0 {
				return
			}
			continue

		case lexer.LBRACKET:
			if stopAtBlock && level == 0 {
				return
			}
			level++

		case lexer.RBRACKET:
			if level == 0 {
				return
			}
			level--
			if level == 0 {
				p.skip()
				return
			}
		}
		p.skip()
	}
}

// declarations parses the declaration list.
//
//	declarations -> declarations declaration | ε
func (p *Parser) declarations() {
	for p.lookahead.TokenType == lexer.ID {
		p.guard(true, p.declaration)
	}
}

// declaration parses a single declaration.
//
//	declaration -> idlist ':' type ';'
func (p *Parser) declaration() translate.Construct {
	names := p.idList()
	p.expect(lexer.COLON)
	typ := p.typ()
	p.expect(lexer.SEMICOLON)

	return p.engine.Declare(names, typ)
}

// idList parses a comma separated list of names.
//
//	idlist -> idlist ',' ID | ID
func (p *Parser) idList() []translate.Name {
	token := p.expect(lexer.ID)
	names := []translate.Name{{Text: token.Lexeme, Pos: token.Position}}

	for {
		if _, ok := p.match(lexer.COMMA); !ok {
			return names
		}
		token = p.expect(lexer.ID)
		names = append(names, translate.Name{Text: token.Lexeme, Pos: token.Position})
	}
}

// typ parses a type name.
//
//	type -> INT | FLOAT
func (p *Parser) typ() quad.Type {
	if token := p.expect(lexer.INT, lexer.FLOAT); token.TokenType == lexer.FLOAT {
		return quad.Float
	}
	return quad.Integer
}

// statement parses one statement. A syntax error inside it abandons only
// this statement.
//
//	stmt -> assignment_stmt | input_stmt | output_stmt | if_stmt | while_stmt
//		| switch_stmt | break_stmt | stmt_block
func (p *Parser) statement() translate.Construct {
	return p.guard(false, func() translate.Construct {
		switch p.lookahead.TokenType {
		case lexer.ID:
			return p.assignment()
		case lexer.INPUT:
			return p.input()
		case lexer.OUTPUT:
			return p.output()
		case lexer.IF:
			return p.ifStatement()
		case lexer.WHILE:
			return p.whileStatement()
		case lexer.SWITCH:
			return p.switchStatement()
		case lexer.BREAK:
			return p.breakStatement()
		case lexer.LBRACKET:
			return p.block()
		}

		p.unexpected("statement")
		return translate.Poisoned()
	})
}

// assignment parses an assignment statement.
//
//	assignment_stmt -> ID '=' expression ';'
func (p *Parser) assignment() translate.Construct {
	target := p.expect(lexer.ID)
	p.expect(lexer.EQUALS)
	value := p.expression()
	p.expect(lexer.SEMICOLON)

	return p.engine.Assign(translate.Name{Text: target.Lexeme, Pos: target.Position}, value)
}

// input parses an input statement.
//
//	input_stmt -> INPUT '(' ID ')' ';'
func (p *Parser) input() translate.Construct {
	p.expect(lexer.INPUT)
	p.expect(lexer.LPAREN)
	target := p.expect(lexer.ID)
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)

	return p.engine.Input(translate.Name{Text: target.Lexeme, Pos: target.Position})
}

// output parses an output statement.
//
//	output_stmt -> OUTPUT '(' expression ')' ';'
func (p *Parser) output() translate.Construct {
	p.expect(lexer.OUTPUT)
	p.expect(lexer.LPAREN)
	value := p.expression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)

	return p.engine.Output(value)
}

// ifStatement parses an if statement. The else branch is mandatory.
//
//	if_stmt -> IF '(' boolexpr ')' stmt ELSE stmt
func (p *Parser) ifStatement() translate.Construct {
	p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.boolExpr()
	p.expect(lexer.RPAREN)
	then := p.statement()
	p.expect(lexer.ELSE)
	els := p.statement()

	return p.engine.If(cond, then, els)
}

// whileStatement parses a while loop.
//
//	while_stmt -> WHILE '(' boolexpr ')' stmt
func (p *Parser) whileStatement() translate.Construct {
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.boolExpr()
	p.expect(lexer.RPAREN)
	body := p.statement()

	return p.engine.While(cond, body)
}

// switchStatement parses a switch statement. The case bodies are translated
// for their diagnostics, but the statement itself produces no code.
//
//	switch_stmt -> SWITCH '(' expression ')' '{' caselist DEFAULT ':' stmtlist '}'
//	caselist -> caselist CASE NUM ':' stmtlist | ε
func (p *Parser) switchStatement() translate.Construct {
	start := p.expect(lexer.SWITCH)
	p.expect(lexer.LPAREN)
	value := p.expression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACKET)

	for p.lookahead.TokenType == lexer.CASE {
		p.skip()
		label := p.expect(lexer.NUM)
		if strings.Contains(label.Lexeme, ".") {
			p.report.Report(diag.Errorf(diag.TypeMismatch, label.Position, "case label %s is not an int", label.Lexeme))
		}
		p.expect(lexer.COLON)
		p.statements()
	}

	p.expect(lexer.DEFAULT)
	p.expect(lexer.COLON)
	p.statements()
	p.expect(lexer.RBRACKET)

	return p.engine.Switch(start.Position, value)
}

// breakStatement parses a break statement.
//
//	break_stmt -> BREAK ';'
func (p *Parser) breakStatement() translate.Construct {
	p.expect(lexer.BREAK)
	p.expect(lexer.SEMICOLON)

	return p.engine.Break()
}

// block parses a block of statements.
//
//	stmt_block -> '{' stmtlist '}'
func (p *Parser) block() translate.Construct {
	p.expect(lexer.LBRACKET)
	stmts := p.statements()
	p.expect(lexer.RBRACKET)

	return p.engine.Block(stmts...)
}

// statements parses statements up to the end of the enclosing block or
// switch case.
//
//	stmtlist -> stmtlist stmt | ε
func (p *Parser) statements() []translate.Construct {
	var stmts []translate.Construct
	for {
		switch p.lookahead.TokenType {
		case lexer.RBRACKET, lexer.EOF, lexer.CASE, lexer.DEFAULT:
			return stmts
		}
		stmts = append(stmts, p.statement())
	}
}

// boolExpr parses a disjunction.
//
//	boolexpr -> boolexpr OR boolterm | boolterm
func (p *Parser) boolExpr() translate.Construct {
	result := p.boolTerm()
	for {
		if _, ok := p.match(lexer.OR); !ok {
			return result
		}
		result = p.engine.Or(result, p.boolTerm())
	}
}

// boolTerm parses a conjunction.
//
//	boolterm -> boolterm AND boolfactor | boolfactor
func (p *Parser) boolTerm() translate.Construct {
	result := p.boolFactor()
	for {
		if _, ok := p.match(lexer.AND); !ok {
			return result
		}
		result = p.engine.And(result, p.boolFactor())
	}
}

// boolFactor parses a negation or a comparison.
//
//	boolfactor -> NOT '(' boolexpr ')' | expression RELOP expression
func (p *Parser) boolFactor() translate.Construct {
	if _, ok := p.match(lexer.NOT); ok {
		p.expect(lexer.LPAREN)
		operand := p.boolExpr()
		p.expect(lexer.RPAREN)
		return p.engine.Not(operand)
	}

	lhs := p.expression()
	relop := p.expect(lexer.RELOP)
	rhs := p.expression()

	op, ok := translate.ParseRelOp(relop.Lexeme)
	if !ok {
		quad.Internalf("scanner produced unknown relational operator %q", relop.Lexeme)
	}
	return p.engine.Relop(op, lhs, rhs)
}

// expression parses a sum.
//
//	expression -> expression ADDOP term | term
func (p *Parser) expression() translate.Construct {
	result := p.term()
	for {
		token, ok := p.match(lexer.ADDOP)
		if !ok {
			return result
		}
		result = p.engine.Arith(p.arithOp(token), result, p.term())
	}
}

// term parses a product.
//
//	term -> term MULOP factor | factor
func (p *Parser) term() translate.Construct {
	result := p.factor()
	for {
		token, ok := p.match(lexer.MULOP)
		if !ok {
			return result
		}
		result = p.engine.Arith(p.arithOp(token), result, p.factor())
	}
}

func (p *Parser) arithOp(token lexer.Token) translate.ArithOp {
	op, ok := translate.ParseArithOp(token.Lexeme)
	if !ok {
		quad.Internalf("scanner produced unknown arithmetic operator %q", token.Lexeme)
	}
	return op
}

// factor parses an operand.
//
//	factor -> '(' expression ')' | CAST '(' expression ')' | ID | NUM
func (p *Parser) factor() translate.Construct {
	switch p.lookahead.TokenType {
	case lexer.LPAREN:
		p.skip()
		result := p.expression()
		p.expect(lexer.RPAREN)
		return result

	case lexer.CAST:
		target := castType(p.lookahead.Lexeme)
		p.skip()
		p.expect(lexer.LPAREN)
		operand := p.expression()
		p.expect(lexer.RPAREN)
		return p.engine.Cast(target, operand)

	case lexer.ID:
		token := p.lookahead
		p.skip()
		return p.engine.Ident(token.Lexeme, token.Position)

	case lexer.NUM:
		token := p.lookahead
		p.skip()
		return p.engine.Number(token.Lexeme)
	}

	p.unexpected("expression")
	return translate.Poisoned()
}

func castType(lexeme string) quad.Type {
	switch lexeme {
	case "static_cast<int>":
		return quad.Integer
	case "static_cast<float>":
		return quad.Float
	}
	quad.Internalf("scanner produced unknown cast %q", lexeme)
	return quad.Unknown
}
