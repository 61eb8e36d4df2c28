package lexer

import "github.com/nof-sh/cpq/cpq/diag"

// TokenType represents the kind of a lexical token.
type TokenType int

// CPL's tokens
const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Symbols
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // {
	RBRACKET  // }
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	EQUALS    // =

	// Keywords
	BREAK
	CASE
	DEFAULT
	ELSE
	FLOAT
	IF
	INPUT
	INT
	OUTPUT
	SWITCH
	WHILE

	// Operators
	RELOP // == | != | < | > | >= | <=
	ADDOP // + | -
	MULOP // * | /
	OR    // ||
	AND   // &&
	NOT   // !
	CAST  // static_cast<int> | static_cast<float>

	// Literals
	ID
	NUM
)

// Token is a single lexeme together with its kind and position.
type Token struct {
	TokenType TokenType
	Lexeme    string
	Position  diag.Position
}

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	// Symbols
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "{",
	RBRACKET:  "}",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	EQUALS:    "=",

	// Keywords
	BREAK:   "break",
	CASE:    "case",
	DEFAULT: "default",
	ELSE:    "else",
	FLOAT:   "float",
	IF:      "if",
	INPUT:   "input",
	INT:     "int",
	OUTPUT:  "output",
	SWITCH:  "switch",
	WHILE:   "while",

	// Operators
	RELOP: "RELOP",
	ADDOP: "ADDOP",
	MULOP: "MULOP",
	OR:    "||",
	AND:   "&&",
	NOT:   "!",
	CAST:  "CAST",

	// Literals
	ID:  "ID",
	NUM: "NUM",
}

// String returns the string representation of the token.
func (tok TokenType) String() string {
	if tok >= 0 && tok < TokenType(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

var keywords = map[string]TokenType{
	"break":   BREAK,
	"case":    CASE,
	"default": DEFAULT,
	"else":    ELSE,
	"float":   FLOAT,
	"if":      IF,
	"input":   INPUT,
	"int":     INT,
	"output":  OUTPUT,
	"switch":  SWITCH,
	"while":   WHILE,
}
