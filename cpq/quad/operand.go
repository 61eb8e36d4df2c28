package quad

import "strings"

// Kind tags the variant of an Operand.
type Kind int

// Operand variants
const (
	NoOperand Kind = iota
	Identifier
	IntTemp
	FloatTemp
	IntLiteral
	FloatLiteral
)

// Operand is an immutable instruction argument. Two operands are the same
// operand when they print the same.
type Operand struct {
	Kind Kind
	Text string
}

// Ident returns an operand naming a source variable.
func Ident(name string) Operand {
	return Operand{Kind: Identifier, Text: name}
}

// Literal returns a numeric literal operand, classified by its lexical form:
// a literal containing '.' is a float, anything else is an integer.
func Literal(text string) Operand {
	if strings.ContainsRune(text, '.') {
		return Operand{Kind: FloatLiteral, Text: text}
	}
	return Operand{Kind: IntLiteral, Text: text}
}

// String returns the operand as it appears in QUAD code.
func (o Operand) String() string {
	return o.Text
}

// IsLiteral reports whether o is a numeric literal.
func (o Operand) IsLiteral() bool {
	return o.Kind == IntLiteral || o.Kind == FloatLiteral
}

// Widened returns the float literal spelling of an integer literal ("3" becomes
// "3.0"). No instruction is needed for this conversion.
func (o Operand) Widened() Operand {
	if o.Kind != IntLiteral {
		Internalf("cannot widen %q: not an integer literal", o.Text)
	}
	return Operand{Kind: FloatLiteral, Text: o.Text + ".0"}
}

// Narrowed returns the integer literal obtained by truncating a float literal
// ("3.75" becomes "3", ".5" becomes "0").
func (o Operand) Narrowed() Operand {
	if o.Kind != FloatLiteral {
		Internalf("cannot narrow %q: not a float literal", o.Text)
	}

	whole := o.Text
	if i := strings.IndexByte(whole, '.'); i >= 0 {
		whole = whole[:i]
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	return Operand{Kind: IntLiteral, Text: whole}
}
