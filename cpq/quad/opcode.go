package quad

// Opcode is a QUAD instruction mnemonic.
type Opcode int

// QUAD opcodes. I-prefixed opcodes work on integers, R-prefixed ones on reals.
const (
	IASN Opcode = iota // store
	RASN
	IPRT // print
	RPRT
	IINP // read input
	RINP
	IEQL // ==
	REQL
	INQL // !=
	RNQL
	ILSS // <
	RLSS
	IGRT // >
	RGRT
	IADD
	RADD
	ISUB
	RSUB
	IMLT
	RMLT
	IDIV
	RDIV
	ITOR // widen int to real
	RTOI // narrow real to int
	JUMP
	JMPZ
	HALT
)

var opcodes = [...]string{
	IASN: "IASN",
	RASN: "RASN",
	IPRT: "IPRT",
	RPRT: "RPRT",
	IINP: "IINP",
	RINP: "RINP",
	IEQL: "IEQL",
	REQL: "REQL",
	INQL: "INQL",
	RNQL: "RNQL",
	ILSS: "ILSS",
	RLSS: "RLSS",
	IGRT: "IGRT",
	RGRT: "RGRT",
	IADD: "IADD",
	RADD: "RADD",
	ISUB: "ISUB",
	RSUB: "RSUB",
	IMLT: "IMLT",
	RMLT: "RMLT",
	IDIV: "IDIV",
	RDIV: "RDIV",
	ITOR: "ITOR",
	RTOI: "RTOI",
	JUMP: "JUMP",
	JMPZ: "JMPZ",
	HALT: "HALT",
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	if op >= 0 && op < Opcode(len(opcodes)) {
		return opcodes[op]
	}
	return ""
}

// Family groups the integer and real members of a typed instruction.
type Family int

// Typed instruction families
const (
	Store Family = iota
	Print
	Input
	Equal
	NotEqual
	LessThan
	GreaterThan
	Add
	Subtract
	Multiply
	Divide
)

var families = [...]string{
	Store:       "store",
	Print:       "print",
	Input:       "input",
	Equal:       "equal",
	NotEqual:    "not-equal",
	LessThan:    "less-than",
	GreaterThan: "greater-than",
	Add:         "add",
	Subtract:    "subtract",
	Multiply:    "multiply",
	Divide:      "divide",
}

// String returns the name of the family.
func (f Family) String() string {
	if f >= 0 && f < Family(len(families)) {
		return families[f]
	}
	return "unknown"
}

// For returns the member of the family that operates on type t. Asking for a
// family or type that does not exist is an internal error.
func (f Family) For(t Type) Opcode {
	var integer, real Opcode
	switch f {
	case Store:
		integer, real = IASN, RASN
	case Print:
		integer, real = IPRT, RPRT
	case Input:
		integer, real = IINP, RINP
	case Equal:
		integer, real = IEQL, REQL
	case NotEqual:
		integer, real = INQL, RNQL
	case LessThan:
		integer, real = ILSS, RLSS
	case GreaterThan:
		integer, real = IGRT, RGRT
	case Add:
		integer, real = IADD, RADD
	case Subtract:
		integer, real = ISUB, RSUB
	case Multiply:
		integer, real = IMLT, RMLT
	case Divide:
		integer, real = IDIV, RDIV
	default:
		Internalf("unknown instruction family %d", int(f))
	}

	switch t {
	case Integer:
		return integer
	case Float:
		return real
	}
	Internalf("no %s instruction for type %s", f, t)
	return HALT
}
