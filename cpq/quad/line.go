package quad

import (
	"fmt"
	"strings"
)

// Label is a jump target. Labels live in their own namespace and have no type.
type Label string

// String returns the label name.
func (l Label) String() string {
	return string(l)
}

// Line is a single line of generated code: either an instruction or a label
// definition.
type Line struct {
	Label Label // set only for label definitions
	Op    Opcode
	Args  []fmt.Stringer
}

// Instr returns an instruction line.
func Instr(op Opcode, args ...fmt.Stringer) Line {
	return Line{Op: op, Args: args}
}

// Define returns the line that marks the position of a label.
func Define(label Label) Line {
	return Line{Label: label}
}

// IsLabel reports whether the line defines a label.
func (l Line) IsLabel() bool {
	return l.Label != ""
}

// String renders the line in QUAD syntax, e.g. "IADD ti0 a b" or "L3:".
func (l Line) String() string {
	if l.IsLabel() {
		return string(l.Label) + ":"
	}

	var sb strings.Builder
	sb.WriteString(l.Op.String())
	for _, arg := range l.Args {
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}
	return sb.String()
}

// Render returns the code as newline separated text.
func Render(code []Line) string {
	lines := make([]string, len(code))
	for i, line := range code {
		lines[i] = line.String()
	}
	return strings.Join(lines, "\n")
}
