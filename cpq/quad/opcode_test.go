package quad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyFor(t *testing.T) {
	cases := []struct {
		family  Family
		integer Opcode
		real    Opcode
	}{
		{Store, IASN, RASN},
		{Print, IPRT, RPRT},
		{Input, IINP, RINP},
		{Equal, IEQL, REQL},
		{NotEqual, INQL, RNQL},
		{LessThan, ILSS, RLSS},
		{GreaterThan, IGRT, RGRT},
		{Add, IADD, RADD},
		{Subtract, ISUB, RSUB},
		{Multiply, IMLT, RMLT},
		{Divide, IDIV, RDIV},
	}
	for _, c := range cases {
		assert.Equal(t, c.integer, c.family.For(Integer), c.family.String())
		assert.Equal(t, c.real, c.family.For(Float), c.family.String())
	}
}

func TestFamilyForUnknownTypePanics(t *testing.T) {
	assert.Panics(t, func() { Add.For(Unknown) })
	assert.Panics(t, func() { Family(99).For(Integer) })
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "IADD ti0 a 1", Instr(IADD, Operand{Kind: IntTemp, Text: "ti0"}, Ident("a"), Literal("1")).String())
	assert.Equal(t, "JMPZ L1 ti2", Instr(JMPZ, Label("L1"), Operand{Kind: IntTemp, Text: "ti2"}).String())
	assert.Equal(t, "HALT", Instr(HALT).String())
	assert.Equal(t, "L4:", Define("L4").String())
	assert.Equal(t, "RPRT 3.14\nL0:", Render([]Line{Instr(RPRT, Literal("3.14")), Define("L0")}))
}
