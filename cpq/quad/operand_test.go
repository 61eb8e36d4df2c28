package quad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralClassification(t *testing.T) {
	assert.Equal(t, IntLiteral, Literal("42").Kind)
	assert.Equal(t, FloatLiteral, Literal("4.2").Kind)
	assert.Equal(t, FloatLiteral, Literal("4.").Kind)
	assert.True(t, Literal("0").IsLiteral())
	assert.False(t, Ident("x").IsLiteral())
}

func TestWidenLiteral(t *testing.T) {
	widened := Literal("3").Widened()
	assert.Equal(t, FloatLiteral, widened.Kind)
	assert.Equal(t, "3.0", widened.String())
}

func TestNarrowLiteral(t *testing.T) {
	cases := map[string]string{
		"3.75":  "3",
		"10.0":  "10",
		"7.":    "7",
		"0.5":   "0",
		"007.9": "7",
	}
	for in, want := range cases {
		narrowed := Literal(in).Narrowed()
		assert.Equal(t, IntLiteral, narrowed.Kind, in)
		assert.Equal(t, want, narrowed.String(), in)
	}
}

func TestWidenNonLiteralPanics(t *testing.T) {
	assert.PanicsWithError(t, `internal compiler error: cannot widen "x": not an integer literal`, func() {
		Ident("x").Widened()
	})
	assert.Panics(t, func() { Literal("1").Narrowed() })
}
