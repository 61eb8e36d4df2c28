package quad

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type names map[string]bool

func (n names) Exists(name string) bool {
	return n[name]
}

func TestTempAllocatorSequence(t *testing.T) {
	a := NewTempAllocator(names{}, "ti", "tf")

	assert.Equal(t, Operand{Kind: IntTemp, Text: "ti0"}, a.NewInt())
	assert.Equal(t, Operand{Kind: IntTemp, Text: "ti1"}, a.NewInt())
	assert.Equal(t, Operand{Kind: FloatTemp, Text: "tf0"}, a.NewFloat())
	assert.Equal(t, Operand{Kind: IntTemp, Text: "ti2"}, a.NewInt())
}

func TestTempAllocatorSkipsRegisteredNames(t *testing.T) {
	taken := names{"ti0": true, "ti1": true, "ti3": true, "tf0": true, "tf2": true}
	a := NewTempAllocator(taken, "ti", "tf")

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		for _, op := range []Operand{a.NewInt(), a.NewFloat()} {
			assert.False(t, taken[op.Text], "collides with identifier %s", op.Text)
			assert.False(t, seen[op.Text], "duplicate temporary %s", op.Text)
			seen[op.Text] = true
		}
	}
	assert.Len(t, seen, 100)
}

func TestTempAllocatorSkipsLongRuns(t *testing.T) {
	taken := names{}
	for i := 0; i < 20; i++ {
		taken[fmt.Sprintf("ti%d", i)] = true
	}
	a := NewTempAllocator(taken, "ti", "tf")

	assert.Equal(t, "ti20", a.NewInt().Text)
	assert.Equal(t, "ti21", a.NewInt().Text)
}

func TestLabelAllocator(t *testing.T) {
	a := NewLabelAllocator("L")
	assert.Equal(t, Label("L0"), a.New())
	assert.Equal(t, Label("L1"), a.New())
	assert.Equal(t, Label("L2"), a.New())
}
