package symtab

import (
	"testing"

	"github.com/nof-sh/cpq/cpq/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	table := New()
	table.Register("x")
	require.NoError(t, table.SetType("x", quad.Float))

	table.Register("x")

	assert.True(t, table.Exists("x"))
	assert.Equal(t, quad.Float, table.TypeOf("x"))
	assert.Equal(t, 1, table.Len())
}

func TestRegisteredNameHasNoType(t *testing.T) {
	table := New()
	table.Register("y")

	assert.True(t, table.Exists("y"))
	assert.Equal(t, quad.Unknown, table.TypeOf("y"))
	assert.False(t, table.Exists("z"))
	assert.Equal(t, quad.Unknown, table.TypeOf("z"))
}

func TestSetTypeOverwrites(t *testing.T) {
	table := New()
	table.Register("a")

	require.NoError(t, table.SetType("a", quad.Integer))
	require.NoError(t, table.SetType("a", quad.Float))

	assert.Equal(t, quad.Float, table.TypeOf("a"))
}

func TestSetTypeOfUnregisteredName(t *testing.T) {
	table := New()

	err := table.SetType("ghost", quad.Integer)

	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.False(t, table.Exists("ghost"))
}

func TestNamesAreSorted(t *testing.T) {
	table := New()
	for _, name := range []string{"c", "a", "b"} {
		table.Register(name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, table.Names())
}
