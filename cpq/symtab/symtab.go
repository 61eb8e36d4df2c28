// Package symtab holds the names and types of the variables of one
// compilation unit.
package symtab

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nof-sh/cpq/cpq/quad"
)

// ErrNotRegistered is returned when typing a name the scanner never saw.
var ErrNotRegistered = errors.New("symbol not registered")

// Table maps every scanned identifier to its declared type. A name is
// registered (with type quad.Unknown) as soon as it is scanned and typed once
// its declaration is translated.
type Table struct {
	entries map[string]quad.Type
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{entries: map[string]quad.Type{}}
}

// Register adds name with no type. Registering a known name does nothing.
func (t *Table) Register(name string) {
	if _, exists := t.entries[name]; !exists {
		t.entries[name] = quad.Unknown
	}
}

// Exists reports whether name has been registered.
func (t *Table) Exists(name string) bool {
	_, exists := t.entries[name]
	return exists
}

// TypeOf returns the declared type of name, or quad.Unknown when the name is
// unregistered or was never declared.
func (t *Table) TypeOf(name string) quad.Type {
	return t.entries[name]
}

// SetType sets the type of a registered name, replacing any previous type.
func (t *Table) SetType(name string, typ quad.Type) error {
	if _, exists := t.entries[name]; !exists {
		return fmt.Errorf("cannot set type of %s: %w", name, ErrNotRegistered)
	}
	t.entries[name] = typ
	return nil
}

// Names returns all registered names in lexical order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (t *Table) Len() int {
	return len(t.entries)
}
