// Package diag records the errors and warnings found while compiling a CPL
// program. Compilation never stops on a diagnostic; the driver decides at the
// end whether any output may be produced.
package diag

import (
	"fmt"
	"sort"
)

// Position specifies the line and character position of a token.
// The Column and Line are both zero-based indexes.
type Position struct {
	Line   int
	Column int
}

// Severity tells whether a diagnostic invalidates the program.
type Severity int

// Severities
const (
	Error Severity = iota
	Warning
)

// Kind classifies a diagnostic.
type Kind int

// Kinds of diagnostics
const (
	// Lexical: an unrecognized character or an unterminated comment.
	Lexical Kind = iota
	// Syntax: an unexpected token.
	Syntax
	// Undeclared: a variable used, assigned or read without a declaration.
	Undeclared
	// TypeMismatch: a float value assigned to an int variable.
	TypeMismatch
	// Redeclared: a variable declared more than once.
	Redeclared
	// Unimplemented: a construct that is accepted but generates no code.
	Unimplemented
	// Internal: the compiler broke one of its own invariants.
	Internal
)

var kinds = [...]string{
	Lexical:       "Lexical",
	Syntax:        "Syntax",
	Undeclared:    "Semantic",
	TypeMismatch:  "Semantic",
	Redeclared:    "Declaration",
	Unimplemented: "Usage",
	Internal:      "Internal",
}

// String returns the category name of the kind.
func (k Kind) String() string {
	if k >= 0 && k < Kind(len(kinds)) {
		return kinds[k]
	}
	return ""
}

// Diagnostic represents an error or warning found during compilation.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Pos      Position
}

// Error returns the string representation of the diagnostic.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at line %d, char %d", d.Message, d.Pos.Line+1, d.Pos.Column+1)
}

// IsError reports whether the diagnostic invalidates the program.
func (d Diagnostic) IsError() bool {
	return d.Severity == Error
}

// Errorf builds an error diagnostic.
func Errorf(kind Kind, pos Position, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Severity: Error, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Warnf builds a warning diagnostic.
func Warnf(kind Kind, pos Position, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Severity: Warning, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Reporter receives diagnostics as they are found.
type Reporter interface {
	Report(d Diagnostic)
}

// Bag collects the diagnostics of one compilation unit.
type Bag struct {
	items  []Diagnostic
	errors int
}

// Report records d.
func (b *Bag) Report(d Diagnostic) {
	b.items = append(b.items, d)
	if d.IsError() {
		b.errors++
	}
}

// Items returns the recorded diagnostics ordered by position. Diagnostics at
// the same position keep the order they were reported in.
func (b *Bag) Items() []Diagnostic {
	items := make([]Diagnostic, len(b.items))
	copy(items, b.items)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Pos.Line != items[j].Pos.Line {
			return items[i].Pos.Line < items[j].Pos.Line
		}
		return items[i].Pos.Column < items[j].Pos.Column
	})
	return items
}

// Errors returns the number of error diagnostics.
func (b *Bag) Errors() int {
	return b.errors
}

// Warnings returns the number of warning diagnostics.
func (b *Bag) Warnings() int {
	return len(b.items) - b.errors
}

// HasErrors reports whether the program is invalid.
func (b *Bag) HasErrors() bool {
	return b.errors > 0
}

// Len returns the number of recorded diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}
