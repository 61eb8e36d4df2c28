package quad

import "strconv"

// Registry reports whether a name is already taken by a source identifier.
type Registry interface {
	Exists(name string) bool
}

// TempAllocator hands out fresh temporaries for one compilation unit. A
// candidate name that collides with a registered identifier is skipped.
type TempAllocator struct {
	names       Registry
	intPrefix   string
	floatPrefix string
	intCount    int
	floatCount  int
}

// NewTempAllocator returns a TempAllocator whose names never collide with
// names in the registry.
func NewTempAllocator(names Registry, intPrefix, floatPrefix string) *TempAllocator {
	return &TempAllocator{
		names:       names,
		intPrefix:   intPrefix,
		floatPrefix: floatPrefix,
	}
}

// NewInt returns a fresh integer temporary.
func (a *TempAllocator) NewInt() Operand {
	return Operand{Kind: IntTemp, Text: a.next(a.intPrefix, &a.intCount)}
}

// NewFloat returns a fresh float temporary.
func (a *TempAllocator) NewFloat() Operand {
	return Operand{Kind: FloatTemp, Text: a.next(a.floatPrefix, &a.floatCount)}
}

func (a *TempAllocator) next(prefix string, count *int) string {
	name := prefix + strconv.Itoa(*count)
	for a.names.Exists(name) {
		*count++
		name = prefix + strconv.Itoa(*count)
	}
	*count++
	return name
}

// LabelAllocator hands out sequential labels for one compilation unit.
type LabelAllocator struct {
	prefix string
	count  int
}

// NewLabelAllocator returns a LabelAllocator starting at <prefix>0.
func NewLabelAllocator(prefix string) *LabelAllocator {
	return &LabelAllocator{prefix: prefix}
}

// New returns the next label.
func (a *LabelAllocator) New() Label {
	label := Label(a.prefix + strconv.Itoa(a.count))
	a.count++
	return label
}
