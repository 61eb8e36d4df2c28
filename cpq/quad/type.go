package quad

import "fmt"

// Type represents the primitive data types available in CPL.
type Type int

const (
	// Unknown primitive data type. A declared-but-untyped name has this type.
	Unknown Type = iota
	// Float means the data type is a float.
	Float
	// Integer means the data type is an integer.
	Integer
)

// String returns the CPL keyword for the type.
func (t Type) String() string {
	switch t {
	case Float:
		return "float"
	case Integer:
		return "int"
	}
	return "unknown"
}

// InternalError is raised (as a panic) when the compiler reaches a state its
// own rules should have made impossible, such as an operand without a type.
// The driver recovers it and reports it as a fatal diagnostic.
type InternalError struct {
	Message string
}

// Error returns the string representation of the error.
func (e *InternalError) Error() string {
	return "internal compiler error: " + e.Message
}

// Internalf panics with an *InternalError.
func Internalf(format string, args ...interface{}) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}
