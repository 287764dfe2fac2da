package pitch

import "fmt"

// ParseError reports a notation string that does not match the pitch or
// interval grammar.
type ParseError struct {
	Input    string // the offending string
	Expected string // description of the expected notation
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: expected %s", e.Input, e.Expected)
}

// DomainError reports a numeric value outside the legal domain of an
// operation, e.g. a generic interval number outside 1..7 or a non-integral
// coordinate.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

func domainErrorf(format string, args ...any) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// TypeMismatchError reports an operation between incompatible value kinds,
// such as adding a pitch to a pitch class or mixing representation families
// without conversion.
type TypeMismatchError struct {
	Op    string // the attempted operation, e.g. "+"
	Left  string // kind of the left operand
	Right string // kind of the right operand
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("unsupported operation %q between %s and %s", e.Op, e.Left, e.Right)
}

func mismatch(op string, a, b Value) *TypeMismatchError {
	return &TypeMismatchError{Op: op, Left: a.Type().String(), Right: b.Type().String()}
}

// NoConverterError reports that no conversion path is registered between two
// value types.
type NoConverterError struct {
	From Type
	To   Type
}

func (e *NoConverterError) Error() string {
	return fmt.Sprintf("no converter registered from %s to %s", e.From, e.To)
}

// ConversionError reports that a registered converter produced a value with
// an inconsistent type or pitch/class tag. It signals a broken converter, not
// bad user input, and is therefore raised via panic at the point of
// detection.
type ConversionError struct {
	From Type
	To   Type
	Msg  string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion from %s to %s produced an inconsistent result: %s", e.From, e.To, e.Msg)
}
