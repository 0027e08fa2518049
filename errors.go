package num

import "fmt"

// OverflowError is returned when constructing a bit-sized integer from a
// value that exceeds the type's maximum.
type OverflowError struct {
	Max   uint32
	Value uint32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("num: unable to construct bit-sized integer from a value `%d` overflowing max value `%d`", e.Value, e.Max)
}

// ParseLengthError is returned when constructing an integer from a byte or
// text representation of the wrong length.
type ParseLengthError struct {
	Actual   int
	Expected int
}

func (e *ParseLengthError) Error() string {
	return fmt.Sprintf("num: invalid length: got %d, expected %d", e.Actual, e.Expected)
}

// DivError describes a division that could not be performed. The two
// possible values are ErrDivZero and ErrDivOverflow.
type DivError int

const (
	// ErrDivZero is reported when the divisor is zero.
	ErrDivZero DivError = iota

	// ErrDivOverflow is reported when the quotient cannot be represented,
	// which for the signed types happens only for Min / -1.
	ErrDivOverflow
)

func (e DivError) Error() string {
	switch e {
	case ErrDivZero:
		return "num: division by zero"
	case ErrDivOverflow:
		return "num: division with overflow"
	default:
		return fmt.Sprintf("num: unknown division error %d", int(e))
	}
}
