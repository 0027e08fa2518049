package ppcfloat

import "math/big"

// Round selects the IEEE 754 rounding direction for the operations that
// take one. The zero value is round-to-nearest, ties to even.
type Round uint8

const (
	RoundNearestTiesToEven Round = iota
	RoundTowardPositive
	RoundTowardNegative
	RoundTowardZero
	RoundNearestTiesToAway
)

func (r Round) String() string {
	switch r {
	case RoundNearestTiesToEven:
		return "NearestTiesToEven"
	case RoundTowardPositive:
		return "TowardPositive"
	case RoundTowardNegative:
		return "TowardNegative"
	case RoundTowardZero:
		return "TowardZero"
	case RoundNearestTiesToAway:
		return "NearestTiesToAway"
	default:
		return "Round(?)"
	}
}

func (r Round) bigMode() big.RoundingMode {
	switch r {
	case RoundTowardPositive:
		return big.ToPositiveInf
	case RoundTowardNegative:
		return big.ToNegativeInf
	case RoundTowardZero:
		return big.ToZero
	case RoundNearestTiesToAway:
		return big.ToNearestAway
	default:
		return big.ToNearestEven
	}
}

// Status is the set of IEEE exception flags an operation raised.
type Status uint8

const (
	StatusInvalidOp Status = 1 << iota
	StatusDivByZero
	StatusOverflow
	StatusUnderflow
	StatusInexact
)

// StatusOK is the empty flag set.
const StatusOK Status = 0

func (s Status) String() string {
	if s == StatusOK {
		return "OK"
	}
	out := ""
	add := func(f Status, name string) {
		if s&f != 0 {
			if out != "" {
				out += "|"
			}
			out += name
		}
	}
	add(StatusInvalidOp, "InvalidOp")
	add(StatusDivByZero, "DivByZero")
	add(StatusOverflow, "Overflow")
	add(StatusUnderflow, "Underflow")
	add(StatusInexact, "Inexact")
	return out
}
