/*
Package ppcfloat implements the PowerPC double-double extended float: a
128-bit format holding a pair of float64 values whose sum is the number
represented. The head carries the value rounded to the nearest float64 and
the tail carries the residual, giving 106 bits of significand in the
normal range and an exponent range matching float64.

Float is a value type; arithmetic returns a new value together with the
IEEE exception flags the operation raised. Add, Sub and Mul operate
natively on the component pairs; Div, Mod, IeeeRem, MulAdd,
RoundToIntegral and Parse go through an exact 106-bit big.Float engine.

The 128-bit interchange pattern ((tail bits << 64) | head bits) travels in
the low half of a num.U256.
*/
package ppcfloat

import (
	"math"
	"math/big"

	"github.com/widebit/num"
)

// Float is a double-double value. The zero value is +0.
type Float struct {
	hi, lo float64
}

// Category classifies a Float by its head component.
type Category uint8

const (
	CategoryNormal Category = iota
	CategoryZero
	CategoryInfinity
	CategoryNaN
)

func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "Normal"
	case CategoryZero:
		return "Zero"
	case CategoryInfinity:
		return "Infinity"
	case CategoryNaN:
		return "NaN"
	default:
		return "Category(?)"
	}
}

func Zero() Float { return Float{} }

func NaN() Float { return Float{hi: math.NaN()} }

func Inf(negative bool) Float {
	if negative {
		return Float{hi: math.Inf(-1)}
	}
	return Float{hi: math.Inf(1)}
}

// Largest returns the greatest finite Float: the greatest float64 head
// paired with the greatest tail a canonical pair allows.
func Largest() Float {
	return Float{
		hi: math.MaxFloat64,
		lo: math.Float64frombits(0x7c8ffffffffffffe),
	}
}

// Smallest returns the least positive value, a single denormal quantum.
func Smallest() Float {
	return Float{hi: math.Float64frombits(0x0000000000000001)}
}

// SmallestNormalized returns the least positive value at full 106-bit
// precision, 2**-969.
func SmallestNormalized() Float {
	return Float{hi: math.Float64frombits(0x0360000000000000)}
}

// FromFloat64 widens a float64 exactly.
func FromFloat64(v float64) Float { return Float{hi: v} }

// FromComponents assembles a Float from a head and tail. The pair is
// taken as-is; no renormalization happens.
func FromComponents(hi, lo float64) Float { return Float{hi: hi, lo: lo} }

// Components returns the head and tail of f.
func (f Float) Components() (hi, lo float64) { return f.hi, f.lo }

// FromBits reassembles a Float from its interchange pattern: the head
// float64 bits in the low word, the tail bits in the next.
func FromBits(u num.U256) Float {
	w := u.Words()
	return Float{
		hi: math.Float64frombits(w[0]),
		lo: math.Float64frombits(w[1]),
	}
}

// Bits returns the 128-bit interchange pattern of f in the low half of a
// num.U256.
func (f Float) Bits() num.U256 {
	return num.U256FromWords([4]uint64{
		math.Float64bits(f.hi),
		math.Float64bits(f.lo),
		0, 0,
	})
}

func (f Float) Category() Category {
	switch {
	case math.IsNaN(f.hi):
		return CategoryNaN
	case math.IsInf(f.hi, 0):
		return CategoryInfinity
	case f.hi == 0:
		return CategoryZero
	default:
		return CategoryNormal
	}
}

func (f Float) IsNaN() bool { return math.IsNaN(f.hi) }

func (f Float) IsInf() bool { return math.IsInf(f.hi, 0) }

func (f Float) IsZero() bool { return f.hi == 0 && !math.IsNaN(f.hi) }

func (f Float) IsNegative() bool { return math.Signbit(f.hi) }

func (f Float) IsFinite() bool { return !math.IsNaN(f.hi) && !math.IsInf(f.hi, 0) }

// IsDenormal reports whether f cannot carry full 106-bit precision:
// either component is a float64 denormal, or the pair is not canonical
// and the tail perturbs the head.
func (f Float) IsDenormal() bool {
	return f.Category() == CategoryNormal &&
		(isDenormal64(f.hi) || isDenormal64(f.lo) || f.hi+f.lo != f.hi)
}

func isDenormal64(v float64) bool {
	bits := math.Float64bits(v)
	return bits&0x7ff0000000000000 == 0 && bits&0x000fffffffffffff != 0
}

func (f Float) IsSmallest() bool {
	return f.Category() == CategoryNormal && f.Abs().BitwiseEq(Smallest())
}

func (f Float) IsLargest() bool {
	return f.Category() == CategoryNormal && f.Abs().BitwiseEq(Largest())
}

// IsInteger reports whether both components are integral.
func (f Float) IsInteger() bool {
	switch f.Category() {
	case CategoryZero:
		return true
	case CategoryNormal:
		return f.hi == math.Trunc(f.hi) && f.lo == math.Trunc(f.lo)
	default:
		return false
	}
}

// Neg flips the sign of the head, and of the tail when the tail is finite
// and non-zero.
func (f Float) Neg() Float {
	f.hi = -f.hi
	if f.lo != 0 && !math.IsNaN(f.lo) && !math.IsInf(f.lo, 0) {
		f.lo = -f.lo
	}
	return f
}

func (f Float) Abs() Float {
	if f.IsNegative() {
		return f.Neg()
	}
	return f
}

// CopySign returns f carrying the sign of sign.
func (f Float) CopySign(sign Float) Float {
	if f.IsNegative() != sign.IsNegative() {
		return f.Neg()
	}
	return f
}

// Scalbn scales both components by 2**n.
func (f Float) Scalbn(n int) Float {
	return Float{hi: math.Ldexp(f.hi, n), lo: math.Ldexp(f.lo, n)}
}

// Frexp splits f into a fraction with head in [0.5, 1) and an exponent,
// such that f == fraction * 2**exp.
func (f Float) Frexp() (Float, int) {
	frac, exp := math.Frexp(f.hi)
	lo := f.lo
	if f.Category() == CategoryNormal && lo != 0 {
		lo = math.Ldexp(lo, -exp)
	}
	return Float{hi: frac, lo: lo}, exp
}

// Cmp orders f against rhs, comparing heads and then tails. ordered is
// false when either operand has a NaN in the deciding position.
func (f Float) Cmp(rhs Float) (cmp int, ordered bool) {
	if math.IsNaN(f.hi) || math.IsNaN(rhs.hi) {
		return 0, false
	}
	if f.hi < rhs.hi {
		return -1, true
	} else if f.hi > rhs.hi {
		return 1, true
	}
	if math.IsNaN(f.lo) || math.IsNaN(rhs.lo) {
		return 0, false
	}
	if f.lo < rhs.lo {
		return -1, true
	} else if f.lo > rhs.lo {
		return 1, true
	}
	return 0, true
}

// BitwiseEq reports whether both components carry identical bit patterns,
// distinguishing NaN payloads and zero signs Cmp cannot.
func (f Float) BitwiseEq(rhs Float) bool {
	return math.Float64bits(f.hi) == math.Float64bits(rhs.hi) &&
		math.Float64bits(f.lo) == math.Float64bits(rhs.lo)
}

// ExactInverse returns the reciprocal when it is exact: f must be a
// power of two at full precision, with both it and its reciprocal in the
// normalized range.
func (f Float) ExactInverse() (Float, bool) {
	if f.Category() != CategoryNormal || f.IsDenormal() {
		return Float{}, false
	}
	v := fold106(f)
	mant := new(big.Float)
	exp := v.MantExp(mant)
	// A power of two has mantissa 0.5 exactly.
	if mant.Abs(mant).Cmp(big.NewFloat(0.5)) != 0 {
		return Float{}, false
	}
	// f == ±2**(exp-1); reciprocal is ±2**(1-exp), which must stay in
	// the normalized range.
	if 1-exp < -969 {
		return Float{}, false
	}
	inv := math.Ldexp(1, 1-exp)
	if f.IsNegative() {
		inv = -inv
	}
	if math.IsInf(inv, 0) {
		return Float{}, false
	}
	return Float{hi: inv}, true
}
