package ppcfloat

import (
	"math"
	"math/big"
)

// workPrec comfortably holds any exact pair value (two 53-bit significands
// up to 2098 binary places apart) plus exact products of folded operands.
const workPrec = 2200

// fusedPrec holds an exact 106x106-bit product plus a 106-bit addend.
const fusedPrec = 4400

var (
	bigIntOne    = big.NewInt(1)
	bigHalfFloat = big.NewFloat(0.5)

	// biggest finite float64
	bigMaxFloat64 = new(big.Float).SetPrec(53).SetFloat64(math.MaxFloat64)

	// smallest normal float64, 2^-1022
	bigMinNormal64 = scaleTwo(big.NewFloat(0.5), -1021)

	// largest magnitude the 106-bit format admits, (2^106 - 1) * 2^918
	bigLargest106 = func() *big.Float {
		m := new(big.Int).Sub(new(big.Int).Lsh(bigIntOne, 106), bigIntOne)
		return scaleTwo(new(big.Float).SetPrec(200).SetInt(m), 918)
	}()

	// smallest normal magnitude of the 106-bit format, 2^-969
	bigSmallestNorm106 = scaleTwo(big.NewFloat(0.5), -968)
)

// scaleTwo returns x * 2^k. SetMantExp applies its exponent on top of
// the mantissa argument's own, so x itself is the mantissa here.
func scaleTwo(x *big.Float, k int) *big.Float {
	return new(big.Float).SetMantExp(x, k)
}

// big2200 is the exact value of the pair. The caller must ensure f is
// finite.
func (f Float) big2200() *big.Float {
	x := new(big.Float).SetPrec(workPrec).SetFloat64(f.hi)
	if f.lo != 0 && !math.IsNaN(f.lo) && !math.IsInf(f.lo, 0) {
		x.Add(x, new(big.Float).SetPrec(workPrec).SetFloat64(f.lo))
	}
	return x
}

// fold106 collapses the pair to a single 106-bit significand, the shape
// the 128-bit software path sees its operands in.
func fold106(f Float) *big.Float {
	return new(big.Float).SetPrec(106).Set(f.big2200())
}

// splitBig converts an exactly pair-representable value back to head and
// tail: head the nearest float64, tail the residual.
func splitBig(r *big.Float) Float {
	hi, _ := r.Float64()
	if math.IsInf(hi, 0) {
		return Float{hi: hi}
	}
	res := new(big.Float).SetPrec(workPrec).Set(r)
	res.Sub(res, new(big.Float).SetPrec(workPrec).SetFloat64(hi))
	if res.Sign() == 0 {
		return Float{hi: hi}
	}
	lo, _ := res.Float64()
	return Float{hi: hi, lo: lo}
}

func zeroF(negative bool) Float {
	if negative {
		return Float{hi: math.Copysign(0, -1)}
	}
	return Float{}
}

// roundFloat64Big rounds an exact value to float64 per rm, clamping
// overflow in the mode's direction and flushing through the denormal
// grid below 2^-1022.
func roundFloat64Big(x *big.Float, rm Round) (float64, Status) {
	if x.Sign() == 0 {
		f, _ := x.Float64()
		return f, StatusOK
	}
	neg := x.Signbit()
	r := new(big.Float).SetPrec(53).SetMode(rm.bigMode()).Set(x)
	st := StatusOK
	if r.Cmp(x) != 0 {
		st |= StatusInexact
	}
	if new(big.Float).Abs(r).Cmp(bigMaxFloat64) > 0 {
		return overflowFloat64(rm, neg), st | StatusOverflow | StatusInexact
	}
	if new(big.Float).Abs(x).Cmp(bigMinNormal64) < 0 {
		g, inexact := roundOnGrid(x, -1074, rm)
		st = StatusOK
		if inexact {
			st = StatusUnderflow | StatusInexact
		}
		if g.Sign() == 0 {
			if neg {
				return math.Copysign(0, -1), st
			}
			return 0, st
		}
		f, _ := g.Float64()
		return f, st
	}
	f, _ := r.Float64()
	return f, st
}

func overflowFloat64(rm Round, negative bool) float64 {
	switch rm {
	case RoundTowardZero:
		return math.Copysign(math.MaxFloat64, sign1(negative))
	case RoundTowardPositive:
		if negative {
			return -math.MaxFloat64
		}
		return math.Inf(1)
	case RoundTowardNegative:
		if negative {
			return math.Inf(-1)
		}
		return math.MaxFloat64
	default:
		return math.Copysign(math.Inf(1), sign1(negative))
	}
}

func sign1(negative bool) float64 {
	if negative {
		return -1
	}
	return 1
}

// roundOnGrid rounds x to a multiple of 2^gridExp per rm. The result is
// exact at workPrec; the bool reports whether anything was discarded.
func roundOnGrid(x *big.Float, gridExp int, rm Round) (*big.Float, bool) {
	s := scaleTwo(new(big.Float).SetPrec(workPrec).Set(x), -gridExp)
	n, _ := s.Int(nil)
	fr := new(big.Float).SetPrec(workPrec).Sub(s, new(big.Float).SetPrec(workPrec).SetInt(n))
	if fr.Sign() == 0 {
		return new(big.Float).SetPrec(workPrec).Set(x), false
	}
	neg := s.Signbit()
	switch rm {
	case RoundTowardZero:
		// truncation already happened
	case RoundTowardPositive:
		if !neg {
			n.Add(n, bigIntOne)
		}
	case RoundTowardNegative:
		if neg {
			n.Sub(n, bigIntOne)
		}
	default:
		fa := new(big.Float).Abs(fr)
		c := fa.Cmp(bigHalfFloat)
		bump := c > 0 ||
			(c == 0 && rm == RoundNearestTiesToAway) ||
			(c == 0 && rm == RoundNearestTiesToEven && n.Bit(0) == 1)
		if bump {
			if neg {
				n.Sub(n, bigIntOne)
			} else {
				n.Add(n, bigIntOne)
			}
		}
	}
	out := new(big.Float).SetPrec(workPrec).SetInt(n)
	if out.Sign() != 0 {
		out = scaleTwo(out, gridExp)
	}
	return out, true
}

// overflowPair is the pair-format overflow result for the mode: the
// directed modes clamp at the largest finite value rather than jump to
// infinity.
func overflowPair(rm Round, negative bool) Float {
	switch rm {
	case RoundTowardZero:
		l := Largest()
		if negative {
			l = l.Neg()
		}
		return l
	case RoundTowardPositive:
		if negative {
			return Largest().Neg()
		}
		return Inf(false)
	case RoundTowardNegative:
		if negative {
			return Inf(true)
		}
		return Largest()
	default:
		return Inf(negative)
	}
}

// roundFallback rounds an exact value to the 106-bit format per rm and
// splits it into a pair.
func roundFallback(v *big.Float, rm Round) (Float, Status) {
	if v.Sign() == 0 {
		f, _ := v.Float64()
		return Float{hi: f}, StatusOK
	}
	neg := v.Signbit()
	r := new(big.Float).SetPrec(106).SetMode(rm.bigMode()).Set(v)
	st := StatusOK
	if r.Cmp(v) != 0 {
		st |= StatusInexact
	}
	if new(big.Float).Abs(r).Cmp(bigLargest106) > 0 {
		return overflowPair(rm, neg), st | StatusOverflow | StatusInexact
	}
	if new(big.Float).Abs(v).Cmp(bigSmallestNorm106) < 0 {
		g, inexact := roundOnGrid(v, -1074, rm)
		st = StatusOK
		if inexact {
			st = StatusUnderflow | StatusInexact
		}
		if g.Sign() == 0 {
			return zeroF(neg), st
		}
		return splitBig(g), st
	}
	out := splitBig(r)
	if math.IsInf(out.hi, 0) {
		st |= StatusOverflow | StatusInexact
	}
	return out, st
}

// Div returns f / rhs, correctly rounded at 106-bit precision per rm.
func (f Float) Div(rhs Float, rm Round) (Float, Status) {
	fc, rc := f.Category(), rhs.Category()
	negOut := f.IsNegative() != rhs.IsNegative()
	switch {
	case fc == CategoryNaN:
		return f, StatusOK
	case rc == CategoryNaN:
		return rhs, StatusOK
	case fc == CategoryZero && rc == CategoryZero,
		fc == CategoryInfinity && rc == CategoryInfinity:
		return NaN(), StatusInvalidOp
	case rc == CategoryZero:
		return Inf(negOut), StatusDivByZero
	case fc == CategoryInfinity:
		return Inf(negOut), StatusOK
	case fc == CategoryZero, rc == CategoryInfinity:
		return zeroF(negOut), StatusOK
	}

	x, y := fold106(f), fold106(rhs)
	q := new(big.Float).SetPrec(106).SetMode(rm.bigMode()).Quo(x, y)
	st := StatusOK
	if check := new(big.Float).SetPrec(workPrec).Mul(q, y); check.Cmp(x) != 0 {
		st |= StatusInexact
	}
	if new(big.Float).Abs(q).Cmp(bigLargest106) > 0 {
		return overflowPair(rm, negOut), st | StatusOverflow | StatusInexact
	}
	if new(big.Float).Abs(q).Cmp(bigSmallestNorm106) < 0 {
		qq := new(big.Float).SetPrec(workPrec).Quo(x, y)
		g, inexact := roundOnGrid(qq, -1074, rm)
		if inexact || st&StatusInexact != 0 {
			st = StatusUnderflow | StatusInexact
		} else {
			st = StatusOK
		}
		if g.Sign() == 0 {
			return zeroF(negOut), st
		}
		return splitBig(g), st
	}
	out := splitBig(q)
	if math.IsInf(out.hi, 0) {
		st |= StatusOverflow | StatusInexact
	}
	return out, st
}

// Mod returns the remainder of f / rhs with the quotient truncated
// toward zero, C fmod style. The result is exact.
func (f Float) Mod(rhs Float) (Float, Status) {
	return f.remainder(rhs, false)
}

// IeeeRem returns the IEEE 754 remainder: the quotient is rounded to the
// nearest integer, ties to even. The result is exact.
func (f Float) IeeeRem(rhs Float) (Float, Status) {
	return f.remainder(rhs, true)
}

func (f Float) remainder(rhs Float, nearest bool) (Float, Status) {
	fc, rc := f.Category(), rhs.Category()
	switch {
	case fc == CategoryNaN:
		return f, StatusOK
	case rc == CategoryNaN:
		return rhs, StatusOK
	case fc == CategoryInfinity || rc == CategoryZero:
		return NaN(), StatusInvalidOp
	case rc == CategoryInfinity || fc == CategoryZero:
		return f, StatusOK
	}

	x, y := fold106(f), fold106(rhs)
	rx, _ := x.Rat(nil)
	ry, _ := y.Rat(nil)
	n := ratToInt(new(big.Rat).Quo(rx, ry), nearest)

	ny := new(big.Rat).SetInt(n)
	ny.Mul(ny, ry)
	rr := new(big.Rat).Sub(rx, ny)
	if rr.Sign() == 0 {
		// zero remainder keeps the dividend's sign
		return zeroF(math.Signbit(f.hi)), StatusOK
	}
	v := new(big.Float).SetPrec(workPrec).SetRat(rr)
	return splitBig(v), StatusOK
}

// ratToInt rounds q to an integer, truncating toward zero or rounding to
// nearest with ties to even.
func ratToInt(q *big.Rat, nearest bool) *big.Int {
	rem := new(big.Int)
	t, _ := new(big.Int).QuoRem(q.Num(), q.Denom(), rem)
	if !nearest || rem.Sign() == 0 {
		return t
	}
	twice := new(big.Int).Lsh(new(big.Int).Abs(rem), 1)
	c := twice.Cmp(q.Denom())
	if c > 0 || (c == 0 && t.Bit(0) == 1) {
		if q.Sign() < 0 {
			t.Sub(t, bigIntOne)
		} else {
			t.Add(t, bigIntOne)
		}
	}
	return t
}

// MulAdd returns f*b + c with a single rounding at the end.
func (f Float) MulAdd(b, c Float, rm Round) (Float, Status) {
	switch {
	case f.Category() == CategoryNaN:
		return f, StatusOK
	case b.Category() == CategoryNaN:
		return b, StatusOK
	case c.Category() == CategoryNaN:
		return c, StatusOK
	}
	fc, bc := f.Category(), b.Category()
	negP := f.IsNegative() != b.IsNegative()
	if (fc == CategoryZero && bc == CategoryInfinity) ||
		(fc == CategoryInfinity && bc == CategoryZero) {
		return NaN(), StatusInvalidOp
	}
	if fc == CategoryInfinity || bc == CategoryInfinity {
		if c.Category() == CategoryInfinity && c.IsNegative() != negP {
			return NaN(), StatusInvalidOp
		}
		return Inf(negP), StatusOK
	}
	if c.Category() == CategoryInfinity {
		return c, StatusOK
	}
	if fc == CategoryZero || bc == CategoryZero {
		if !c.IsZero() {
			return c, StatusOK
		}
		// signed-zero sum of the zero product and the zero addend
		if negP == c.IsNegative() {
			return zeroF(negP), StatusOK
		}
		return zeroF(rm == RoundTowardNegative), StatusOK
	}

	p := new(big.Float).SetPrec(fusedPrec).Mul(fold106(f), fold106(b))
	s := new(big.Float).SetPrec(fusedPrec).Add(p, fold106(c))
	if s.Sign() == 0 {
		return zeroF(rm == RoundTowardNegative), StatusOK
	}
	return roundFallback(s, rm)
}

// RoundToIntegral rounds f to an integral value per rm.
func (f Float) RoundToIntegral(rm Round) (Float, Status) {
	switch f.Category() {
	case CategoryNaN, CategoryInfinity, CategoryZero:
		return f, StatusOK
	}
	v := fold106(f)
	g, inexact := roundOnGrid(v, 0, rm)
	if !inexact {
		return splitBig(g), StatusOK
	}
	if g.Sign() == 0 {
		return zeroF(math.Signbit(f.hi)), StatusInexact
	}
	return splitBig(g), StatusInexact
}
