package ppcfloat

import (
	"math"
	"math/big"
)

// accum tracks the exception flags raised by a chain of scalar float64
// steps. At nearest rounding the steps run on the hardware, with the
// exact error term deciding inexactness; other modes are emulated through
// big.Float.
type accum struct{ st Status }

func (ac *accum) add(a, b float64, rm Round) float64 {
	if rm == RoundNearestTiesToEven {
		s := a + b
		if math.IsInf(s, 0) {
			if !math.IsInf(a, 0) && !math.IsInf(b, 0) {
				ac.st |= StatusOverflow | StatusInexact
			}
			return s
		}
		if !math.IsNaN(s) {
			bb := s - a
			if (a-(s-bb))+(b-bb) != 0 {
				ac.st |= StatusInexact
			}
		}
		return s
	}
	return ac.slowAdd(a, b, rm)
}

func (ac *accum) sub(a, b float64, rm Round) float64 {
	return ac.add(a, -b, rm)
}

func (ac *accum) slowAdd(a, b float64, rm Round) float64 {
	s := a + b
	if math.IsNaN(s) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return s
	}
	if !math.IsInf(s, 0) {
		bb := s - a
		if (a-(s-bb))+(b-bb) == 0 {
			return s
		}
	}
	x := new(big.Float).SetPrec(workPrec).SetFloat64(a)
	x.Add(x, new(big.Float).SetPrec(workPrec).SetFloat64(b))
	f, st := roundFloat64Big(x, rm)
	ac.st |= st
	return f
}

func (ac *accum) mul(a, b float64, rm Round) float64 {
	p := a * b
	if math.IsNaN(p) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return p
	}
	if rm == RoundNearestTiesToEven {
		if math.IsInf(p, 0) {
			ac.st |= StatusOverflow | StatusInexact
			return p
		}
		if math.FMA(a, b, -p) != 0 {
			ac.st |= StatusInexact
		}
		return p
	}
	if !math.IsInf(p, 0) && math.FMA(a, b, -p) == 0 {
		return p
	}
	x := new(big.Float).SetPrec(workPrec).SetFloat64(a)
	x.Mul(x, new(big.Float).SetPrec(workPrec).SetFloat64(b))
	f, st := roundFloat64Big(x, rm)
	ac.st |= st
	return f
}

// fma computes a*b + c with a single rounding.
func (ac *accum) fma(a, b, c float64, rm Round) float64 {
	r := math.FMA(a, b, c)
	if math.IsNaN(r) || math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsInf(c, 0) {
		return r
	}
	x := new(big.Float).SetPrec(workPrec).SetFloat64(a)
	x.Mul(x, new(big.Float).SetPrec(workPrec).SetFloat64(b))
	x.Add(x, new(big.Float).SetPrec(workPrec).SetFloat64(c))
	if rm == RoundNearestTiesToEven {
		if math.IsInf(r, 0) {
			ac.st |= StatusOverflow | StatusInexact
			return r
		}
		if x.Sign() != 0 {
			if rx := new(big.Float).SetPrec(workPrec).SetFloat64(r); rx.Cmp(x) != 0 {
				ac.st |= StatusInexact
			}
		}
		return r
	}
	f, st := roundFloat64Big(x, rm)
	ac.st |= st
	return f
}

// Add returns f + rhs rounded per rm.
func (f Float) Add(rhs Float, rm Round) (Float, Status) {
	fc, rc := f.Category(), rhs.Category()
	switch {
	case fc == CategoryInfinity && rc == CategoryInfinity:
		if f.IsNegative() != rhs.IsNegative() {
			return NaN(), StatusInvalidOp
		}
		return f, StatusOK
	case rc == CategoryZero || fc == CategoryNaN ||
		(fc == CategoryInfinity && rc == CategoryNormal):
		return f, StatusOK
	case fc == CategoryZero || rc == CategoryNaN || rc == CategoryInfinity:
		return rhs, StatusOK
	}
	return addNormal(f, rhs, rm)
}

// Sub returns f - rhs rounded per rm.
func (f Float) Sub(rhs Float, rm Round) (Float, Status) {
	return f.Add(rhs.Neg(), rm)
}

// addNormal is compensated summation over the four components. When the
// head sum overflows it retries in increasing magnitude order, which
// keeps a finite total finite.
func addNormal(lhs, rhs Float, rm Round) (Float, Status) {
	a, aa, c, cc := lhs.hi, lhs.lo, rhs.hi, rhs.lo

	var ac accum
	z := ac.add(a, c, rm)
	if math.IsNaN(z) {
		return Float{hi: z}, StatusOK
	}

	if math.IsInf(z, 0) {
		ac = accum{}
		aGtC := math.Abs(a) > math.Abs(c)
		z = ac.add(cc, aa, rm)
		if aGtC {
			z = ac.add(z, c, rm)
			z = ac.add(z, a, rm)
		} else {
			z = ac.add(z, a, rm)
			z = ac.add(z, c, rm)
		}
		if math.IsInf(z, 0) || math.IsNaN(z) {
			return Float{hi: z}, ac.st
		}
		zz := ac.add(aa, cc, rm)
		var lo float64
		if aGtC {
			lo = ac.add(ac.add(ac.sub(a, z, rm), c, rm), zz, rm)
		} else {
			lo = ac.add(ac.add(ac.sub(c, z, rm), a, rm), zz, rm)
		}
		return Float{hi: z, lo: lo}, ac.st
	}

	q := ac.sub(a, z, rm)

	// zz = q + c + (a - (q + z)) + aa + cc
	zz := ac.add(q, c, rm)
	q = ac.add(q, z, rm)
	q = ac.sub(q, a, rm)
	q = -q
	zz = ac.add(zz, q, rm)
	zz = ac.add(zz, aa, rm)
	zz = ac.add(zz, cc, rm)
	if zz == 0 && !math.Signbit(zz) {
		return Float{hi: z}, StatusOK
	}
	hi := ac.add(z, zz, rm)
	if math.IsInf(hi, 0) || math.IsNaN(hi) {
		return Float{hi: hi}, ac.st
	}
	lo := ac.add(ac.sub(z, hi, rm), zz, rm)
	return Float{hi: hi, lo: lo}, ac.st
}

// Mul returns f * rhs rounded per rm. The cross terms fold into the tail
// through a fused multiply-add of the heads.
func (f Float) Mul(rhs Float, rm Round) (Float, Status) {
	fc, rc := f.Category(), rhs.Category()
	switch {
	case fc == CategoryNaN:
		return f, StatusOK
	case rc == CategoryNaN:
		return rhs, StatusOK
	case (fc == CategoryZero && rc == CategoryInfinity) ||
		(fc == CategoryInfinity && rc == CategoryZero):
		return NaN(), StatusInvalidOp
	case fc == CategoryZero || fc == CategoryInfinity:
		return f, StatusOK
	case rc == CategoryZero || rc == CategoryInfinity:
		return rhs, StatusOK
	}

	a, b, c, d := f.hi, f.lo, rhs.hi, rhs.lo

	var ac accum
	t := ac.mul(a, c, rm)
	if t == 0 || math.IsInf(t, 0) || math.IsNaN(t) {
		return Float{hi: t}, ac.st
	}

	tau := ac.fma(a, c, -t, rm)
	v := ac.mul(a, d, rm)
	w := ac.mul(b, c, rm)
	v = ac.add(v, w, rm)
	tau = ac.add(tau, v, rm)

	u := ac.add(t, tau, rm)
	if math.IsInf(u, 0) || math.IsNaN(u) {
		return Float{hi: u}, ac.st
	}
	lo := ac.add(ac.sub(t, u, rm), tau, rm)
	return Float{hi: u, lo: lo}, ac.st
}
