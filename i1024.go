package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

const (
	i1024Words = 16
	i1024Bits  = 1024
)

// I1024 is a signed 256-bit integer in two's complement, stored as four
// 64-bit words with the least significant word first. I1024 is a value
// type; all operations return new values.
type I1024 struct{ w [i1024Words]uint64 }

var (
	MaxI1024 = MaxU1024.Rsh(1).AsI1024()
	MinI1024 = MaxI1024.Not()
)

// I1024From64 builds an I1024 from an int64, sign-extending it.
func I1024From64(v int64) (out I1024) {
	out.w[0] = uint64(v)
	if v < 0 {
		for i := 1; i < i1024Words; i++ {
			out.w[i] = maxUint64
		}
	}
	return out
}

// I1024FromWords builds an I1024 from little-endian words.
func I1024FromWords(w [i1024Words]uint64) I1024 { return I1024{w: w} }

// Words returns the little-endian words of i.
func (i I1024) Words() [i1024Words]uint64 { return i.w }

// I1024FromBigInt creates an I1024 from a big.Int. Returns inRange == false
// if the big.Int is out of range, yielding MinI1024 or MaxI1024.
func I1024FromBigInt(v *big.Int) (out I1024, inRange bool) {
	if v.Sign() >= 0 {
		if v.BitLen() >= i1024Bits {
			return MaxI1024, false
		}
		u, _ := U1024FromBigInt(v)
		return u.AsI1024(), true
	}
	mag := new(big.Int).Neg(v)
	if mag.BitLen() > i1024Bits-1 {
		// The exact minimum is still representable.
		if !(mag.BitLen() == i1024Bits && mag.TrailingZeroBits() == i1024Bits-1) {
			return MinI1024, false
		}
	}
	u, _ := U1024FromBigInt(mag)
	return u.AsI1024().WrappingNeg(), true
}

func I1024FromBEBytes(bts []byte) (I1024, error) {
	u, err := U1024FromBEBytes(bts)
	return u.AsI1024(), err
}

func I1024FromLEBytes(bts []byte) (I1024, error) {
	u, err := U1024FromLEBytes(bts)
	return u.AsI1024(), err
}

func (i I1024) BEBytes() [u1024Bytes]byte { return i.AsU1024().BEBytes() }

func (i I1024) LEBytes() [u1024Bytes]byte { return i.AsU1024().LEBytes() }

// AsU1024 reinterprets the two's complement bit pattern as unsigned.
func (i I1024) AsU1024() U1024 { return U1024{w: i.w} }

func (i I1024) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

func (i I1024) IntoBigInt(b *big.Int) {
	if i.IsNegative() {
		bts := i.WrappingNeg().AsU1024().BEBytes()
		b.SetBytes(bts[:])
		b.Neg(b)
	} else {
		bts := i.AsU1024().BEBytes()
		b.SetBytes(bts[:])
	}
}

func (i I1024) IsZero() bool { return isZeroWords(i.w[:]) }

func (i I1024) IsNegative() bool { return i.w[i1024Words-1]&signBit64 != 0 }

// IsPositive reports whether i is greater than zero.
func (i I1024) IsPositive() bool { return !i.IsNegative() && !i.IsZero() }

func (i I1024) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

func (i I1024) Low64() uint64 { return i.w[0] }

// Bit returns bit b of the two's complement pattern. Panics if b is
// outside [0, i1024Bits).
func (i I1024) Bit(b int) bool { return i.AsU1024().Bit(b) }

// BitsRequired returns the least number of bits needed to represent i,
// counting the two's complement encoding: -1 needs 1 bit, -256 needs 9.
func (i I1024) BitsRequired() int {
	if i.IsNegative() {
		for k := i1024Words - 1; k >= 1; k-- {
			if i.w[k] != maxUint64 {
				return 64*(k+1) + 1 - bits.LeadingZeros64(^i.w[k])
			}
		}
		return 65 - bits.LeadingZeros64(^i.w[0])
	}
	return bitLenWords(i.w[:])
}

// Neg returns -i. Panics if i is MinI1024, which has no positive
// counterpart; use WrappingNeg to wrap instead.
func (i I1024) Neg() I1024 {
	if i == MinI1024 {
		panic("num: negation overflows minimum value")
	}
	return i.WrappingNeg()
}

func (i I1024) WrappingNeg() (out I1024) {
	negInto(out.w[:], i.w[:])
	return out
}

// Abs returns the absolute value of i. Panics if i is MinI1024.
func (i I1024) Abs() I1024 {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

func (i I1024) WrappingAbs() I1024 {
	if i.IsNegative() {
		return i.WrappingNeg()
	}
	return i
}

// absU returns the magnitude of i as unsigned, valid for MinI1024 too.
func (i I1024) absU() U1024 { return i.WrappingAbs().AsU1024() }

func (i I1024) Cmp(n I1024) int {
	x, y := i.w[i1024Words-1]^signBit64, n.w[i1024Words-1]^signBit64
	if x < y {
		return -1
	} else if x > y {
		return 1
	}
	for k := i1024Words - 2; k >= 0; k-- {
		if i.w[k] < n.w[k] {
			return -1
		} else if i.w[k] > n.w[k] {
			return 1
		}
	}
	return 0
}

func (i I1024) Equal(n I1024) bool { return i.w == n.w }

func (i I1024) GreaterThan(n I1024) bool { return i.Cmp(n) > 0 }

func (i I1024) GreaterOrEqualTo(n I1024) bool { return i.Cmp(n) >= 0 }

func (i I1024) LessThan(n I1024) bool { return i.Cmp(n) < 0 }

func (i I1024) LessOrEqualTo(n I1024) bool { return i.Cmp(n) <= 0 }

// OverflowingAdd returns i + n wrapped modulo 2**i1024Bits, and whether the
// sum left the representable range. Overflow happens only when both
// operands share a sign the result does not.
func (i I1024) OverflowingAdd(n I1024) (out I1024, over bool) {
	addInto(out.w[:], i.w[:], n.w[:])
	over = i.IsNegative() == n.IsNegative() && i.IsNegative() != out.IsNegative()
	return out, over
}

func (i I1024) OverflowingSub(n I1024) (out I1024, over bool) {
	subInto(out.w[:], i.w[:], n.w[:])
	over = i.IsNegative() != n.IsNegative() && i.IsNegative() != out.IsNegative()
	return out, over
}

// OverflowingMul multiplies via unsigned magnitudes, reporting overflow
// when the product cannot be represented.
func (i I1024) OverflowingMul(n I1024) (out I1024, over bool) {
	neg := i.IsNegative() != n.IsNegative()
	a, b := i.absU(), n.absU()
	var ext [2 * i1024Words]uint64
	mulInto(ext[:], a.w[:], b.w[:])
	var mag U1024
	copy(mag.w[:], ext[:i1024Words])
	over = !isZeroWords(ext[i1024Words:])
	if mag.w[i1024Words-1]&signBit64 != 0 && !(neg && mag.Equal(MinI1024.AsU1024())) {
		over = true
	}
	out = mag.AsI1024()
	if neg {
		out = out.WrappingNeg()
	}
	return out, over
}

func (i I1024) CheckedAdd(n I1024) (out I1024, ok bool) {
	out, over := i.OverflowingAdd(n)
	return out, !over
}

func (i I1024) CheckedSub(n I1024) (out I1024, ok bool) {
	out, over := i.OverflowingSub(n)
	return out, !over
}

func (i I1024) CheckedMul(n I1024) (out I1024, ok bool) {
	out, over := i.OverflowingMul(n)
	return out, !over
}

// SaturatingAdd clamps to MaxI1024 or MinI1024 in the overflow direction.
func (i I1024) SaturatingAdd(n I1024) I1024 {
	out, over := i.OverflowingAdd(n)
	if over {
		if i.IsNegative() {
			return MinI1024
		}
		return MaxI1024
	}
	return out
}

func (i I1024) SaturatingSub(n I1024) I1024 {
	out, over := i.OverflowingSub(n)
	if over {
		if i.IsNegative() {
			return MinI1024
		}
		return MaxI1024
	}
	return out
}

func (i I1024) SaturatingMul(n I1024) I1024 {
	out, over := i.OverflowingMul(n)
	if over {
		if i.IsNegative() != n.IsNegative() {
			return MinI1024
		}
		return MaxI1024
	}
	return out
}

func (i I1024) WrappingAdd(n I1024) I1024 { out, _ := i.OverflowingAdd(n); return out }

func (i I1024) WrappingSub(n I1024) I1024 { out, _ := i.OverflowingSub(n); return out }

func (i I1024) WrappingMul(n I1024) I1024 { out, _ := i.OverflowingMul(n); return out }

// DivRem performs truncated division: the quotient rounds toward zero and
// the remainder takes the sign of i. Panics with ErrDivZero on a zero
// divisor and ErrDivOverflow for MinI1024 / -1.
func (i I1024) DivRem(by I1024) (q, r I1024) {
	q, r, err := i.CheckedDivRem(by)
	if err != nil {
		panic(err)
	}
	return q, r
}

// CheckedDivRem is DivRem, reporting a DivError instead of panicking.
func (i I1024) CheckedDivRem(by I1024) (q, r I1024, err error) {
	if by.IsZero() {
		return q, r, ErrDivZero
	}
	if i == MinI1024 && by == I1024From64(-1) {
		return q, r, ErrDivOverflow
	}
	a, b := i.absU(), by.absU()
	var sc [i1024Words]uint64
	quoremInto(q.w[:], r.w[:], sc[:], a.w[:], b.w[:])
	if i.IsNegative() != by.IsNegative() {
		q = q.WrappingNeg()
	}
	if i.IsNegative() {
		r = r.WrappingNeg()
	}
	return q, r, nil
}

func (i I1024) Quo(by I1024) I1024 { q, _ := i.DivRem(by); return q }

func (i I1024) Rem(by I1024) I1024 { _, r := i.DivRem(by); return r }

func (i I1024) And(n I1024) I1024 { return i.AsU1024().And(n.AsU1024()).AsI1024() }

func (i I1024) Or(n I1024) I1024 { return i.AsU1024().Or(n.AsU1024()).AsI1024() }

func (i I1024) Xor(n I1024) I1024 { return i.AsU1024().Xor(n.AsU1024()).AsI1024() }

func (i I1024) Not() I1024 { return i.AsU1024().Not().AsI1024() }

func (i I1024) Lsh(n uint) I1024 { return i.AsU1024().Lsh(n).AsI1024() }

// Rsh performs an arithmetic right shift, filling with the sign bit.
func (i I1024) Rsh(n uint) (out I1024) {
	var fill uint64
	if i.IsNegative() {
		fill = maxUint64
	}
	shrInto(out.w[:], i.w[:], n, fill)
	return out
}

// String renders the raw two's complement pattern as zero-padded hex.
func (i I1024) String() string { return i.AsU1024().String() }

func (i I1024) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i I1024) MarshalText() ([]byte, error) { return i.AsU1024().MarshalText() }

func (i *I1024) UnmarshalText(bts []byte) error {
	var u U1024
	if err := u.UnmarshalText(bts); err != nil {
		return err
	}
	*i = u.AsI1024()
	return nil
}
