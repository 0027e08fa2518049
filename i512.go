package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

const (
	i512Words = 8
	i512Bits  = 512
)

// I512 is a signed 256-bit integer in two's complement, stored as four
// 64-bit words with the least significant word first. I512 is a value
// type; all operations return new values.
type I512 struct{ w [i512Words]uint64 }

var (
	MaxI512 = MaxU512.Rsh(1).AsI512()
	MinI512 = MaxI512.Not()
)

// I512From64 builds an I512 from an int64, sign-extending it.
func I512From64(v int64) (out I512) {
	out.w[0] = uint64(v)
	if v < 0 {
		for i := 1; i < i512Words; i++ {
			out.w[i] = maxUint64
		}
	}
	return out
}

// I512FromWords builds an I512 from little-endian words.
func I512FromWords(w [i512Words]uint64) I512 { return I512{w: w} }

// Words returns the little-endian words of i.
func (i I512) Words() [i512Words]uint64 { return i.w }

// I512FromBigInt creates an I512 from a big.Int. Returns inRange == false
// if the big.Int is out of range, yielding MinI512 or MaxI512.
func I512FromBigInt(v *big.Int) (out I512, inRange bool) {
	if v.Sign() >= 0 {
		if v.BitLen() >= i512Bits {
			return MaxI512, false
		}
		u, _ := U512FromBigInt(v)
		return u.AsI512(), true
	}
	mag := new(big.Int).Neg(v)
	if mag.BitLen() > i512Bits-1 {
		// The exact minimum is still representable.
		if !(mag.BitLen() == i512Bits && mag.TrailingZeroBits() == i512Bits-1) {
			return MinI512, false
		}
	}
	u, _ := U512FromBigInt(mag)
	return u.AsI512().WrappingNeg(), true
}

func I512FromBEBytes(bts []byte) (I512, error) {
	u, err := U512FromBEBytes(bts)
	return u.AsI512(), err
}

func I512FromLEBytes(bts []byte) (I512, error) {
	u, err := U512FromLEBytes(bts)
	return u.AsI512(), err
}

func (i I512) BEBytes() [u512Bytes]byte { return i.AsU512().BEBytes() }

func (i I512) LEBytes() [u512Bytes]byte { return i.AsU512().LEBytes() }

// AsU512 reinterprets the two's complement bit pattern as unsigned.
func (i I512) AsU512() U512 { return U512{w: i.w} }

func (i I512) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

func (i I512) IntoBigInt(b *big.Int) {
	if i.IsNegative() {
		bts := i.WrappingNeg().AsU512().BEBytes()
		b.SetBytes(bts[:])
		b.Neg(b)
	} else {
		bts := i.AsU512().BEBytes()
		b.SetBytes(bts[:])
	}
}

func (i I512) IsZero() bool { return isZeroWords(i.w[:]) }

func (i I512) IsNegative() bool { return i.w[i512Words-1]&signBit64 != 0 }

// IsPositive reports whether i is greater than zero.
func (i I512) IsPositive() bool { return !i.IsNegative() && !i.IsZero() }

func (i I512) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

func (i I512) Low64() uint64 { return i.w[0] }

// Bit returns bit b of the two's complement pattern. Panics if b is
// outside [0, i512Bits).
func (i I512) Bit(b int) bool { return i.AsU512().Bit(b) }

// BitsRequired returns the least number of bits needed to represent i,
// counting the two's complement encoding: -1 needs 1 bit, -256 needs 9.
func (i I512) BitsRequired() int {
	if i.IsNegative() {
		for k := i512Words - 1; k >= 1; k-- {
			if i.w[k] != maxUint64 {
				return 64*(k+1) + 1 - bits.LeadingZeros64(^i.w[k])
			}
		}
		return 65 - bits.LeadingZeros64(^i.w[0])
	}
	return bitLenWords(i.w[:])
}

// Neg returns -i. Panics if i is MinI512, which has no positive
// counterpart; use WrappingNeg to wrap instead.
func (i I512) Neg() I512 {
	if i == MinI512 {
		panic("num: negation overflows minimum value")
	}
	return i.WrappingNeg()
}

func (i I512) WrappingNeg() (out I512) {
	negInto(out.w[:], i.w[:])
	return out
}

// Abs returns the absolute value of i. Panics if i is MinI512.
func (i I512) Abs() I512 {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

func (i I512) WrappingAbs() I512 {
	if i.IsNegative() {
		return i.WrappingNeg()
	}
	return i
}

// absU returns the magnitude of i as unsigned, valid for MinI512 too.
func (i I512) absU() U512 { return i.WrappingAbs().AsU512() }

func (i I512) Cmp(n I512) int {
	x, y := i.w[i512Words-1]^signBit64, n.w[i512Words-1]^signBit64
	if x < y {
		return -1
	} else if x > y {
		return 1
	}
	for k := i512Words - 2; k >= 0; k-- {
		if i.w[k] < n.w[k] {
			return -1
		} else if i.w[k] > n.w[k] {
			return 1
		}
	}
	return 0
}

func (i I512) Equal(n I512) bool { return i.w == n.w }

func (i I512) GreaterThan(n I512) bool { return i.Cmp(n) > 0 }

func (i I512) GreaterOrEqualTo(n I512) bool { return i.Cmp(n) >= 0 }

func (i I512) LessThan(n I512) bool { return i.Cmp(n) < 0 }

func (i I512) LessOrEqualTo(n I512) bool { return i.Cmp(n) <= 0 }

// OverflowingAdd returns i + n wrapped modulo 2**i512Bits, and whether the
// sum left the representable range. Overflow happens only when both
// operands share a sign the result does not.
func (i I512) OverflowingAdd(n I512) (out I512, over bool) {
	addInto(out.w[:], i.w[:], n.w[:])
	over = i.IsNegative() == n.IsNegative() && i.IsNegative() != out.IsNegative()
	return out, over
}

func (i I512) OverflowingSub(n I512) (out I512, over bool) {
	subInto(out.w[:], i.w[:], n.w[:])
	over = i.IsNegative() != n.IsNegative() && i.IsNegative() != out.IsNegative()
	return out, over
}

// OverflowingMul multiplies via unsigned magnitudes, reporting overflow
// when the product cannot be represented.
func (i I512) OverflowingMul(n I512) (out I512, over bool) {
	neg := i.IsNegative() != n.IsNegative()
	a, b := i.absU(), n.absU()
	var ext [2 * i512Words]uint64
	mulInto(ext[:], a.w[:], b.w[:])
	var mag U512
	copy(mag.w[:], ext[:i512Words])
	over = !isZeroWords(ext[i512Words:])
	if mag.w[i512Words-1]&signBit64 != 0 && !(neg && mag.Equal(MinI512.AsU512())) {
		over = true
	}
	out = mag.AsI512()
	if neg {
		out = out.WrappingNeg()
	}
	return out, over
}

func (i I512) CheckedAdd(n I512) (out I512, ok bool) {
	out, over := i.OverflowingAdd(n)
	return out, !over
}

func (i I512) CheckedSub(n I512) (out I512, ok bool) {
	out, over := i.OverflowingSub(n)
	return out, !over
}

func (i I512) CheckedMul(n I512) (out I512, ok bool) {
	out, over := i.OverflowingMul(n)
	return out, !over
}

// SaturatingAdd clamps to MaxI512 or MinI512 in the overflow direction.
func (i I512) SaturatingAdd(n I512) I512 {
	out, over := i.OverflowingAdd(n)
	if over {
		if i.IsNegative() {
			return MinI512
		}
		return MaxI512
	}
	return out
}

func (i I512) SaturatingSub(n I512) I512 {
	out, over := i.OverflowingSub(n)
	if over {
		if i.IsNegative() {
			return MinI512
		}
		return MaxI512
	}
	return out
}

func (i I512) SaturatingMul(n I512) I512 {
	out, over := i.OverflowingMul(n)
	if over {
		if i.IsNegative() != n.IsNegative() {
			return MinI512
		}
		return MaxI512
	}
	return out
}

func (i I512) WrappingAdd(n I512) I512 { out, _ := i.OverflowingAdd(n); return out }

func (i I512) WrappingSub(n I512) I512 { out, _ := i.OverflowingSub(n); return out }

func (i I512) WrappingMul(n I512) I512 { out, _ := i.OverflowingMul(n); return out }

// DivRem performs truncated division: the quotient rounds toward zero and
// the remainder takes the sign of i. Panics with ErrDivZero on a zero
// divisor and ErrDivOverflow for MinI512 / -1.
func (i I512) DivRem(by I512) (q, r I512) {
	q, r, err := i.CheckedDivRem(by)
	if err != nil {
		panic(err)
	}
	return q, r
}

// CheckedDivRem is DivRem, reporting a DivError instead of panicking.
func (i I512) CheckedDivRem(by I512) (q, r I512, err error) {
	if by.IsZero() {
		return q, r, ErrDivZero
	}
	if i == MinI512 && by == I512From64(-1) {
		return q, r, ErrDivOverflow
	}
	a, b := i.absU(), by.absU()
	var sc [i512Words]uint64
	quoremInto(q.w[:], r.w[:], sc[:], a.w[:], b.w[:])
	if i.IsNegative() != by.IsNegative() {
		q = q.WrappingNeg()
	}
	if i.IsNegative() {
		r = r.WrappingNeg()
	}
	return q, r, nil
}

func (i I512) Quo(by I512) I512 { q, _ := i.DivRem(by); return q }

func (i I512) Rem(by I512) I512 { _, r := i.DivRem(by); return r }

func (i I512) And(n I512) I512 { return i.AsU512().And(n.AsU512()).AsI512() }

func (i I512) Or(n I512) I512 { return i.AsU512().Or(n.AsU512()).AsI512() }

func (i I512) Xor(n I512) I512 { return i.AsU512().Xor(n.AsU512()).AsI512() }

func (i I512) Not() I512 { return i.AsU512().Not().AsI512() }

func (i I512) Lsh(n uint) I512 { return i.AsU512().Lsh(n).AsI512() }

// Rsh performs an arithmetic right shift, filling with the sign bit.
func (i I512) Rsh(n uint) (out I512) {
	var fill uint64
	if i.IsNegative() {
		fill = maxUint64
	}
	shrInto(out.w[:], i.w[:], n, fill)
	return out
}

// String renders the raw two's complement pattern as zero-padded hex.
func (i I512) String() string { return i.AsU512().String() }

func (i I512) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i I512) MarshalText() ([]byte, error) { return i.AsU512().MarshalText() }

func (i *I512) UnmarshalText(bts []byte) error {
	var u U512
	if err := u.UnmarshalText(bts); err != nil {
		return err
	}
	*i = u.AsI512()
	return nil
}
