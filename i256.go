package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

const (
	i256Words = 4
	i256Bits  = 256
)

// I256 is a signed 256-bit integer in two's complement, stored as four
// 64-bit words with the least significant word first. I256 is a value
// type; all operations return new values.
type I256 struct{ w [i256Words]uint64 }

var (
	MaxI256 = MaxU256.Rsh(1).AsI256()
	MinI256 = MaxI256.Not()
)

// I256From64 builds an I256 from an int64, sign-extending it.
func I256From64(v int64) (out I256) {
	out.w[0] = uint64(v)
	if v < 0 {
		for i := 1; i < i256Words; i++ {
			out.w[i] = maxUint64
		}
	}
	return out
}

// I256FromWords builds an I256 from little-endian words.
func I256FromWords(w [i256Words]uint64) I256 { return I256{w: w} }

// Words returns the little-endian words of i.
func (i I256) Words() [i256Words]uint64 { return i.w }

// I256FromBigInt creates an I256 from a big.Int. Returns inRange == false
// if the big.Int is out of range, yielding MinI256 or MaxI256.
func I256FromBigInt(v *big.Int) (out I256, inRange bool) {
	if v.Sign() >= 0 {
		if v.BitLen() >= i256Bits {
			return MaxI256, false
		}
		u, _ := U256FromBigInt(v)
		return u.AsI256(), true
	}
	mag := new(big.Int).Neg(v)
	if mag.BitLen() > i256Bits-1 {
		// The exact minimum is still representable.
		if !(mag.BitLen() == i256Bits && mag.TrailingZeroBits() == i256Bits-1) {
			return MinI256, false
		}
	}
	u, _ := U256FromBigInt(mag)
	return u.AsI256().WrappingNeg(), true
}

func I256FromBEBytes(bts []byte) (I256, error) {
	u, err := U256FromBEBytes(bts)
	return u.AsI256(), err
}

func I256FromLEBytes(bts []byte) (I256, error) {
	u, err := U256FromLEBytes(bts)
	return u.AsI256(), err
}

func (i I256) BEBytes() [u256Bytes]byte { return i.AsU256().BEBytes() }

func (i I256) LEBytes() [u256Bytes]byte { return i.AsU256().LEBytes() }

// AsU256 reinterprets the two's complement bit pattern as unsigned.
func (i I256) AsU256() U256 { return U256{w: i.w} }

func (i I256) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

func (i I256) IntoBigInt(b *big.Int) {
	if i.IsNegative() {
		bts := i.WrappingNeg().AsU256().BEBytes()
		b.SetBytes(bts[:])
		b.Neg(b)
	} else {
		bts := i.AsU256().BEBytes()
		b.SetBytes(bts[:])
	}
}

func (i I256) IsZero() bool { return isZeroWords(i.w[:]) }

func (i I256) IsNegative() bool { return i.w[i256Words-1]&signBit64 != 0 }

// IsPositive reports whether i is greater than zero.
func (i I256) IsPositive() bool { return !i.IsNegative() && !i.IsZero() }

func (i I256) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

func (i I256) Low64() uint64 { return i.w[0] }

// Bit returns bit b of the two's complement pattern. Panics if b is
// outside [0, i256Bits).
func (i I256) Bit(b int) bool { return i.AsU256().Bit(b) }

// BitsRequired returns the least number of bits needed to represent i,
// counting the two's complement encoding: -1 needs 1 bit, -256 needs 9.
func (i I256) BitsRequired() int {
	if i.IsNegative() {
		for k := i256Words - 1; k >= 1; k-- {
			if i.w[k] != maxUint64 {
				return 64*(k+1) + 1 - bits.LeadingZeros64(^i.w[k])
			}
		}
		return 65 - bits.LeadingZeros64(^i.w[0])
	}
	return bitLenWords(i.w[:])
}

// Neg returns -i. Panics if i is MinI256, which has no positive
// counterpart; use WrappingNeg to wrap instead.
func (i I256) Neg() I256 {
	if i == MinI256 {
		panic("num: negation overflows minimum value")
	}
	return i.WrappingNeg()
}

func (i I256) WrappingNeg() (out I256) {
	negInto(out.w[:], i.w[:])
	return out
}

// Abs returns the absolute value of i. Panics if i is MinI256.
func (i I256) Abs() I256 {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

func (i I256) WrappingAbs() I256 {
	if i.IsNegative() {
		return i.WrappingNeg()
	}
	return i
}

// absU returns the magnitude of i as unsigned, valid for MinI256 too.
func (i I256) absU() U256 { return i.WrappingAbs().AsU256() }

func (i I256) Cmp(n I256) int {
	x, y := i.w[i256Words-1]^signBit64, n.w[i256Words-1]^signBit64
	if x < y {
		return -1
	} else if x > y {
		return 1
	}
	for k := i256Words - 2; k >= 0; k-- {
		if i.w[k] < n.w[k] {
			return -1
		} else if i.w[k] > n.w[k] {
			return 1
		}
	}
	return 0
}

func (i I256) Equal(n I256) bool { return i.w == n.w }

func (i I256) GreaterThan(n I256) bool { return i.Cmp(n) > 0 }

func (i I256) GreaterOrEqualTo(n I256) bool { return i.Cmp(n) >= 0 }

func (i I256) LessThan(n I256) bool { return i.Cmp(n) < 0 }

func (i I256) LessOrEqualTo(n I256) bool { return i.Cmp(n) <= 0 }

// OverflowingAdd returns i + n wrapped modulo 2**i256Bits, and whether the
// sum left the representable range. Overflow happens only when both
// operands share a sign the result does not.
func (i I256) OverflowingAdd(n I256) (out I256, over bool) {
	addInto(out.w[:], i.w[:], n.w[:])
	over = i.IsNegative() == n.IsNegative() && i.IsNegative() != out.IsNegative()
	return out, over
}

func (i I256) OverflowingSub(n I256) (out I256, over bool) {
	subInto(out.w[:], i.w[:], n.w[:])
	over = i.IsNegative() != n.IsNegative() && i.IsNegative() != out.IsNegative()
	return out, over
}

// OverflowingMul multiplies via unsigned magnitudes, reporting overflow
// when the product cannot be represented.
func (i I256) OverflowingMul(n I256) (out I256, over bool) {
	neg := i.IsNegative() != n.IsNegative()
	a, b := i.absU(), n.absU()
	var ext [2 * i256Words]uint64
	mulInto(ext[:], a.w[:], b.w[:])
	var mag U256
	copy(mag.w[:], ext[:i256Words])
	over = !isZeroWords(ext[i256Words:])
	if mag.w[i256Words-1]&signBit64 != 0 && !(neg && mag.Equal(MinI256.AsU256())) {
		over = true
	}
	out = mag.AsI256()
	if neg {
		out = out.WrappingNeg()
	}
	return out, over
}

func (i I256) CheckedAdd(n I256) (out I256, ok bool) {
	out, over := i.OverflowingAdd(n)
	return out, !over
}

func (i I256) CheckedSub(n I256) (out I256, ok bool) {
	out, over := i.OverflowingSub(n)
	return out, !over
}

func (i I256) CheckedMul(n I256) (out I256, ok bool) {
	out, over := i.OverflowingMul(n)
	return out, !over
}

// SaturatingAdd clamps to MaxI256 or MinI256 in the overflow direction.
func (i I256) SaturatingAdd(n I256) I256 {
	out, over := i.OverflowingAdd(n)
	if over {
		if i.IsNegative() {
			return MinI256
		}
		return MaxI256
	}
	return out
}

func (i I256) SaturatingSub(n I256) I256 {
	out, over := i.OverflowingSub(n)
	if over {
		if i.IsNegative() {
			return MinI256
		}
		return MaxI256
	}
	return out
}

func (i I256) SaturatingMul(n I256) I256 {
	out, over := i.OverflowingMul(n)
	if over {
		if i.IsNegative() != n.IsNegative() {
			return MinI256
		}
		return MaxI256
	}
	return out
}

func (i I256) WrappingAdd(n I256) I256 { out, _ := i.OverflowingAdd(n); return out }

func (i I256) WrappingSub(n I256) I256 { out, _ := i.OverflowingSub(n); return out }

func (i I256) WrappingMul(n I256) I256 { out, _ := i.OverflowingMul(n); return out }

// DivRem performs truncated division: the quotient rounds toward zero and
// the remainder takes the sign of i. Panics with ErrDivZero on a zero
// divisor and ErrDivOverflow for MinI256 / -1.
func (i I256) DivRem(by I256) (q, r I256) {
	q, r, err := i.CheckedDivRem(by)
	if err != nil {
		panic(err)
	}
	return q, r
}

// CheckedDivRem is DivRem, reporting a DivError instead of panicking.
func (i I256) CheckedDivRem(by I256) (q, r I256, err error) {
	if by.IsZero() {
		return q, r, ErrDivZero
	}
	if i == MinI256 && by == I256From64(-1) {
		return q, r, ErrDivOverflow
	}
	a, b := i.absU(), by.absU()
	var sc [i256Words]uint64
	quoremInto(q.w[:], r.w[:], sc[:], a.w[:], b.w[:])
	if i.IsNegative() != by.IsNegative() {
		q = q.WrappingNeg()
	}
	if i.IsNegative() {
		r = r.WrappingNeg()
	}
	return q, r, nil
}

func (i I256) Quo(by I256) I256 { q, _ := i.DivRem(by); return q }

func (i I256) Rem(by I256) I256 { _, r := i.DivRem(by); return r }

func (i I256) And(n I256) I256 { return i.AsU256().And(n.AsU256()).AsI256() }

func (i I256) Or(n I256) I256 { return i.AsU256().Or(n.AsU256()).AsI256() }

func (i I256) Xor(n I256) I256 { return i.AsU256().Xor(n.AsU256()).AsI256() }

func (i I256) Not() I256 { return i.AsU256().Not().AsI256() }

func (i I256) Lsh(n uint) I256 { return i.AsU256().Lsh(n).AsI256() }

// Rsh performs an arithmetic right shift, filling with the sign bit.
func (i I256) Rsh(n uint) (out I256) {
	var fill uint64
	if i.IsNegative() {
		fill = maxUint64
	}
	shrInto(out.w[:], i.w[:], n, fill)
	return out
}

// String renders the raw two's complement pattern as zero-padded hex.
func (i I256) String() string { return i.AsU256().String() }

func (i I256) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i I256) MarshalText() ([]byte, error) { return i.AsU256().MarshalText() }

func (i *I256) UnmarshalText(bts []byte) error {
	var u U256
	if err := u.UnmarshalText(bts); err != nil {
		return err
	}
	*i = u.AsI256()
	return nil
}
