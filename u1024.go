package num

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	u1024Words = 16
	u1024Bytes = 128
	u1024Hex   = 256
	u1024Bits  = 1024
)

// U1024 is an unsigned 256-bit integer of four 64-bit words, least
// significant word first. U1024 is a value type; all operations return new
// values. The zero value is ready to use.
type U1024 struct{ w [u1024Words]uint64 }

var MaxU1024 = U1024{}.Not()

func U1024From64(v uint64) (out U1024) {
	out.w[0] = v
	return out
}

// U1024FromWords builds a U1024 from little-endian words.
func U1024FromWords(w [u1024Words]uint64) U1024 { return U1024{w: w} }

// Words returns the little-endian words of u.
func (u U1024) Words() [u1024Words]uint64 { return u.w }

// U1024FromBigInt creates a U1024 from a big.Int. Returns inRange == false
// if the big.Int is negative (yielding zero) or too big (yielding MaxU1024).
func U1024FromBigInt(v *big.Int) (out U1024, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > u1024Bits {
		return MaxU1024, false
	}
	var bts [u1024Bytes]byte
	v.FillBytes(bts[:])
	out, _ = U1024FromBEBytes(bts[:])
	return out, true
}

// U1024FromBEBytes creates a U1024 from a big-endian slice, which must be
// exactly u1024Bytes long.
func U1024FromBEBytes(bts []byte) (out U1024, err error) {
	if len(bts) != u1024Bytes {
		return out, &ParseLengthError{Actual: len(bts), Expected: u1024Bytes}
	}
	for i := 0; i < u1024Words; i++ {
		out.w[u1024Words-1-i] = binary.BigEndian.Uint64(bts[i*8:])
	}
	return out, nil
}

// U1024FromLEBytes creates a U1024 from a little-endian slice, which must be
// exactly u1024Bytes long.
func U1024FromLEBytes(bts []byte) (out U1024, err error) {
	if len(bts) != u1024Bytes {
		return out, &ParseLengthError{Actual: len(bts), Expected: u1024Bytes}
	}
	for i := 0; i < u1024Words; i++ {
		out.w[i] = binary.LittleEndian.Uint64(bts[i*8:])
	}
	return out, nil
}

func (u U1024) BEBytes() (out [u1024Bytes]byte) {
	for i := 0; i < u1024Words; i++ {
		binary.BigEndian.PutUint64(out[i*8:], u.w[u1024Words-1-i])
	}
	return out
}

func (u U1024) LEBytes() (out [u1024Bytes]byte) {
	for i := 0; i < u1024Words; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], u.w[i])
	}
	return out
}

func (u U1024) IsZero() bool { return isZeroWords(u.w[:]) }

func (u U1024) Low64() uint64 { return u.w[0] }

func (u U1024) Low32() uint32 { return uint32(u.w[0]) }

// Bit returns bit i of u. Panics if i is outside [0, u1024Bits).
func (u U1024) Bit(i int) bool {
	if i < 0 || i >= u1024Bits {
		panic("num: bit index out of range")
	}
	return u.w[i/64]&(1<<(uint(i)%64)) != 0
}

// BitsRequired returns the least number of bits needed to represent u.
// Zero requires 0 bits.
func (u U1024) BitsRequired() int { return bitLenWords(u.w[:]) }

// AsI1024 reinterprets the bit pattern as a signed two's complement value.
func (u U1024) AsI1024() I1024 { return I1024{w: u.w} }

func (u U1024) AsBigInt() *big.Int {
	b := new(big.Int)
	u.IntoBigInt(b)
	return b
}

func (u U1024) IntoBigInt(b *big.Int) {
	bts := u.BEBytes()
	b.SetBytes(bts[:])
}

func (u U1024) Cmp(n U1024) int { return cmpWords(u.w[:], n.w[:]) }

func (u U1024) Equal(n U1024) bool { return u.w == n.w }

func (u U1024) GreaterThan(n U1024) bool { return cmpWords(u.w[:], n.w[:]) > 0 }

func (u U1024) GreaterOrEqualTo(n U1024) bool { return cmpWords(u.w[:], n.w[:]) >= 0 }

func (u U1024) LessThan(n U1024) bool { return cmpWords(u.w[:], n.w[:]) < 0 }

func (u U1024) LessOrEqualTo(n U1024) bool { return cmpWords(u.w[:], n.w[:]) <= 0 }

// OverflowingAdd returns u + n wrapped modulo 2**u1024Bits, and whether the
// sum wrapped.
func (u U1024) OverflowingAdd(n U1024) (out U1024, over bool) {
	carry := addInto(out.w[:], u.w[:], n.w[:])
	return out, carry != 0
}

// OverflowingSub returns u - n wrapped modulo 2**u1024Bits, and whether the
// difference wrapped.
func (u U1024) OverflowingSub(n U1024) (out U1024, over bool) {
	borrow := subInto(out.w[:], u.w[:], n.w[:])
	return out, borrow != 0
}

// OverflowingMul returns the low u1024Bits bits of u * n, and whether any
// high bits were lost.
func (u U1024) OverflowingMul(n U1024) (out U1024, over bool) {
	var ext [2 * u1024Words]uint64
	mulInto(ext[:], u.w[:], n.w[:])
	copy(out.w[:], ext[:u1024Words])
	return out, !isZeroWords(ext[u1024Words:])
}

// CheckedAdd returns u + n, with ok == false if the sum overflowed.
func (u U1024) CheckedAdd(n U1024) (out U1024, ok bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U1024) CheckedSub(n U1024) (out U1024, ok bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U1024) CheckedMul(n U1024) (out U1024, ok bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U1024) SaturatingAdd(n U1024) U1024 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU1024
	}
	return out
}

func (u U1024) SaturatingSub(n U1024) U1024 {
	out, over := u.OverflowingSub(n)
	if over {
		return U1024{}
	}
	return out
}

func (u U1024) SaturatingMul(n U1024) U1024 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU1024
	}
	return out
}

func (u U1024) WrappingAdd(n U1024) U1024 { out, _ := u.OverflowingAdd(n); return out }

func (u U1024) WrappingSub(n U1024) U1024 { out, _ := u.OverflowingSub(n); return out }

func (u U1024) WrappingMul(n U1024) U1024 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, returning the quotient and
// remainder. Panics with ErrDivZero if by is zero.
func (u U1024) DivRem(by U1024) (q, r U1024) {
	if by.IsZero() {
		panic(ErrDivZero)
	}
	var sc [u1024Words]uint64
	quoremInto(q.w[:], r.w[:], sc[:], u.w[:], by.w[:])
	return q, r
}

// CheckedDivRem is DivRem, reporting a DivError instead of panicking.
func (u U1024) CheckedDivRem(by U1024) (q, r U1024, err error) {
	if by.IsZero() {
		return q, r, ErrDivZero
	}
	q, r = u.DivRem(by)
	return q, r, nil
}

func (u U1024) Quo(by U1024) U1024 { q, _ := u.DivRem(by); return q }

func (u U1024) Rem(by U1024) U1024 { _, r := u.DivRem(by); return r }

func (u U1024) And(n U1024) (out U1024) {
	for i := range u.w {
		out.w[i] = u.w[i] & n.w[i]
	}
	return out
}

func (u U1024) Or(n U1024) (out U1024) {
	for i := range u.w {
		out.w[i] = u.w[i] | n.w[i]
	}
	return out
}

func (u U1024) Xor(n U1024) (out U1024) {
	for i := range u.w {
		out.w[i] = u.w[i] ^ n.w[i]
	}
	return out
}

func (u U1024) Not() (out U1024) {
	notInto(out.w[:], u.w[:])
	return out
}

// Lsh shifts u left by n bits. Shifts of u1024Bits or more yield zero.
func (u U1024) Lsh(n uint) (out U1024) {
	shlInto(out.w[:], u.w[:], n)
	return out
}

// Rsh shifts u right by n bits, filling with zeros.
func (u U1024) Rsh(n uint) (out U1024) {
	shrInto(out.w[:], u.w[:], n, 0)
	return out
}

// String returns the canonical rendering of u: "0x" followed by the full
// width of zero-padded hex digits. Use Format for decimal and other bases.
func (u U1024) String() string {
	b := make([]byte, 2+u1024Hex)
	b[0], b[1] = '0', 'x'
	for i := 0; i < u1024Words; i++ {
		hexPut64(b[2+i*16:], u.w[u1024Words-1-i])
	}
	return string(b)
}

func (u U1024) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// MarshalText renders u as u1024Hex unprefixed lowercase hex digits.
func (u U1024) MarshalText() ([]byte, error) {
	b := make([]byte, u1024Hex)
	for i := 0; i < u1024Words; i++ {
		hexPut64(b[i*16:], u.w[u1024Words-1-i])
	}
	return b, nil
}

func (u *U1024) UnmarshalText(bts []byte) error {
	if len(bts) != u1024Hex {
		return &ParseLengthError{Actual: len(bts), Expected: u1024Hex}
	}
	var raw [u1024Bytes]byte
	if _, err := hex.Decode(raw[:], bts); err != nil {
		return fmt.Errorf("num: invalid u1024 text %q: %v", bts, err)
	}
	out, err := U1024FromBEBytes(raw[:])
	if err != nil {
		return err
	}
	*u = out
	return nil
}
