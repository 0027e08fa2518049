package num

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	u256Words = 4
	u256Bytes = 32
	u256Hex   = 64
	u256Bits  = 256
)

// U256 is an unsigned 256-bit integer of four 64-bit words, least
// significant word first. U256 is a value type; all operations return new
// values. The zero value is ready to use.
type U256 struct{ w [u256Words]uint64 }

var MaxU256 = U256{}.Not()

func U256From64(v uint64) (out U256) {
	out.w[0] = v
	return out
}

// U256FromWords builds a U256 from little-endian words.
func U256FromWords(w [u256Words]uint64) U256 { return U256{w: w} }

// Words returns the little-endian words of u.
func (u U256) Words() [u256Words]uint64 { return u.w }

// U256FromBigInt creates a U256 from a big.Int. Returns inRange == false
// if the big.Int is negative (yielding zero) or too big (yielding MaxU256).
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > u256Bits {
		return MaxU256, false
	}
	var bts [u256Bytes]byte
	v.FillBytes(bts[:])
	out, _ = U256FromBEBytes(bts[:])
	return out, true
}

// U256FromBEBytes creates a U256 from a big-endian slice, which must be
// exactly u256Bytes long.
func U256FromBEBytes(bts []byte) (out U256, err error) {
	if len(bts) != u256Bytes {
		return out, &ParseLengthError{Actual: len(bts), Expected: u256Bytes}
	}
	for i := 0; i < u256Words; i++ {
		out.w[u256Words-1-i] = binary.BigEndian.Uint64(bts[i*8:])
	}
	return out, nil
}

// U256FromLEBytes creates a U256 from a little-endian slice, which must be
// exactly u256Bytes long.
func U256FromLEBytes(bts []byte) (out U256, err error) {
	if len(bts) != u256Bytes {
		return out, &ParseLengthError{Actual: len(bts), Expected: u256Bytes}
	}
	for i := 0; i < u256Words; i++ {
		out.w[i] = binary.LittleEndian.Uint64(bts[i*8:])
	}
	return out, nil
}

func (u U256) BEBytes() (out [u256Bytes]byte) {
	for i := 0; i < u256Words; i++ {
		binary.BigEndian.PutUint64(out[i*8:], u.w[u256Words-1-i])
	}
	return out
}

func (u U256) LEBytes() (out [u256Bytes]byte) {
	for i := 0; i < u256Words; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], u.w[i])
	}
	return out
}

func (u U256) IsZero() bool { return isZeroWords(u.w[:]) }

func (u U256) Low64() uint64 { return u.w[0] }

func (u U256) Low32() uint32 { return uint32(u.w[0]) }

// Bit returns bit i of u. Panics if i is outside [0, u256Bits).
func (u U256) Bit(i int) bool {
	if i < 0 || i >= u256Bits {
		panic("num: bit index out of range")
	}
	return u.w[i/64]&(1<<(uint(i)%64)) != 0
}

// BitsRequired returns the least number of bits needed to represent u.
// Zero requires 0 bits.
func (u U256) BitsRequired() int { return bitLenWords(u.w[:]) }

// AsI256 reinterprets the bit pattern as a signed two's complement value.
func (u U256) AsI256() I256 { return I256{w: u.w} }

func (u U256) AsBigInt() *big.Int {
	b := new(big.Int)
	u.IntoBigInt(b)
	return b
}

func (u U256) IntoBigInt(b *big.Int) {
	bts := u.BEBytes()
	b.SetBytes(bts[:])
}

func (u U256) Cmp(n U256) int { return cmpWords(u.w[:], n.w[:]) }

func (u U256) Equal(n U256) bool { return u.w == n.w }

func (u U256) GreaterThan(n U256) bool { return cmpWords(u.w[:], n.w[:]) > 0 }

func (u U256) GreaterOrEqualTo(n U256) bool { return cmpWords(u.w[:], n.w[:]) >= 0 }

func (u U256) LessThan(n U256) bool { return cmpWords(u.w[:], n.w[:]) < 0 }

func (u U256) LessOrEqualTo(n U256) bool { return cmpWords(u.w[:], n.w[:]) <= 0 }

// OverflowingAdd returns u + n wrapped modulo 2**u256Bits, and whether the
// sum wrapped.
func (u U256) OverflowingAdd(n U256) (out U256, over bool) {
	carry := addInto(out.w[:], u.w[:], n.w[:])
	return out, carry != 0
}

// OverflowingSub returns u - n wrapped modulo 2**u256Bits, and whether the
// difference wrapped.
func (u U256) OverflowingSub(n U256) (out U256, over bool) {
	borrow := subInto(out.w[:], u.w[:], n.w[:])
	return out, borrow != 0
}

// OverflowingMul returns the low u256Bits bits of u * n, and whether any
// high bits were lost.
func (u U256) OverflowingMul(n U256) (out U256, over bool) {
	var ext [2 * u256Words]uint64
	mulInto(ext[:], u.w[:], n.w[:])
	copy(out.w[:], ext[:u256Words])
	return out, !isZeroWords(ext[u256Words:])
}

// CheckedAdd returns u + n, with ok == false if the sum overflowed.
func (u U256) CheckedAdd(n U256) (out U256, ok bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U256) CheckedSub(n U256) (out U256, ok bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U256) CheckedMul(n U256) (out U256, ok bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U256) SaturatingAdd(n U256) U256 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU256
	}
	return out
}

func (u U256) SaturatingSub(n U256) U256 {
	out, over := u.OverflowingSub(n)
	if over {
		return U256{}
	}
	return out
}

func (u U256) SaturatingMul(n U256) U256 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU256
	}
	return out
}

func (u U256) WrappingAdd(n U256) U256 { out, _ := u.OverflowingAdd(n); return out }

func (u U256) WrappingSub(n U256) U256 { out, _ := u.OverflowingSub(n); return out }

func (u U256) WrappingMul(n U256) U256 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, returning the quotient and
// remainder. Panics with ErrDivZero if by is zero.
func (u U256) DivRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic(ErrDivZero)
	}
	var sc [u256Words]uint64
	quoremInto(q.w[:], r.w[:], sc[:], u.w[:], by.w[:])
	return q, r
}

// CheckedDivRem is DivRem, reporting a DivError instead of panicking.
func (u U256) CheckedDivRem(by U256) (q, r U256, err error) {
	if by.IsZero() {
		return q, r, ErrDivZero
	}
	q, r = u.DivRem(by)
	return q, r, nil
}

func (u U256) Quo(by U256) U256 { q, _ := u.DivRem(by); return q }

func (u U256) Rem(by U256) U256 { _, r := u.DivRem(by); return r }

func (u U256) And(n U256) (out U256) {
	for i := range u.w {
		out.w[i] = u.w[i] & n.w[i]
	}
	return out
}

func (u U256) Or(n U256) (out U256) {
	for i := range u.w {
		out.w[i] = u.w[i] | n.w[i]
	}
	return out
}

func (u U256) Xor(n U256) (out U256) {
	for i := range u.w {
		out.w[i] = u.w[i] ^ n.w[i]
	}
	return out
}

func (u U256) Not() (out U256) {
	notInto(out.w[:], u.w[:])
	return out
}

// Lsh shifts u left by n bits. Shifts of u256Bits or more yield zero.
func (u U256) Lsh(n uint) (out U256) {
	shlInto(out.w[:], u.w[:], n)
	return out
}

// Rsh shifts u right by n bits, filling with zeros.
func (u U256) Rsh(n uint) (out U256) {
	shrInto(out.w[:], u.w[:], n, 0)
	return out
}

// String returns the canonical rendering of u: "0x" followed by the full
// width of zero-padded hex digits. Use Format for decimal and other bases.
func (u U256) String() string {
	b := make([]byte, 2+u256Hex)
	b[0], b[1] = '0', 'x'
	for i := 0; i < u256Words; i++ {
		hexPut64(b[2+i*16:], u.w[u256Words-1-i])
	}
	return string(b)
}

func (u U256) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// MarshalText renders u as u256Hex unprefixed lowercase hex digits.
func (u U256) MarshalText() ([]byte, error) {
	b := make([]byte, u256Hex)
	for i := 0; i < u256Words; i++ {
		hexPut64(b[i*16:], u.w[u256Words-1-i])
	}
	return b, nil
}

func (u *U256) UnmarshalText(bts []byte) error {
	if len(bts) != u256Hex {
		return &ParseLengthError{Actual: len(bts), Expected: u256Hex}
	}
	var raw [u256Bytes]byte
	if _, err := hex.Decode(raw[:], bts); err != nil {
		return fmt.Errorf("num: invalid u256 text %q: %v", bts, err)
	}
	out, err := U256FromBEBytes(raw[:])
	if err != nil {
		return err
	}
	*u = out
	return nil
}
