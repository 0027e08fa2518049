package num

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	u512Words = 8
	u512Bytes = 64
	u512Hex   = 128
	u512Bits  = 512
)

// U512 is an unsigned 256-bit integer of four 64-bit words, least
// significant word first. U512 is a value type; all operations return new
// values. The zero value is ready to use.
type U512 struct{ w [u512Words]uint64 }

var MaxU512 = U512{}.Not()

func U512From64(v uint64) (out U512) {
	out.w[0] = v
	return out
}

// U512FromWords builds a U512 from little-endian words.
func U512FromWords(w [u512Words]uint64) U512 { return U512{w: w} }

// Words returns the little-endian words of u.
func (u U512) Words() [u512Words]uint64 { return u.w }

// U512FromBigInt creates a U512 from a big.Int. Returns inRange == false
// if the big.Int is negative (yielding zero) or too big (yielding MaxU512).
func U512FromBigInt(v *big.Int) (out U512, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > u512Bits {
		return MaxU512, false
	}
	var bts [u512Bytes]byte
	v.FillBytes(bts[:])
	out, _ = U512FromBEBytes(bts[:])
	return out, true
}

// U512FromBEBytes creates a U512 from a big-endian slice, which must be
// exactly u512Bytes long.
func U512FromBEBytes(bts []byte) (out U512, err error) {
	if len(bts) != u512Bytes {
		return out, &ParseLengthError{Actual: len(bts), Expected: u512Bytes}
	}
	for i := 0; i < u512Words; i++ {
		out.w[u512Words-1-i] = binary.BigEndian.Uint64(bts[i*8:])
	}
	return out, nil
}

// U512FromLEBytes creates a U512 from a little-endian slice, which must be
// exactly u512Bytes long.
func U512FromLEBytes(bts []byte) (out U512, err error) {
	if len(bts) != u512Bytes {
		return out, &ParseLengthError{Actual: len(bts), Expected: u512Bytes}
	}
	for i := 0; i < u512Words; i++ {
		out.w[i] = binary.LittleEndian.Uint64(bts[i*8:])
	}
	return out, nil
}

func (u U512) BEBytes() (out [u512Bytes]byte) {
	for i := 0; i < u512Words; i++ {
		binary.BigEndian.PutUint64(out[i*8:], u.w[u512Words-1-i])
	}
	return out
}

func (u U512) LEBytes() (out [u512Bytes]byte) {
	for i := 0; i < u512Words; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], u.w[i])
	}
	return out
}

func (u U512) IsZero() bool { return isZeroWords(u.w[:]) }

func (u U512) Low64() uint64 { return u.w[0] }

func (u U512) Low32() uint32 { return uint32(u.w[0]) }

// Bit returns bit i of u. Panics if i is outside [0, u512Bits).
func (u U512) Bit(i int) bool {
	if i < 0 || i >= u512Bits {
		panic("num: bit index out of range")
	}
	return u.w[i/64]&(1<<(uint(i)%64)) != 0
}

// BitsRequired returns the least number of bits needed to represent u.
// Zero requires 0 bits.
func (u U512) BitsRequired() int { return bitLenWords(u.w[:]) }

// AsI512 reinterprets the bit pattern as a signed two's complement value.
func (u U512) AsI512() I512 { return I512{w: u.w} }

func (u U512) AsBigInt() *big.Int {
	b := new(big.Int)
	u.IntoBigInt(b)
	return b
}

func (u U512) IntoBigInt(b *big.Int) {
	bts := u.BEBytes()
	b.SetBytes(bts[:])
}

func (u U512) Cmp(n U512) int { return cmpWords(u.w[:], n.w[:]) }

func (u U512) Equal(n U512) bool { return u.w == n.w }

func (u U512) GreaterThan(n U512) bool { return cmpWords(u.w[:], n.w[:]) > 0 }

func (u U512) GreaterOrEqualTo(n U512) bool { return cmpWords(u.w[:], n.w[:]) >= 0 }

func (u U512) LessThan(n U512) bool { return cmpWords(u.w[:], n.w[:]) < 0 }

func (u U512) LessOrEqualTo(n U512) bool { return cmpWords(u.w[:], n.w[:]) <= 0 }

// OverflowingAdd returns u + n wrapped modulo 2**u512Bits, and whether the
// sum wrapped.
func (u U512) OverflowingAdd(n U512) (out U512, over bool) {
	carry := addInto(out.w[:], u.w[:], n.w[:])
	return out, carry != 0
}

// OverflowingSub returns u - n wrapped modulo 2**u512Bits, and whether the
// difference wrapped.
func (u U512) OverflowingSub(n U512) (out U512, over bool) {
	borrow := subInto(out.w[:], u.w[:], n.w[:])
	return out, borrow != 0
}

// OverflowingMul returns the low u512Bits bits of u * n, and whether any
// high bits were lost.
func (u U512) OverflowingMul(n U512) (out U512, over bool) {
	var ext [2 * u512Words]uint64
	mulInto(ext[:], u.w[:], n.w[:])
	copy(out.w[:], ext[:u512Words])
	return out, !isZeroWords(ext[u512Words:])
}

// CheckedAdd returns u + n, with ok == false if the sum overflowed.
func (u U512) CheckedAdd(n U512) (out U512, ok bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U512) CheckedSub(n U512) (out U512, ok bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U512) CheckedMul(n U512) (out U512, ok bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U512) SaturatingAdd(n U512) U512 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU512
	}
	return out
}

func (u U512) SaturatingSub(n U512) U512 {
	out, over := u.OverflowingSub(n)
	if over {
		return U512{}
	}
	return out
}

func (u U512) SaturatingMul(n U512) U512 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU512
	}
	return out
}

func (u U512) WrappingAdd(n U512) U512 { out, _ := u.OverflowingAdd(n); return out }

func (u U512) WrappingSub(n U512) U512 { out, _ := u.OverflowingSub(n); return out }

func (u U512) WrappingMul(n U512) U512 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, returning the quotient and
// remainder. Panics with ErrDivZero if by is zero.
func (u U512) DivRem(by U512) (q, r U512) {
	if by.IsZero() {
		panic(ErrDivZero)
	}
	var sc [u512Words]uint64
	quoremInto(q.w[:], r.w[:], sc[:], u.w[:], by.w[:])
	return q, r
}

// CheckedDivRem is DivRem, reporting a DivError instead of panicking.
func (u U512) CheckedDivRem(by U512) (q, r U512, err error) {
	if by.IsZero() {
		return q, r, ErrDivZero
	}
	q, r = u.DivRem(by)
	return q, r, nil
}

func (u U512) Quo(by U512) U512 { q, _ := u.DivRem(by); return q }

func (u U512) Rem(by U512) U512 { _, r := u.DivRem(by); return r }

func (u U512) And(n U512) (out U512) {
	for i := range u.w {
		out.w[i] = u.w[i] & n.w[i]
	}
	return out
}

func (u U512) Or(n U512) (out U512) {
	for i := range u.w {
		out.w[i] = u.w[i] | n.w[i]
	}
	return out
}

func (u U512) Xor(n U512) (out U512) {
	for i := range u.w {
		out.w[i] = u.w[i] ^ n.w[i]
	}
	return out
}

func (u U512) Not() (out U512) {
	notInto(out.w[:], u.w[:])
	return out
}

// Lsh shifts u left by n bits. Shifts of u512Bits or more yield zero.
func (u U512) Lsh(n uint) (out U512) {
	shlInto(out.w[:], u.w[:], n)
	return out
}

// Rsh shifts u right by n bits, filling with zeros.
func (u U512) Rsh(n uint) (out U512) {
	shrInto(out.w[:], u.w[:], n, 0)
	return out
}

// String returns the canonical rendering of u: "0x" followed by the full
// width of zero-padded hex digits. Use Format for decimal and other bases.
func (u U512) String() string {
	b := make([]byte, 2+u512Hex)
	b[0], b[1] = '0', 'x'
	for i := 0; i < u512Words; i++ {
		hexPut64(b[2+i*16:], u.w[u512Words-1-i])
	}
	return string(b)
}

func (u U512) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// MarshalText renders u as u512Hex unprefixed lowercase hex digits.
func (u U512) MarshalText() ([]byte, error) {
	b := make([]byte, u512Hex)
	for i := 0; i < u512Words; i++ {
		hexPut64(b[i*16:], u.w[u512Words-1-i])
	}
	return b, nil
}

func (u *U512) UnmarshalText(bts []byte) error {
	if len(bts) != u512Hex {
		return &ParseLengthError{Actual: len(bts), Expected: u512Hex}
	}
	var raw [u512Bytes]byte
	if _, err := hex.Decode(raw[:], bts); err != nil {
		return fmt.Errorf("num: invalid u512 text %q: %v", bts, err)
	}
	out, err := U512FromBEBytes(raw[:])
	if err != nil {
		return err
	}
	*u = out
	return nil
}
