package num

// Small bit-sized unsigned integers. Each type is backed by the smallest
// native unsigned integer that fits it and guarantees its value never
// exceeds the type's Max constant when built through New* or the checked,
// saturating and wrapping operations. Converting directly (e.g. U4(20))
// bypasses the guarantee, the same way time.Duration can hold a nonsense
// value; use the constructors.

// U1 is an unsigned 1-bit integer.
type U1 uint8

const MaxU1 U1 = 1

// NewU1 builds a U1, failing with an OverflowError if v exceeds MaxU1.
func NewU1(v uint8) (U1, error) {
	if v > uint8(MaxU1) {
		return 0, &OverflowError{Max: uint32(MaxU1), Value: uint32(v)}
	}
	return U1(v), nil
}

// MustU1 is NewU1, panicking on overflow.
func MustU1(v uint8) U1 {
	out, err := NewU1(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U1) Uint8() uint8 { return uint8(u) }

// OverflowingAdd returns u + n wrapped modulo 2**1, and whether the sum
// wrapped.
func (u U1) OverflowingAdd(n U1) (U1, bool) {
	sum := uint16(u) + uint16(n)
	return U1(sum % 2), sum > uint16(MaxU1)
}

func (u U1) OverflowingSub(n U1) (U1, bool) {
	d := uint16(u) - uint16(n)
	return U1(d % 2), u < n
}

func (u U1) OverflowingMul(n U1) (U1, bool) {
	p := uint16(u) * uint16(n)
	return U1(p % 2), p > uint16(MaxU1)
}

func (u U1) CheckedAdd(n U1) (U1, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U1) CheckedSub(n U1) (U1, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U1) CheckedMul(n U1) (U1, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U1) SaturatingAdd(n U1) U1 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU1
	}
	return out
}

func (u U1) SaturatingSub(n U1) U1 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U1) SaturatingMul(n U1) U1 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU1
	}
	return out
}

func (u U1) WrappingAdd(n U1) U1 { out, _ := u.OverflowingAdd(n); return out }

func (u U1) WrappingSub(n U1) U1 { out, _ := u.OverflowingSub(n); return out }

func (u U1) WrappingMul(n U1) U1 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U1) DivRem(n U1) (q, r U1, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}

// U2 is an unsigned 2-bit integer.
type U2 uint8

const MaxU2 U2 = 3

// NewU2 builds a U2, failing with an OverflowError if v exceeds MaxU2.
func NewU2(v uint8) (U2, error) {
	if v > uint8(MaxU2) {
		return 0, &OverflowError{Max: uint32(MaxU2), Value: uint32(v)}
	}
	return U2(v), nil
}

// MustU2 is NewU2, panicking on overflow.
func MustU2(v uint8) U2 {
	out, err := NewU2(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U2) Uint8() uint8 { return uint8(u) }

// OverflowingAdd returns u + n wrapped modulo 2**2, and whether the sum
// wrapped.
func (u U2) OverflowingAdd(n U2) (U2, bool) {
	sum := uint16(u) + uint16(n)
	return U2(sum % 4), sum > uint16(MaxU2)
}

func (u U2) OverflowingSub(n U2) (U2, bool) {
	d := uint16(u) - uint16(n)
	return U2(d % 4), u < n
}

func (u U2) OverflowingMul(n U2) (U2, bool) {
	p := uint16(u) * uint16(n)
	return U2(p % 4), p > uint16(MaxU2)
}

func (u U2) CheckedAdd(n U2) (U2, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U2) CheckedSub(n U2) (U2, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U2) CheckedMul(n U2) (U2, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U2) SaturatingAdd(n U2) U2 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU2
	}
	return out
}

func (u U2) SaturatingSub(n U2) U2 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U2) SaturatingMul(n U2) U2 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU2
	}
	return out
}

func (u U2) WrappingAdd(n U2) U2 { out, _ := u.OverflowingAdd(n); return out }

func (u U2) WrappingSub(n U2) U2 { out, _ := u.OverflowingSub(n); return out }

func (u U2) WrappingMul(n U2) U2 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U2) DivRem(n U2) (q, r U2, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}

// U3 is an unsigned 3-bit integer.
type U3 uint8

const MaxU3 U3 = 7

// NewU3 builds a U3, failing with an OverflowError if v exceeds MaxU3.
func NewU3(v uint8) (U3, error) {
	if v > uint8(MaxU3) {
		return 0, &OverflowError{Max: uint32(MaxU3), Value: uint32(v)}
	}
	return U3(v), nil
}

// MustU3 is NewU3, panicking on overflow.
func MustU3(v uint8) U3 {
	out, err := NewU3(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U3) Uint8() uint8 { return uint8(u) }

// OverflowingAdd returns u + n wrapped modulo 2**3, and whether the sum
// wrapped.
func (u U3) OverflowingAdd(n U3) (U3, bool) {
	sum := uint16(u) + uint16(n)
	return U3(sum % 8), sum > uint16(MaxU3)
}

func (u U3) OverflowingSub(n U3) (U3, bool) {
	d := uint16(u) - uint16(n)
	return U3(d % 8), u < n
}

func (u U3) OverflowingMul(n U3) (U3, bool) {
	p := uint16(u) * uint16(n)
	return U3(p % 8), p > uint16(MaxU3)
}

func (u U3) CheckedAdd(n U3) (U3, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U3) CheckedSub(n U3) (U3, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U3) CheckedMul(n U3) (U3, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U3) SaturatingAdd(n U3) U3 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU3
	}
	return out
}

func (u U3) SaturatingSub(n U3) U3 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U3) SaturatingMul(n U3) U3 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU3
	}
	return out
}

func (u U3) WrappingAdd(n U3) U3 { out, _ := u.OverflowingAdd(n); return out }

func (u U3) WrappingSub(n U3) U3 { out, _ := u.OverflowingSub(n); return out }

func (u U3) WrappingMul(n U3) U3 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U3) DivRem(n U3) (q, r U3, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}

// U4 is an unsigned 4-bit integer.
type U4 uint8

const MaxU4 U4 = 15

// NewU4 builds a U4, failing with an OverflowError if v exceeds MaxU4.
func NewU4(v uint8) (U4, error) {
	if v > uint8(MaxU4) {
		return 0, &OverflowError{Max: uint32(MaxU4), Value: uint32(v)}
	}
	return U4(v), nil
}

// MustU4 is NewU4, panicking on overflow.
func MustU4(v uint8) U4 {
	out, err := NewU4(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U4) Uint8() uint8 { return uint8(u) }

// OverflowingAdd returns u + n wrapped modulo 2**4, and whether the sum
// wrapped.
func (u U4) OverflowingAdd(n U4) (U4, bool) {
	sum := uint16(u) + uint16(n)
	return U4(sum % 16), sum > uint16(MaxU4)
}

func (u U4) OverflowingSub(n U4) (U4, bool) {
	d := uint16(u) - uint16(n)
	return U4(d % 16), u < n
}

func (u U4) OverflowingMul(n U4) (U4, bool) {
	p := uint16(u) * uint16(n)
	return U4(p % 16), p > uint16(MaxU4)
}

func (u U4) CheckedAdd(n U4) (U4, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U4) CheckedSub(n U4) (U4, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U4) CheckedMul(n U4) (U4, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U4) SaturatingAdd(n U4) U4 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU4
	}
	return out
}

func (u U4) SaturatingSub(n U4) U4 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U4) SaturatingMul(n U4) U4 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU4
	}
	return out
}

func (u U4) WrappingAdd(n U4) U4 { out, _ := u.OverflowingAdd(n); return out }

func (u U4) WrappingSub(n U4) U4 { out, _ := u.OverflowingSub(n); return out }

func (u U4) WrappingMul(n U4) U4 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U4) DivRem(n U4) (q, r U4, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}

// U5 is an unsigned 5-bit integer.
type U5 uint8

const MaxU5 U5 = 31

// NewU5 builds a U5, failing with an OverflowError if v exceeds MaxU5.
func NewU5(v uint8) (U5, error) {
	if v > uint8(MaxU5) {
		return 0, &OverflowError{Max: uint32(MaxU5), Value: uint32(v)}
	}
	return U5(v), nil
}

// MustU5 is NewU5, panicking on overflow.
func MustU5(v uint8) U5 {
	out, err := NewU5(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U5) Uint8() uint8 { return uint8(u) }

// OverflowingAdd returns u + n wrapped modulo 2**5, and whether the sum
// wrapped.
func (u U5) OverflowingAdd(n U5) (U5, bool) {
	sum := uint16(u) + uint16(n)
	return U5(sum % 32), sum > uint16(MaxU5)
}

func (u U5) OverflowingSub(n U5) (U5, bool) {
	d := uint16(u) - uint16(n)
	return U5(d % 32), u < n
}

func (u U5) OverflowingMul(n U5) (U5, bool) {
	p := uint16(u) * uint16(n)
	return U5(p % 32), p > uint16(MaxU5)
}

func (u U5) CheckedAdd(n U5) (U5, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U5) CheckedSub(n U5) (U5, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U5) CheckedMul(n U5) (U5, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U5) SaturatingAdd(n U5) U5 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU5
	}
	return out
}

func (u U5) SaturatingSub(n U5) U5 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U5) SaturatingMul(n U5) U5 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU5
	}
	return out
}

func (u U5) WrappingAdd(n U5) U5 { out, _ := u.OverflowingAdd(n); return out }

func (u U5) WrappingSub(n U5) U5 { out, _ := u.OverflowingSub(n); return out }

func (u U5) WrappingMul(n U5) U5 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U5) DivRem(n U5) (q, r U5, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}

// U6 is an unsigned 6-bit integer.
type U6 uint8

const MaxU6 U6 = 63

// NewU6 builds a U6, failing with an OverflowError if v exceeds MaxU6.
func NewU6(v uint8) (U6, error) {
	if v > uint8(MaxU6) {
		return 0, &OverflowError{Max: uint32(MaxU6), Value: uint32(v)}
	}
	return U6(v), nil
}

// MustU6 is NewU6, panicking on overflow.
func MustU6(v uint8) U6 {
	out, err := NewU6(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U6) Uint8() uint8 { return uint8(u) }

// OverflowingAdd returns u + n wrapped modulo 2**6, and whether the sum
// wrapped.
func (u U6) OverflowingAdd(n U6) (U6, bool) {
	sum := uint16(u) + uint16(n)
	return U6(sum % 64), sum > uint16(MaxU6)
}

func (u U6) OverflowingSub(n U6) (U6, bool) {
	d := uint16(u) - uint16(n)
	return U6(d % 64), u < n
}

func (u U6) OverflowingMul(n U6) (U6, bool) {
	p := uint16(u) * uint16(n)
	return U6(p % 64), p > uint16(MaxU6)
}

func (u U6) CheckedAdd(n U6) (U6, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U6) CheckedSub(n U6) (U6, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U6) CheckedMul(n U6) (U6, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U6) SaturatingAdd(n U6) U6 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU6
	}
	return out
}

func (u U6) SaturatingSub(n U6) U6 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U6) SaturatingMul(n U6) U6 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU6
	}
	return out
}

func (u U6) WrappingAdd(n U6) U6 { out, _ := u.OverflowingAdd(n); return out }

func (u U6) WrappingSub(n U6) U6 { out, _ := u.OverflowingSub(n); return out }

func (u U6) WrappingMul(n U6) U6 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U6) DivRem(n U6) (q, r U6, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}

// U7 is an unsigned 7-bit integer.
type U7 uint8

const MaxU7 U7 = 127

// NewU7 builds a U7, failing with an OverflowError if v exceeds MaxU7.
func NewU7(v uint8) (U7, error) {
	if v > uint8(MaxU7) {
		return 0, &OverflowError{Max: uint32(MaxU7), Value: uint32(v)}
	}
	return U7(v), nil
}

// MustU7 is NewU7, panicking on overflow.
func MustU7(v uint8) U7 {
	out, err := NewU7(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U7) Uint8() uint8 { return uint8(u) }

// OverflowingAdd returns u + n wrapped modulo 2**7, and whether the sum
// wrapped.
func (u U7) OverflowingAdd(n U7) (U7, bool) {
	sum := uint16(u) + uint16(n)
	return U7(sum % 128), sum > uint16(MaxU7)
}

func (u U7) OverflowingSub(n U7) (U7, bool) {
	d := uint16(u) - uint16(n)
	return U7(d % 128), u < n
}

func (u U7) OverflowingMul(n U7) (U7, bool) {
	p := uint16(u) * uint16(n)
	return U7(p % 128), p > uint16(MaxU7)
}

func (u U7) CheckedAdd(n U7) (U7, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U7) CheckedSub(n U7) (U7, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U7) CheckedMul(n U7) (U7, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U7) SaturatingAdd(n U7) U7 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU7
	}
	return out
}

func (u U7) SaturatingSub(n U7) U7 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U7) SaturatingMul(n U7) U7 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU7
	}
	return out
}

func (u U7) WrappingAdd(n U7) U7 { out, _ := u.OverflowingAdd(n); return out }

func (u U7) WrappingSub(n U7) U7 { out, _ := u.OverflowingSub(n); return out }

func (u U7) WrappingMul(n U7) U7 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U7) DivRem(n U7) (q, r U7, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}

// U24 is an unsigned 24-bit integer.
type U24 uint32

const MaxU24 U24 = 1<<24 - 1

// NewU24 builds a U24, failing with an OverflowError if v exceeds MaxU24.
func NewU24(v uint32) (U24, error) {
	if v > uint32(MaxU24) {
		return 0, &OverflowError{Max: uint32(MaxU24), Value: v}
	}
	return U24(v), nil
}

// MustU24 is NewU24, panicking on overflow.
func MustU24(v uint32) U24 {
	out, err := NewU24(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (u U24) Uint32() uint32 { return uint32(u) }

// OverflowingAdd returns u + n wrapped modulo 2**24, and whether the sum
// wrapped.
func (u U24) OverflowingAdd(n U24) (U24, bool) {
	sum := uint64(u) + uint64(n)
	return U24(sum % (1 << 24)), sum > uint64(MaxU24)
}

func (u U24) OverflowingSub(n U24) (U24, bool) {
	d := uint64(u) - uint64(n)
	return U24(d % (1 << 24)), u < n
}

func (u U24) OverflowingMul(n U24) (U24, bool) {
	p := uint64(u) * uint64(n)
	return U24(p % (1 << 24)), p > uint64(MaxU24)
}

func (u U24) CheckedAdd(n U24) (U24, bool) {
	out, over := u.OverflowingAdd(n)
	return out, !over
}

func (u U24) CheckedSub(n U24) (U24, bool) {
	out, over := u.OverflowingSub(n)
	return out, !over
}

func (u U24) CheckedMul(n U24) (U24, bool) {
	out, over := u.OverflowingMul(n)
	return out, !over
}

func (u U24) SaturatingAdd(n U24) U24 {
	out, over := u.OverflowingAdd(n)
	if over {
		return MaxU24
	}
	return out
}

func (u U24) SaturatingSub(n U24) U24 {
	out, over := u.OverflowingSub(n)
	if over {
		return 0
	}
	return out
}

func (u U24) SaturatingMul(n U24) U24 {
	out, over := u.OverflowingMul(n)
	if over {
		return MaxU24
	}
	return out
}

func (u U24) WrappingAdd(n U24) U24 { out, _ := u.OverflowingAdd(n); return out }

func (u U24) WrappingSub(n U24) U24 { out, _ := u.OverflowingSub(n); return out }

func (u U24) WrappingMul(n U24) U24 { out, _ := u.OverflowingMul(n); return out }

// DivRem performs truncated division, reporting ErrDivZero on a zero
// divisor.
func (u U24) DivRem(n U24) (q, r U24, err error) {
	if n == 0 {
		return 0, 0, ErrDivZero
	}
	return u / n, u % n, nil
}
