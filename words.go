package num

import "math/bits"

const (
	maxUint64 = 1<<64 - 1
	signBit64 = 1 << 63
	minInt64  = -1 << 63
)

// Limb kernels shared by every fixed width. All slices are little-endian
// uint64 words and, unless noted, the same length. dst may alias a.

func addInto(dst, a, b []uint64) (carry uint64) {
	for i := range a {
		dst[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

func subInto(dst, a, b []uint64) (borrow uint64) {
	for i := range a {
		dst[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return borrow
}

// mulInto writes the full 2n-word product of a and b into ext, which must
// be twice the length of a and b.
func mulInto(ext, a, b []uint64) {
	for i := range ext {
		ext[i] = 0
	}
	for j := range b {
		if b[j] == 0 {
			continue
		}
		var carry uint64
		for i := range a {
			// a[i]*b[j] + ext[i+j] + carry <= 2^128 - 1, so the carry
			// additions into hi cannot wrap.
			hi, lo := bits.Mul64(a[i], b[j])
			lo, c := bits.Add64(lo, ext[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			ext[i+j] = lo
			carry = hi
		}
		ext[j+len(a)] = carry
	}
}

func negInto(dst, a []uint64) {
	var carry uint64 = 1
	for i := range a {
		dst[i], carry = bits.Add64(^a[i], 0, carry)
	}
}

func notInto(dst, a []uint64) {
	for i := range a {
		dst[i] = ^a[i]
	}
}

func cmpWords(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func isZeroWords(a []uint64) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// shlInto shifts a left by n bits, filling with zeros. Safe for dst == a.
func shlInto(dst, a []uint64, n uint) {
	nw := len(a)
	if n >= uint(nw)*64 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	ws, bs := int(n/64), n%64
	for i := nw - 1; i >= 0; i-- {
		var v uint64
		if i-ws >= 0 {
			v = a[i-ws] << bs
			if bs > 0 && i-ws-1 >= 0 {
				v |= a[i-ws-1] >> (64 - bs)
			}
		}
		dst[i] = v
	}
}

// shrInto shifts a right by n bits. fill is 0 for a logical shift or all
// ones for an arithmetic shift of a negative value. Safe for dst == a.
func shrInto(dst, a []uint64, n uint, fill uint64) {
	nw := len(a)
	if n >= uint(nw)*64 {
		for i := range dst {
			dst[i] = fill
		}
		return
	}
	ws, bs := int(n/64), n%64
	for i := 0; i < nw; i++ {
		src := i + ws
		var v uint64
		if src < nw {
			v = a[src] >> bs
			next := fill
			if src+1 < nw {
				next = a[src+1]
			}
			if bs > 0 {
				v |= next << (64 - bs)
			}
		} else {
			v = fill
		}
		dst[i] = v
	}
}

// bitLenWords returns the position of the highest set bit plus one, or 0.
func bitLenWords(a []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i*64 + 64 - bits.LeadingZeros64(a[i])
		}
	}
	return 0
}

// quoremInto performs truncated unsigned division of u by d via bitwise
// long division, writing the quotient into q and the remainder into r.
// sc is scratch for the shifted divisor. d must be non-zero.
func quoremInto(q, r, sc, u, d []uint64) {
	for i := range q {
		q[i] = 0
	}
	copy(r, u)
	ub, db := bitLenWords(u), bitLenWords(d)
	if ub < db {
		return
	}
	shift := ub - db
	shlInto(sc, d, uint(shift))
	for {
		if cmpWords(r, sc) >= 0 {
			subInto(r, r, sc)
			q[shift/64] |= 1 << (uint(shift) % 64)
		}
		if shift == 0 {
			break
		}
		shift--
		shrInto(sc, sc, 1, 0)
	}
}

const hexDigits = "0123456789abcdef"

// hexPut64 writes v as 16 lowercase hex digits into dst.
func hexPut64(dst []byte, v uint64) {
	for i := 15; i >= 0; i-- {
		dst[i] = hexDigits[v&0xf]
		v >>= 4
	}
}
