/*
Package num provides fixed-width integers beyond 64 bits: unsigned U256,
U512 and U1024, their signed two's complement counterparts I256, I512 and
I1024, and small bit-sized helpers U1 through U7 and U24.

All of the wide types are value types stored as little-endian 64-bit
words; operations return new values. Arithmetic comes in four explicit
flavours so overflow is always a visible decision at the call site:

	OverflowingAdd(n) (v, overflowed) // wrapped value plus flag
	CheckedAdd(n) (v, ok)             // ok == false on overflow
	SaturatingAdd(n) v                // clamps to Max/Min
	WrappingAdd(n) v                  // modulo 2**bits

Division is truncated and always paired with the remainder:

	DivRem(by) (q, r)                 // panics with ErrDivZero
	CheckedDivRem(by) (q, r, err)     // reports a DivError instead

The wide types can be created from and converted to big-endian or
little-endian bytes, big.Int, and little-endian word arrays:

	U256From64(v uint64) U256
	U256FromWords(w [4]uint64) U256
	U256FromBigInt(v *big.Int) (out U256, inRange bool)
	U256FromBEBytes(b []byte) (out U256, err error)
	U256FromLEBytes(b []byte) (out U256, err error)

String renders the full zero-padded hex pattern with an "0x" prefix, which
keeps the sign bit and word layout visible; use fmt verbs ("%d", "%x") for
numeric formatting. MarshalText and UnmarshalText exchange the unprefixed
fixed-width hex form, which also gives JSON marshalling through
encoding/json.

The sub-package ppcfloat builds its 128-bit float interchange format on
U256.
*/
package num
