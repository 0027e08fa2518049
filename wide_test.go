package num

import (
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// Spot checks for the 512 and 1024 bit widths; the shared kernels get
// their real workout from the fuzz oracles.

func u512s(s string) U512 {
	u, inRange := U512FromBigInt(bigs(s))
	if !inRange {
		panic(s)
	}
	return u
}

func u1024s(s string) U1024 {
	u, inRange := U1024FromBigInt(bigs(s))
	if !inRange {
		panic(s)
	}
	return u
}

func TestU512CarryChain(t *testing.T) {
	tt := assert.WrapTB(t)

	out, over := MaxU512.OverflowingAdd(u512s("1"))
	tt.MustAssert(out.IsZero())
	tt.MustAssert(over)

	almost := MaxU512.WrappingSub(u512s("1"))
	out, over = almost.OverflowingAdd(u512s("1"))
	tt.MustAssert(out.Equal(MaxU512))
	tt.MustAssert(!over)
}

func TestU512MulDiv(t *testing.T) {
	tt := assert.WrapTB(t)

	pow100 := u512s("1" + strings.Repeat("0", 100))
	pow50 := u512s("1" + strings.Repeat("0", 50))
	q, r := pow100.DivRem(pow50)
	tt.MustAssert(q.Equal(pow50), "got %s", q)
	tt.MustAssert(r.IsZero())

	prod, over := pow50.OverflowingMul(pow50)
	tt.MustAssert(!over)
	tt.MustAssert(prod.Equal(pow100))

	p256 := U512From64(1).Lsh(256)
	sq, over := p256.OverflowingMul(p256)
	tt.MustAssert(over)
	tt.MustAssert(sq.IsZero())
}

func TestU512Text(t *testing.T) {
	tt := assert.WrapTB(t)

	u := u512s("1234567890123456789012345678901234567890")
	text, err := u.MarshalText()
	tt.MustAssert(err == nil)
	tt.MustEqual(128, len(text))

	var back U512
	tt.MustAssert(back.UnmarshalText(text) == nil)
	tt.MustAssert(u.Equal(back))
}

func TestU1024MulDiv(t *testing.T) {
	tt := assert.WrapTB(t)

	p1000 := U1024From64(1).Lsh(1000)
	p500 := U1024From64(1).Lsh(500)
	q, r := p1000.DivRem(p500)
	tt.MustAssert(q.Equal(p500))
	tt.MustAssert(r.IsZero())

	prod, over := p500.OverflowingMul(p500)
	tt.MustAssert(!over)
	tt.MustAssert(prod.Equal(p1000))

	tt.MustEqual(1001, p1000.BitsRequired())
	tt.MustEqual(1024, MaxU1024.BitsRequired())
}

func TestU1024BigIntRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	v := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 1024), bigOne)
	u, inRange := U1024FromBigInt(v)
	tt.MustAssert(inRange)
	tt.MustAssert(u.Equal(MaxU1024))
	tt.MustEqual(v.String(), u.AsBigInt().String())

	bts := u1024s("123456789").BEBytes()
	tt.MustEqual(128, len(bts[:]))
	back, err := U1024FromBEBytes(bts[:])
	tt.MustAssert(err == nil)
	tt.MustAssert(back.Equal(u1024s("123456789")))
}

func TestI512I1024Basics(t *testing.T) {
	tt := assert.WrapTB(t)

	a := I512From64(-5)
	b := I512From64(3)
	q, r := a.DivRem(b)
	tt.MustAssert(q.Equal(I512From64(-1)))
	tt.MustAssert(r.Equal(I512From64(-2)))

	out, over := MaxI512.OverflowingAdd(I512From64(1))
	tt.MustAssert(out.Equal(MinI512))
	tt.MustAssert(over)

	tt.MustAssert(I1024From64(-8).Rsh(2).Equal(I1024From64(-2)))
	tt.MustAssert(MinI1024.SaturatingSub(I1024From64(1)).Equal(MinI1024))
	tt.MustEqual(-1, I1024From64(-100).Sign())
	tt.MustEqual("-100", I1024From64(-100).AsBigInt().String())
}
