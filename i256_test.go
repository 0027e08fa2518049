package num

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func i256s(s string) I256 {
	i, inRange := I256FromBigInt(bigs(s))
	if !inRange {
		panic(s)
	}
	return i
}

func TestI256From64(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(I256From64(0).IsZero())
	tt.MustEqual(1, I256From64(1).Sign())
	tt.MustEqual(-1, I256From64(-1).Sign())
	tt.MustEqual("-1", fmt.Sprintf("%d", I256From64(-1)))
	tt.MustAssert(I256From64(-1).Equal(I256{}.Not()))
	tt.MustEqual("-9223372036854775808", fmt.Sprintf("%d", I256From64(minInt64)))
}

func TestI256Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b I256
		cmp  int
	}{
		{i256s("0"), i256s("0"), 0},
		{i256s("1"), i256s("2"), -1},
		{i256s("-1"), i256s("1"), -1},
		{i256s("-2"), i256s("-1"), -1},
		{i256s("1"), i256s("-2"), 1},
		{MinI256, i256s("-1"), -1},
		{MaxI256, i256s("1"), 1},
		{MinI256, MaxI256, -1},
	} {
		t.Run(fmt.Sprintf("%d/%d cmp %d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.cmp < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.cmp > 0, tc.a.GreaterThan(tc.b))
		})
	}
}

func TestI256OverflowingAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  I256
		overflow bool
	}{
		{i256s("1"), i256s("2"), i256s("3"), false},
		{i256s("-1"), i256s("1"), i256s("0"), false},
		{i256s("-3"), i256s("2"), i256s("-1"), false},
		{MaxI256, i256s("1"), MinI256, true},
		{MinI256, i256s("-1"), MaxI256, true},
		{MaxI256, MinI256, i256s("-1"), false},
	} {
		t.Run(fmt.Sprintf("%d/%d+%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c, over := tc.a.OverflowingAdd(tc.b)
			tt.MustAssert(tc.c.Equal(c), "expected %d, got %d", tc.c, c)
			tt.MustEqual(tc.overflow, over)
		})
	}
}

func TestI256OverflowingSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  I256
		overflow bool
	}{
		{i256s("3"), i256s("2"), i256s("1"), false},
		{i256s("2"), i256s("3"), i256s("-1"), false},
		{MinI256, i256s("1"), MaxI256, true},
		{MaxI256, i256s("-1"), MinI256, true},
	} {
		t.Run(fmt.Sprintf("%d/%d-%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c, over := tc.a.OverflowingSub(tc.b)
			tt.MustAssert(tc.c.Equal(c), "expected %d, got %d", tc.c, c)
			tt.MustEqual(tc.overflow, over)
		})
	}
}

func TestI256OverflowingMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  I256
		overflow bool
	}{
		{i256s("3"), i256s("4"), i256s("12"), false},
		{i256s("-3"), i256s("4"), i256s("-12"), false},
		{i256s("-3"), i256s("-4"), i256s("12"), false},
		{MinI256, i256s("1"), MinI256, false},
		{MinI256, i256s("-1"), MinI256, true},
		{MaxI256, i256s("2"), i256s("-2"), true},
		{MinI256.Rsh(1), i256s("2"), MinI256, false},
	} {
		t.Run(fmt.Sprintf("%d/%d*%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c, over := tc.a.OverflowingMul(tc.b)
			tt.MustAssert(tc.c.Equal(c), "expected %d, got %d", tc.c, c)
			tt.MustEqual(tc.overflow, over)
		})
	}
}

func TestI256DivRem(t *testing.T) {
	for idx, tc := range []struct {
		a, b, q, r I256
	}{
		{i256s("7"), i256s("2"), i256s("3"), i256s("1")},
		{i256s("-7"), i256s("2"), i256s("-3"), i256s("-1")},
		{i256s("7"), i256s("-2"), i256s("-3"), i256s("1")},
		{i256s("-7"), i256s("-2"), i256s("3"), i256s("-1")},
		{MinI256, i256s("1"), MinI256, i256s("0")},
		{MinI256, MinI256, i256s("1"), i256s("0")},
		{MinI256, MaxI256, i256s("-1"), i256s("-1")},
	} {
		t.Run(fmt.Sprintf("%d/%d div %d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.a.DivRem(tc.b)
			tt.MustAssert(tc.q.Equal(q), "quotient: expected %d, got %d", tc.q, q)
			tt.MustAssert(tc.r.Equal(r), "remainder: expected %d, got %d", tc.r, r)
		})
	}
}

func TestI256DivRemErrors(t *testing.T) {
	tt := assert.WrapTB(t)

	_, _, err := i256s("1").CheckedDivRem(I256{})
	tt.MustEqual(ErrDivZero, err)

	_, _, err = MinI256.CheckedDivRem(i256s("-1"))
	tt.MustEqual(ErrDivOverflow, err)

	defer func() {
		tt.MustEqual(ErrDivOverflow, recover())
	}()
	MinI256.DivRem(i256s("-1"))
}

func TestI256NegAbs(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(i256s("1").Neg().Equal(i256s("-1")))
	tt.MustAssert(i256s("-1").Abs().Equal(i256s("1")))
	tt.MustAssert(i256s("0").Neg().IsZero())
	tt.MustAssert(MinI256.WrappingNeg().Equal(MinI256))
	tt.MustAssert(MaxI256.Neg().Equal(MinI256.WrappingAdd(i256s("1"))))

	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	MinI256.Neg()
}

func TestI256Rsh(t *testing.T) {
	for idx, tc := range []struct {
		v   I256
		by  uint
		out I256
	}{
		{i256s("-8"), 1, i256s("-4")},
		{i256s("-8"), 2, i256s("-2")},
		{i256s("-1"), 1, i256s("-1")},
		{i256s("-1"), 255, i256s("-1")},
		{i256s("-1"), 300, i256s("-1")},
		{i256s("8"), 2, i256s("2")},
		{i256s("-7"), 1, i256s("-4")},
		{MinI256, 255, i256s("-1")},
	} {
		t.Run(fmt.Sprintf("%d/%d rsh %d", idx, tc.v, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out := tc.v.Rsh(tc.by)
			tt.MustAssert(tc.out.Equal(out), "expected %d, got %d", tc.out, out)
		})
	}
}

func TestI256BitsRequired(t *testing.T) {
	for idx, tc := range []struct {
		v    I256
		bits int
	}{
		{i256s("0"), 0},
		{i256s("1"), 1},
		{i256s("-1"), 1},
		{i256s("-2"), 2},
		{i256s("255"), 8},
		{i256s("-255"), 9},
		{i256s("-256"), 9},
		{MinI256, 256},
		{MaxI256, 255},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.bits, tc.v.BitsRequired())
		})
	}
}

func TestI256Saturating(t *testing.T) {
	tt := assert.WrapTB(t)
	one := i256s("1")
	tt.MustAssert(MaxI256.SaturatingAdd(one).Equal(MaxI256))
	tt.MustAssert(MinI256.SaturatingSub(one).Equal(MinI256))
	tt.MustAssert(MinI256.SaturatingAdd(i256s("-1")).Equal(MinI256))
	tt.MustAssert(MaxI256.SaturatingMul(i256s("2")).Equal(MaxI256))
	tt.MustAssert(MaxI256.SaturatingMul(i256s("-2")).Equal(MinI256))
	tt.MustAssert(i256s("-2").SaturatingMul(i256s("3")).Equal(i256s("-6")))
}

func TestI256BigIntRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, s := range []string{
		"0", "1", "-1",
		"57896044618658097711785492504343953926634992332820282019728792003956564819967",  // MaxI256
		"-57896044618658097711785492504343953926634992332820282019728792003956564819968", // MinI256
		"-340282366920938463463374607431768211456",
	} {
		v := bigs(s)
		i, inRange := I256FromBigInt(v)
		tt.MustAssert(inRange, s)
		tt.MustEqual(s, i.AsBigInt().String())
	}

	_, inRange := I256FromBigInt(bigs("57896044618658097711785492504343953926634992332820282019728792003956564819968"))
	tt.MustAssert(!inRange)
	_, inRange = I256FromBigInt(bigs("-57896044618658097711785492504343953926634992332820282019728792003956564819969"))
	tt.MustAssert(!inRange)
}
