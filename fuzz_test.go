package num

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var bigOne = new(big.Int).SetInt64(1)

// signedWrapBig reduces exact into the two's complement range implied by
// wrap == 2**bits and max == 2**(bits-1) - 1.
func signedWrapBig(exact, wrap, max *big.Int) *big.Int {
	w := new(big.Int).Mod(exact, wrap)
	if w.Cmp(max) > 0 {
		w.Sub(w, wrap)
	}
	return w
}

func TestFuzzU256(t *testing.T) {
	wrap := new(big.Int).Lsh(bigOne, u256Bits)
	for _, op := range fuzzOpsActive {
		op := op
		t.Run(string(op), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for k := 0; k < fuzzIterations; k++ {
				a := RandU256Of(globalRand, uint(globalRand.Intn(u256Bits))+1)
				b := RandU256Of(globalRand, uint(globalRand.Intn(u256Bits))+1)
				ba, bb := a.AsBigInt(), b.AsBigInt()

				switch op {
				case fuzzOpAdd:
					exact := new(big.Int).Add(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingAdd(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s + %s", a, b)
					tt.MustEqual(exact.Cmp(wrapped) != 0, over, "%s + %s overflow flag", a, b)

				case fuzzOpSub:
					exact := new(big.Int).Sub(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingSub(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s - %s", a, b)
					tt.MustEqual(exact.Sign() < 0, over, "%s - %s overflow flag", a, b)

				case fuzzOpMul:
					exact := new(big.Int).Mul(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingMul(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s * %s", a, b)
					tt.MustEqual(exact.Cmp(wrapped) != 0, over, "%s * %s overflow flag", a, b)

				case fuzzOpDivRem:
					if b.IsZero() {
						continue
					}
					q, r := a.DivRem(b)
					bq, br := new(big.Int).QuoRem(ba, bb, new(big.Int))
					tt.MustEqual(bq.String(), q.AsBigInt().String(), "%s / %s", a, b)
					tt.MustEqual(br.String(), r.AsBigInt().String(), "%s %% %s", a, b)

				case fuzzOpLsh:
					by := uint(globalRand.Intn(u256Bits + 10))
					exact := new(big.Int).Lsh(ba, by)
					exact.Mod(exact, wrap)
					tt.MustEqual(exact.String(), a.Lsh(by).AsBigInt().String(), "%s << %d", a, by)

				case fuzzOpRsh:
					by := uint(globalRand.Intn(u256Bits + 10))
					exact := new(big.Int).Rsh(ba, by)
					tt.MustEqual(exact.String(), a.Rsh(by).AsBigInt().String(), "%s >> %d", a, by)

				case fuzzOpCmp:
					tt.MustEqual(ba.Cmp(bb), a.Cmp(b), "cmp %s %s", a, b)

				case fuzzOpBits:
					tt.MustEqual(ba.BitLen(), a.BitsRequired(), "bits %s", a)

				case fuzzOpBytes:
					be := a.BEBytes()
					fromBE, err := U256FromBEBytes(be[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromBE.Equal(a), "be bytes %s", a)
					le := a.LEBytes()
					fromLE, err := U256FromLEBytes(le[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromLE.Equal(a), "le bytes %s", a)
				}
			}
		})
	}
}

func TestFuzzI256(t *testing.T) {
	wrap := new(big.Int).Lsh(bigOne, i256Bits)
	max, min := MaxI256.AsBigInt(), MinI256.AsBigInt()
	randI256 := func() I256 {
		v := RandU256Of(globalRand, uint(globalRand.Intn(u256Bits))+1).AsI256()
		if globalRand.Intn(2) == 0 {
			v = v.WrappingNeg()
		}
		return v
	}
	for _, op := range fuzzOpsActive {
		op := op
		t.Run(string(op), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for k := 0; k < fuzzIterations; k++ {
				a, b := randI256(), randI256()
				ba, bb := a.AsBigInt(), b.AsBigInt()

				switch op {
				case fuzzOpAdd:
					exact := new(big.Int).Add(ba, bb)
					res, over := a.OverflowingAdd(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s + %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s + %s overflow flag", a, b)

				case fuzzOpSub:
					exact := new(big.Int).Sub(ba, bb)
					res, over := a.OverflowingSub(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s - %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s - %s overflow flag", a, b)

				case fuzzOpMul:
					exact := new(big.Int).Mul(ba, bb)
					res, over := a.OverflowingMul(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s * %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s * %s overflow flag", a, b)

				case fuzzOpDivRem:
					if b.IsZero() || (a.Equal(MinI256) && b.Equal(I256From64(-1))) {
						continue
					}
					q, r := a.DivRem(b)
					bq, br := new(big.Int).QuoRem(ba, bb, new(big.Int))
					tt.MustEqual(bq.String(), q.AsBigInt().String(), "%s / %s", a, b)
					tt.MustEqual(br.String(), r.AsBigInt().String(), "%s %% %s", a, b)

				case fuzzOpRsh:
					by := uint(globalRand.Intn(i256Bits + 10))
					exact := new(big.Int).Rsh(ba, by)
					tt.MustEqual(exact.String(), a.Rsh(by).AsBigInt().String(), "%s >> %d", a, by)

				case fuzzOpCmp:
					tt.MustEqual(ba.Cmp(bb), a.Cmp(b), "cmp %s %s", a, b)

				case fuzzOpBits:
					exp := ba.BitLen()
					if ba.Sign() < 0 {
						exp = new(big.Int).Not(ba).BitLen() + 1
					}
					tt.MustEqual(exp, a.BitsRequired(), "bits %s", a)

				case fuzzOpBytes:
					be := a.BEBytes()
					fromBE, err := I256FromBEBytes(be[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromBE.Equal(a), "be bytes %s", a)
				}
			}
		})
	}
}

func TestFuzzU512(t *testing.T) {
	wrap := new(big.Int).Lsh(bigOne, u512Bits)
	for _, op := range fuzzOpsActive {
		op := op
		t.Run(string(op), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for k := 0; k < fuzzIterations; k++ {
				a := RandU512Of(globalRand, uint(globalRand.Intn(u512Bits))+1)
				b := RandU512Of(globalRand, uint(globalRand.Intn(u512Bits))+1)
				ba, bb := a.AsBigInt(), b.AsBigInt()

				switch op {
				case fuzzOpAdd:
					exact := new(big.Int).Add(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingAdd(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s + %s", a, b)
					tt.MustEqual(exact.Cmp(wrapped) != 0, over, "%s + %s overflow flag", a, b)

				case fuzzOpSub:
					exact := new(big.Int).Sub(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingSub(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s - %s", a, b)
					tt.MustEqual(exact.Sign() < 0, over, "%s - %s overflow flag", a, b)

				case fuzzOpMul:
					exact := new(big.Int).Mul(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingMul(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s * %s", a, b)
					tt.MustEqual(exact.Cmp(wrapped) != 0, over, "%s * %s overflow flag", a, b)

				case fuzzOpDivRem:
					if b.IsZero() {
						continue
					}
					q, r := a.DivRem(b)
					bq, br := new(big.Int).QuoRem(ba, bb, new(big.Int))
					tt.MustEqual(bq.String(), q.AsBigInt().String(), "%s / %s", a, b)
					tt.MustEqual(br.String(), r.AsBigInt().String(), "%s %% %s", a, b)

				case fuzzOpLsh:
					by := uint(globalRand.Intn(u512Bits + 10))
					exact := new(big.Int).Lsh(ba, by)
					exact.Mod(exact, wrap)
					tt.MustEqual(exact.String(), a.Lsh(by).AsBigInt().String(), "%s << %d", a, by)

				case fuzzOpRsh:
					by := uint(globalRand.Intn(u512Bits + 10))
					exact := new(big.Int).Rsh(ba, by)
					tt.MustEqual(exact.String(), a.Rsh(by).AsBigInt().String(), "%s >> %d", a, by)

				case fuzzOpCmp:
					tt.MustEqual(ba.Cmp(bb), a.Cmp(b), "cmp %s %s", a, b)

				case fuzzOpBits:
					tt.MustEqual(ba.BitLen(), a.BitsRequired(), "bits %s", a)

				case fuzzOpBytes:
					be := a.BEBytes()
					fromBE, err := U512FromBEBytes(be[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromBE.Equal(a), "be bytes %s", a)
					le := a.LEBytes()
					fromLE, err := U512FromLEBytes(le[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromLE.Equal(a), "le bytes %s", a)
				}
			}
		})
	}
}

func TestFuzzI512(t *testing.T) {
	wrap := new(big.Int).Lsh(bigOne, i512Bits)
	max, min := MaxI512.AsBigInt(), MinI512.AsBigInt()
	randI512 := func() I512 {
		v := RandU512Of(globalRand, uint(globalRand.Intn(u512Bits))+1).AsI512()
		if globalRand.Intn(2) == 0 {
			v = v.WrappingNeg()
		}
		return v
	}
	for _, op := range fuzzOpsActive {
		op := op
		t.Run(string(op), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for k := 0; k < fuzzIterations; k++ {
				a, b := randI512(), randI512()
				ba, bb := a.AsBigInt(), b.AsBigInt()

				switch op {
				case fuzzOpAdd:
					exact := new(big.Int).Add(ba, bb)
					res, over := a.OverflowingAdd(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s + %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s + %s overflow flag", a, b)

				case fuzzOpSub:
					exact := new(big.Int).Sub(ba, bb)
					res, over := a.OverflowingSub(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s - %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s - %s overflow flag", a, b)

				case fuzzOpMul:
					exact := new(big.Int).Mul(ba, bb)
					res, over := a.OverflowingMul(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s * %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s * %s overflow flag", a, b)

				case fuzzOpDivRem:
					if b.IsZero() || (a.Equal(MinI512) && b.Equal(I512From64(-1))) {
						continue
					}
					q, r := a.DivRem(b)
					bq, br := new(big.Int).QuoRem(ba, bb, new(big.Int))
					tt.MustEqual(bq.String(), q.AsBigInt().String(), "%s / %s", a, b)
					tt.MustEqual(br.String(), r.AsBigInt().String(), "%s %% %s", a, b)

				case fuzzOpRsh:
					by := uint(globalRand.Intn(i512Bits + 10))
					exact := new(big.Int).Rsh(ba, by)
					tt.MustEqual(exact.String(), a.Rsh(by).AsBigInt().String(), "%s >> %d", a, by)

				case fuzzOpCmp:
					tt.MustEqual(ba.Cmp(bb), a.Cmp(b), "cmp %s %s", a, b)

				case fuzzOpBits:
					exp := ba.BitLen()
					if ba.Sign() < 0 {
						exp = new(big.Int).Not(ba).BitLen() + 1
					}
					tt.MustEqual(exp, a.BitsRequired(), "bits %s", a)

				case fuzzOpBytes:
					be := a.BEBytes()
					fromBE, err := I512FromBEBytes(be[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromBE.Equal(a), "be bytes %s", a)
				}
			}
		})
	}
}

func TestFuzzU1024(t *testing.T) {
	wrap := new(big.Int).Lsh(bigOne, u1024Bits)
	for _, op := range fuzzOpsActive {
		op := op
		t.Run(string(op), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for k := 0; k < fuzzIterations; k++ {
				a := RandU1024Of(globalRand, uint(globalRand.Intn(u1024Bits))+1)
				b := RandU1024Of(globalRand, uint(globalRand.Intn(u1024Bits))+1)
				ba, bb := a.AsBigInt(), b.AsBigInt()

				switch op {
				case fuzzOpAdd:
					exact := new(big.Int).Add(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingAdd(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s + %s", a, b)
					tt.MustEqual(exact.Cmp(wrapped) != 0, over, "%s + %s overflow flag", a, b)

				case fuzzOpSub:
					exact := new(big.Int).Sub(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingSub(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s - %s", a, b)
					tt.MustEqual(exact.Sign() < 0, over, "%s - %s overflow flag", a, b)

				case fuzzOpMul:
					exact := new(big.Int).Mul(ba, bb)
					wrapped := new(big.Int).Mod(exact, wrap)
					res, over := a.OverflowingMul(b)
					tt.MustEqual(wrapped.String(), res.AsBigInt().String(), "%s * %s", a, b)
					tt.MustEqual(exact.Cmp(wrapped) != 0, over, "%s * %s overflow flag", a, b)

				case fuzzOpDivRem:
					if b.IsZero() {
						continue
					}
					q, r := a.DivRem(b)
					bq, br := new(big.Int).QuoRem(ba, bb, new(big.Int))
					tt.MustEqual(bq.String(), q.AsBigInt().String(), "%s / %s", a, b)
					tt.MustEqual(br.String(), r.AsBigInt().String(), "%s %% %s", a, b)

				case fuzzOpLsh:
					by := uint(globalRand.Intn(u1024Bits + 10))
					exact := new(big.Int).Lsh(ba, by)
					exact.Mod(exact, wrap)
					tt.MustEqual(exact.String(), a.Lsh(by).AsBigInt().String(), "%s << %d", a, by)

				case fuzzOpRsh:
					by := uint(globalRand.Intn(u1024Bits + 10))
					exact := new(big.Int).Rsh(ba, by)
					tt.MustEqual(exact.String(), a.Rsh(by).AsBigInt().String(), "%s >> %d", a, by)

				case fuzzOpCmp:
					tt.MustEqual(ba.Cmp(bb), a.Cmp(b), "cmp %s %s", a, b)

				case fuzzOpBits:
					tt.MustEqual(ba.BitLen(), a.BitsRequired(), "bits %s", a)

				case fuzzOpBytes:
					be := a.BEBytes()
					fromBE, err := U1024FromBEBytes(be[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromBE.Equal(a), "be bytes %s", a)
					le := a.LEBytes()
					fromLE, err := U1024FromLEBytes(le[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromLE.Equal(a), "le bytes %s", a)
				}
			}
		})
	}
}

func TestFuzzI1024(t *testing.T) {
	wrap := new(big.Int).Lsh(bigOne, i1024Bits)
	max, min := MaxI1024.AsBigInt(), MinI1024.AsBigInt()
	randI1024 := func() I1024 {
		v := RandU1024Of(globalRand, uint(globalRand.Intn(u1024Bits))+1).AsI1024()
		if globalRand.Intn(2) == 0 {
			v = v.WrappingNeg()
		}
		return v
	}
	for _, op := range fuzzOpsActive {
		op := op
		t.Run(string(op), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for k := 0; k < fuzzIterations; k++ {
				a, b := randI1024(), randI1024()
				ba, bb := a.AsBigInt(), b.AsBigInt()

				switch op {
				case fuzzOpAdd:
					exact := new(big.Int).Add(ba, bb)
					res, over := a.OverflowingAdd(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s + %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s + %s overflow flag", a, b)

				case fuzzOpSub:
					exact := new(big.Int).Sub(ba, bb)
					res, over := a.OverflowingSub(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s - %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s - %s overflow flag", a, b)

				case fuzzOpMul:
					exact := new(big.Int).Mul(ba, bb)
					res, over := a.OverflowingMul(b)
					tt.MustEqual(signedWrapBig(exact, wrap, max).String(), res.AsBigInt().String(), "%s * %s", a, b)
					tt.MustEqual(exact.Cmp(max) > 0 || exact.Cmp(min) < 0, over, "%s * %s overflow flag", a, b)

				case fuzzOpDivRem:
					if b.IsZero() || (a.Equal(MinI1024) && b.Equal(I1024From64(-1))) {
						continue
					}
					q, r := a.DivRem(b)
					bq, br := new(big.Int).QuoRem(ba, bb, new(big.Int))
					tt.MustEqual(bq.String(), q.AsBigInt().String(), "%s / %s", a, b)
					tt.MustEqual(br.String(), r.AsBigInt().String(), "%s %% %s", a, b)

				case fuzzOpRsh:
					by := uint(globalRand.Intn(i1024Bits + 10))
					exact := new(big.Int).Rsh(ba, by)
					tt.MustEqual(exact.String(), a.Rsh(by).AsBigInt().String(), "%s >> %d", a, by)

				case fuzzOpCmp:
					tt.MustEqual(ba.Cmp(bb), a.Cmp(b), "cmp %s %s", a, b)

				case fuzzOpBits:
					exp := ba.BitLen()
					if ba.Sign() < 0 {
						exp = new(big.Int).Not(ba).BitLen() + 1
					}
					tt.MustEqual(exp, a.BitsRequired(), "bits %s", a)

				case fuzzOpBytes:
					be := a.BEBytes()
					fromBE, err := I1024FromBEBytes(be[:])
					tt.MustAssert(err == nil)
					tt.MustAssert(fromBE.Equal(a), "be bytes %s", a)
				}
			}
		})
	}
}
