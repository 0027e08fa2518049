package ppcfloat

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseError describes an input Parse could not read.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ppcfloat: cannot parse %q: %s", e.Input, e.Reason)
}

// Parse reads a decimal ("1.5", "6.02e23") or hex ("0x1.8p3") float,
// rounding once to 106-bit precision with ties to even.
func Parse(s string) (Float, error) {
	if s == "" {
		return Float{}, &ParseError{Input: s, Reason: "empty string"}
	}
	switch strings.ToLower(s) {
	case "nan", "+nan", "-nan":
		return NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(false), nil
	case "-inf", "-infinity":
		return Inf(true), nil
	}
	v, _, err := big.ParseFloat(s, 0, 106, big.ToNearestEven)
	if err != nil {
		return Float{}, &ParseError{Input: s, Reason: err.Error()}
	}
	if v.IsInf() {
		return Inf(v.Signbit()), nil
	}
	if v.Sign() == 0 {
		f, _ := v.Float64()
		return Float{hi: f}, nil
	}
	if new(big.Float).Abs(v).Cmp(bigLargest106) > 0 {
		return Inf(v.Signbit()), nil
	}
	if new(big.Float).Abs(v).Cmp(bigSmallestNorm106) < 0 {
		// re-read wide and round once on the denormal grid
		w, _, werr := big.ParseFloat(s, 0, 1200, big.ToNearestEven)
		if werr == nil {
			g, _ := roundOnGrid(w, -1074, RoundNearestTiesToEven)
			if g.Sign() == 0 {
				return zeroF(v.Signbit()), nil
			}
			return splitBig(g), nil
		}
	}
	return splitBig(v), nil
}

// String renders the value in decimal with up to 36 significant digits,
// enough to round-trip any canonical pair through Parse.
func (f Float) String() string {
	switch f.Category() {
	case CategoryNaN:
		return "NaN"
	case CategoryInfinity:
		if f.IsNegative() {
			return "-Inf"
		}
		return "+Inf"
	case CategoryZero:
		if f.IsNegative() {
			return "-0"
		}
		return "0"
	}
	d := exactDecimal(f.hi)
	if f.lo != 0 && !math.IsNaN(f.lo) && !math.IsInf(f.lo, 0) {
		d = d.Add(exactDecimal(f.lo))
	}
	return formatSig(d, 36)
}

// exactDecimal is the exact decimal value of a finite float64. Powers of
// two have terminating decimal expansions, so no rounding happens here.
func exactDecimal(v float64) decimal.Decimal {
	fr, exp := math.Frexp(v)
	mant := int64(fr * (1 << 53))
	e := exp - 53
	if e >= 0 {
		m := new(big.Int).Lsh(big.NewInt(mant), uint(e))
		return decimal.NewFromBigInt(m, 0)
	}
	// mant * 2^e == (mant * 5^-e) * 10^e
	m := new(big.Int).Mul(big.NewInt(mant),
		new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil))
	return decimal.NewFromBigInt(m, int32(e))
}

// formatSig rounds d to sig significant digits and renders it, switching
// to scientific notation outside a comfortable plain-decimal range.
func formatSig(d decimal.Decimal, sig int32) string {
	if d.IsZero() {
		return "0"
	}
	coef := new(big.Int).Abs(d.Coefficient())
	msd := int32(len(coef.String())) + d.Exponent()
	r := d.Round(sig - msd)

	full := new(big.Int).Abs(r.Coefficient()).String()
	trimmed := strings.TrimRight(full, "0")
	if trimmed == "" {
		return "0"
	}
	expTen := int(r.Exponent()) + len(full) - len(trimmed)
	lead := len(trimmed) + expTen - 1
	if lead >= -4 && lead <= 20 {
		return r.String()
	}

	var b strings.Builder
	if r.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteByte(trimmed[0])
	if len(trimmed) > 1 {
		b.WriteByte('.')
		b.WriteString(trimmed[1:])
	}
	fmt.Fprintf(&b, "e%+03d", lead)
	return b.String()
}
