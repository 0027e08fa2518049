package num

// RandSource is the subset of rand.Source64 the random constructors need.
type RandSource interface {
	Uint64() uint64
}

func RandU256(source RandSource) (out U256) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	return out
}

func RandU512(source RandSource) (out U512) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	return out
}

func RandU1024(source RandSource) (out U1024) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	return out
}

func RandI256(source RandSource) I256 { return RandU256(source).AsI256() }

func RandI512(source RandSource) I512 { return RandU512(source).AsI512() }

func RandI1024(source RandSource) I1024 { return RandU1024(source).AsI1024() }

// RandU256Of returns a random U256 occupying at most bits bits, so fuzz
// runs exercise carry paths near the low words as often as the high ones.
func RandU256Of(source RandSource, bits uint) U256 {
	return RandU256(source).Rsh(u256Bits - bits)
}

func RandU512Of(source RandSource, bits uint) U512 {
	return RandU512(source).Rsh(u512Bits - bits)
}

func RandU1024Of(source RandSource, bits uint) U1024 {
	return RandU1024(source).Rsh(u1024Bits - bits)
}
