package fastfloat

import "math"

// Powers of ten that are exact in the respective format.
var (
	float64pow10 = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
	float32pow10 = [...]float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}
)

// exactBits converts pn to the bit pattern of the format f using at most
// one floating-point multiplication or division with exact operands,
// so the result is correctly rounded by the hardware.
// Three common cases:
//
//	value is an exact integer
//	value is an exact integer * exact power of ten
//	value is an exact integer / exact power of ten
//
// It returns false if the operands are not exact.
func exactBits(f *binaryFormat, pn *parsedNumber) (word uint64, ok bool) {
	if pn.trunc || pn.mant>>f.mantBits != 0 {
		return 0, false
	}
	mant, exp := pn.mant, pn.exp
	switch {
	case exp < -f.maxExactPow10:
		return 0, false
	case exp > f.maxExactPow10+int64(f.maxDigits):
		return 0, false
	case exp > f.maxExactPow10:
		// If exponent is big but number of digits is not,
		// can move a few zeros into the integer part.
		k := int(exp - f.maxExactPow10)
		if mant > pow10[f.maxDigits-k] {
			return 0, false
		}
		mant *= pow10[k]
		exp = f.maxExactPow10
	}

	if f == &binary32 {
		v := float32(mant)
		if exp >= 0 {
			v *= float32pow10[exp]
		} else {
			v /= float32pow10[-exp]
		}
		word = uint64(math.Float32bits(v))
	} else {
		v := float64(mant)
		if exp >= 0 {
			v *= float64pow10[exp]
		} else {
			v /= float64pow10[-exp]
		}
		word = math.Float64bits(v)
	}

	if pn.neg {
		word |= 1 << f.signIndex
	}
	return word, true
}
