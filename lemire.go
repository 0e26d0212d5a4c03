package fastfloat

import (
	"math"
	"math/bits"

	"github.com/shogo82148/int128"
)

// power returns floor(q * log2(5)) + q + 63 for q in (-400, 350).
// For negative q the first term is -ceil(-q * log2(5)).
func power(q int32) int32 {
	return (((152170 + 65536) * q) >> 16) + 63
}

// productApproximation computes the high 128 bits of w * 5^q, where w is
// normalized so that its most significant bit is set.
// Only the top precision bits of the result are guaranteed to be exact,
// unless the low 64 bits of the result are all ones.
func productApproximation(q int64, w uint64, precision uint) int128.Uint128 {
	pow5 := powerOfFive128[q-smallestPowerOfFive]
	var z int128.Uint128
	z.H, z.L = bits.Mul64(w, pow5.H)
	mask := uint64(math.MaxUint64) >> precision
	if z.H&mask == mask {
		// The truncated bits of pow5 may carry into the top bits.
		hi, _ := bits.Mul64(w, pow5.L)
		z = z.Add(int128.Uint128{L: hi})
	}
	return z
}

// eiselLemire converts a scanned literal to an adjusted mantissa using
// the Eisel-Lemire algorithm.
// The result is invalid if the literal was truncated or if the rounding
// direction cannot be determined from the 128-bit approximation.
func eiselLemire(f *binaryFormat, pn *parsedNumber) adjustedMantissa {
	if pn.trunc {
		return adjustedMantissa{exp2: invalidExp2}
	}
	return computeFloat(f, pn.exp, pn.mant)
}

// computeFloat computes w * 10^q rounded to the format f.
func computeFloat(f *binaryFormat, q int64, w uint64) adjustedMantissa {
	var am adjustedMantissa

	// Special cases
	switch {
	case w == 0 || q < f.smallestPowerOfTen:
		return am
	case q > f.largestPowerOfTen:
		return f.infinity()
	}

	// Normalization
	lz := bits.LeadingZeros64(w)
	w <<= uint(lz)

	// One extra bit is needed for the implicit bit, one for rounding,
	// and one because the product may have a leading zero.
	product := productApproximation(q, w, f.mantBits+3)
	if product.L == math.MaxUint64 {
		// 5^q is exact for q in [0, 55] within 128 bits, and the reciprocal
		// of 5^-q for q in [-27, 0) is accurate enough.
		if q < -27 || q > 55 {
			return adjustedMantissa{exp2: invalidExp2}
		}
	}

	upper := int(product.H >> 63)
	shift := uint(upper + 64 - int(f.mantBits) - 3)
	am.mant = product.H >> shift
	am.exp2 = power(int32(q)) + int32(upper-lz) - f.minExponent

	// Subnormal
	if am.exp2 <= 0 {
		if -am.exp2+1 >= 64 {
			return adjustedMantissa{}
		}
		am.mant >>= uint(-am.exp2 + 1)
		// Ties are impossible here: 5^q cannot divide w for such small q.
		am.mant += am.mant & 1
		am.mant >>= 1
		// Rounding may have produced the smallest normal value.
		if am.mant < 1<<f.mantBits {
			am.exp2 = 0
		} else {
			am.mant &^= 1 << f.mantBits
			am.exp2 = 1
		}
		return am
	}

	// Half-to-even: the product is exact and all discarded bits are zero.
	if product.L <= 1 && q >= f.minRoundToEven && q <= f.maxRoundToEven && am.mant&3 == 1 {
		if am.mant<<shift == product.H {
			am.mant &^= 1
		}
	}

	am.mant += am.mant & 1
	am.mant >>= 1
	if am.mant >= 2<<f.mantBits {
		am.mant = 1 << f.mantBits
		am.exp2++
	}
	am.mant &^= 1 << f.mantBits

	// Overflow
	if am.exp2 >= f.infinitePower {
		return f.infinity()
	}
	return am
}
