package fastfloat

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// binaryFormat describes an IEEE 754 binary interchange format.
// The two instances, binary32 and binary64, are never modified.
type binaryFormat struct {
	mantBits  uint  // number of explicit significand bits
	bias      int32 // exponent bias
	signIndex uint  // position of the sign bit
	maxDigits int   // maximum number of decimal digits of an integer that is always exact

	maxExactPow10      int64 // largest power of ten that is exact
	minExponent        int32 // -bias, the binary exponent of the smallest normal value minus 1
	infinitePower      int32 // biased exponent of infinities and NaNs
	minRoundToEven     int64 // smallest decimal exponent for which a tie is possible
	maxRoundToEven     int64 // largest decimal exponent for which a tie is possible
	smallestPowerOfTen int64 // w * 10^q rounds to zero for any 64-bit w if q is smaller
	largestPowerOfTen  int64 // w * 10^q rounds to infinity for any non-zero w if q is larger
}

var (
	binary32 = binaryFormat{
		mantBits:           23,
		bias:               127,
		signIndex:          31,
		maxDigits:          7,
		maxExactPow10:      10,
		minExponent:        -127,
		infinitePower:      0xFF,
		minRoundToEven:     -17,
		maxRoundToEven:     10,
		smallestPowerOfTen: -65,
		largestPowerOfTen:  38,
	}
	binary64 = binaryFormat{
		mantBits:           52,
		bias:               1023,
		signIndex:          63,
		maxDigits:          15,
		maxExactPow10:      22,
		minExponent:        -1023,
		infinitePower:      0x7FF,
		minRoundToEven:     -4,
		maxRoundToEven:     23,
		smallestPowerOfTen: -342,
		largestPowerOfTen:  308,
	}
)

// formatOf returns the binary format of T.
func formatOf[T constraints.Float]() *binaryFormat {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return &binary32
	}
	return &binary64
}

// adjustedMantissa is a binary significand and a biased binary exponent
// ready to be packed into a bit pattern.
// For normal values mant holds only the explicit bits.
type adjustedMantissa struct {
	mant uint64
	exp2 int32
}

// invalidExp2 marks an adjustedMantissa that the fast path could not
// compute with certainty.
const invalidExp2 = -1

func (am adjustedMantissa) valid() bool {
	return am.exp2 >= 0
}

// infinity returns the adjusted mantissa of an infinity.
func (f *binaryFormat) infinity() adjustedMantissa {
	return adjustedMantissa{exp2: f.infinitePower}
}

// nan returns the adjusted mantissa of the canonical quiet NaN.
func (f *binaryFormat) nan() adjustedMantissa {
	return adjustedMantissa{mant: 1 << (f.mantBits - 1), exp2: f.infinitePower}
}

// assemble packs the sign, the biased exponent, and the explicit
// significand bits into a bit pattern.
func (f *binaryFormat) assemble(am adjustedMantissa, neg bool) uint64 {
	word := am.mant | uint64(am.exp2)<<f.mantBits
	if neg {
		word |= 1 << f.signIndex
	}
	return word
}

// fromBits reinterprets the low bits of word as a value of type T.
// The bit pattern is preserved exactly, NaN payloads and signs included.
func fromBits[T constraints.Float](word uint64) T {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return T(math.Float32frombits(uint32(word)))
	}
	return T(math.Float64frombits(word))
}

// toBits is the inverse of fromBits.
func toBits[T constraints.Float](f T) uint64 {
	if unsafe.Sizeof(f) == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}
