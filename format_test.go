package fastfloat

import (
	"math"
	"testing"
)

func TestFormatOf(t *testing.T) {
	if got := formatOf[float32](); got != &binary32 {
		t.Errorf("formatOf[float32]() = %+v, want binary32", got)
	}
	if got := formatOf[float64](); got != &binary64 {
		t.Errorf("formatOf[float64]() = %+v, want binary64", got)
	}
}

func TestBinaryFormat_constants(t *testing.T) {
	tests := []struct {
		f          *binaryFormat
		wantBits   uint
		wantDigits float64
	}{
		{&binary32, 32, 1e7},
		{&binary64, 64, 1e15},
	}
	for _, tt := range tests {
		f := tt.f
		expBits := f.signIndex - f.mantBits
		if f.signIndex+1 != tt.wantBits {
			t.Errorf("signIndex = %v, want %v", f.signIndex, tt.wantBits-1)
		}
		if got := int32(1)<<expBits - 1; got != f.infinitePower {
			t.Errorf("infinitePower = %v, want %v", f.infinitePower, got)
		}
		if got := int32(1)<<(expBits-1) - 1; got != f.bias {
			t.Errorf("bias = %v, want %v", f.bias, got)
		}
		if f.minExponent != -f.bias {
			t.Errorf("minExponent = %v, want %v", f.minExponent, -f.bias)
		}

		// Integers with maxDigits digits are exact.
		if got := pow10[f.maxDigits]; float64(got) != tt.wantDigits || got > 1<<(f.mantBits+1) {
			t.Errorf("10^%v is not exact in %v bits", f.maxDigits, f.mantBits+1)
		}

		// The largest exact power of ten has an odd part below 2^(mantBits+1).
		five := uint64(1)
		for i := int64(0); i < f.maxExactPow10; i++ {
			five *= 5
		}
		if five >= 1<<(f.mantBits+1) || five*5 < 1<<(f.mantBits+1) {
			t.Errorf("5^%v is not the largest power of five below 2^%v", f.maxExactPow10, f.mantBits+1)
		}
	}
}

func TestBinaryFormat_assemble(t *testing.T) {
	tests := []struct {
		f    *binaryFormat
		am   adjustedMantissa
		neg  bool
		want uint64
	}{
		{&binary64, adjustedMantissa{}, false, 0},
		{&binary64, adjustedMantissa{}, true, 0x8000000000000000},
		{&binary64, adjustedMantissa{exp2: 1023}, false, math.Float64bits(1)},
		{&binary64, adjustedMantissa{mant: 1 << 51, exp2: 1023}, true, math.Float64bits(-1.5)},
		{&binary64, adjustedMantissa{mant: 1<<52 - 1, exp2: 0x7FE}, false, math.Float64bits(math.MaxFloat64)},
		{&binary64, adjustedMantissa{mant: 1}, false, math.Float64bits(math.SmallestNonzeroFloat64)},
		{&binary64, binary64.infinity(), true, math.Float64bits(math.Inf(-1))},
		{&binary64, binary64.nan(), false, 0x7ff8000000000000},
		{&binary32, adjustedMantissa{}, true, 0x80000000},
		{&binary32, adjustedMantissa{exp2: 127}, false, uint64(math.Float32bits(1))},
		{&binary32, adjustedMantissa{mant: 1<<23 - 1, exp2: 0xFE}, false, uint64(math.Float32bits(math.MaxFloat32))},
		{&binary32, adjustedMantissa{mant: 1}, false, uint64(math.Float32bits(math.SmallestNonzeroFloat32))},
		{&binary32, binary32.infinity(), false, uint64(math.Float32bits(float32(math.Inf(1))))},
		{&binary32, binary32.nan(), true, 0xffc00000},
	}
	for _, tt := range tests {
		got := tt.f.assemble(tt.am, tt.neg)
		if got != tt.want {
			t.Errorf("assemble(%+v, %v) = %#x, want %#x", tt.am, tt.neg, got, tt.want)
		}
	}
}

func TestFromBits(t *testing.T) {
	words := []uint64{
		0,
		0x8000000000000000,
		0x3ff0000000000000,
		0x7ff0000000000000,
		0x7ff8000000000000,
		0xfff8000000000000,
		0x7ff0000000000001,
		0x000fffffffffffff,
	}
	for _, w := range words {
		if got := toBits(fromBits[float64](w)); got != w {
			t.Errorf("toBits(fromBits[float64](%#x)) = %#x", w, got)
		}
		w32 := w >> 32
		if got := toBits(fromBits[float32](w32)); got != w32 {
			t.Errorf("toBits(fromBits[float32](%#x)) = %#x", w32, got)
		}
	}
}

func TestAdjustedMantissa_valid(t *testing.T) {
	if am := (adjustedMantissa{exp2: invalidExp2}); am.valid() {
		t.Errorf("%+v.valid() = true", am)
	}
	if am := binary64.infinity(); !am.valid() {
		t.Errorf("%+v.valid() = false", am)
	}
}
