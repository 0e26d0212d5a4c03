package fastfloat

import (
	"math/big"
	"strconv"
	"strings"
	"testing"
)

func TestPow10(t *testing.T) {
	for i, got := range pow10 {
		want, err := strconv.ParseUint("1"+strings.Repeat("0", i), 10, 64)
		if err != nil {
			t.Fatalf("strconv.ParseUint failed: %v", err)
		}
		if got != want {
			t.Errorf("pow10[%v] = %v, want %v", i, got, want)
		}
	}
	for i, got := range bpow10 {
		want, _ := new(big.Int).SetString("1"+strings.Repeat("0", i), 10)
		if got.cmp((*bint)(want)) != 0 {
			t.Errorf("bpow10[%v] = %v, want %v", i, (*big.Int)(got), want)
		}
	}
}

func TestBint_lsh(t *testing.T) {
	tests := []struct {
		x     uint64
		shift int
		want  string
	}{
		{0, 0, "0"},
		{0, 50, "0"},
		{1, 0, "1"},
		{7, 3, "7000"},
		{123, 38, "123" + strings.Repeat("0", 38)},
		{123, 39, "123" + strings.Repeat("0", 39)},
		{9, 100, "9" + strings.Repeat("0", 100)},
	}
	for _, tt := range tests {
		x := getBint()
		x.setUint64(tt.x)
		x.lsh(x, tt.shift)
		got := (*big.Int)(x).String()
		putBint(x)
		if got != tt.want {
			t.Errorf("%v * 10^%v = %v, want %v", tt.x, tt.shift, got, tt.want)
		}
	}
}

func TestBint_fsa(t *testing.T) {
	tests := []struct {
		x     uint64
		shift int
		f     uint64
		want  string
	}{
		{0, 0, 0, "0"},
		{0, 3, 5, "5"},
		{1, 1, 2, "12"},
		{12345, 19, 9999999999999999999, "123459999999999999999999"},
	}
	for _, tt := range tests {
		z := getBint()
		z.setUint64(tt.x)
		z.fsa(z, tt.shift, tt.f)
		got := (*big.Int)(z).String()
		putBint(z)
		if got != tt.want {
			t.Errorf("%v * 10^%v + %v = %v, want %v", tt.x, tt.shift, tt.f, got, tt.want)
		}
	}
}

func TestBint_rshHalfEven(t *testing.T) {
	tests := []struct {
		x, y, want uint64
	}{
		{0, 1, 0},
		{10, 5, 2},
		{11, 4, 3}, // 2.75
		{9, 4, 2},  // 2.25
		{10, 4, 2}, // 2.5
		{14, 4, 4}, // 3.5
		{1, 2, 0},  // 0.5
		{3, 2, 2},  // 1.5
		{5, 3, 2},  // 1.67
	}
	for _, tt := range tests {
		x, y, z := getBint(), getBint(), getBint()
		x.setUint64(tt.x)
		y.setUint64(tt.y)
		z.rshHalfEven(x, y)
		got := z.uint64()
		putBint(x)
		putBint(y)
		putBint(z)
		if got != tt.want {
			t.Errorf("round(%v / %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScanDigits(t *testing.T) {
	tests := []struct {
		s        string
		wantCoef string
		wantExp  int64
		wantPrec int
	}{
		{"0", "0", 0, 0},
		{"-0.000e5", "0", 0, 0},
		{"1", "1", 0, 1},
		{"+1.5", "15", -1, 2},
		{"100", "1", 2, 1},
		{"0.00100", "1", -3, 1},
		{"1001", "1001", 0, 4},
		{"10.01e3", "1001", 1, 4},
		{"1.5e-3", "15", -4, 2},
		{"12345678901234567890123", "12345678901234567890123", 0, 23},
		{"1" + strings.Repeat("0", 40) + "1", "1" + strings.Repeat("0", 40) + "1", 0, 42},
		{"1" + strings.Repeat("0", 40), "1", 40, 1},
		{"." + strings.Repeat("0", 40) + "7", "7", -41, 1},
	}
	for _, tt := range tests {
		coef := getBint()
		gotExp, gotPrec := scanDigits(coef, tt.s, 0, len(tt.s))
		gotCoef := (*big.Int)(coef).String()
		putBint(coef)
		if gotCoef != tt.wantCoef || gotExp != tt.wantExp || gotPrec != tt.wantPrec {
			t.Errorf("scanDigits(%q) = %v, %v, %v, want %v, %v, %v", tt.s, gotCoef, gotExp, gotPrec, tt.wantCoef, tt.wantExp, tt.wantPrec)
		}
	}
}
