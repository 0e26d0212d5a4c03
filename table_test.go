package fastfloat

import (
	"math/big"
	"testing"
)

// wantPowerOfFive128 computes the table entry for 5^q from scratch.
func wantPowerOfFive128(q int) (hi, lo uint64) {
	one := big.NewInt(1)
	z := new(big.Int)
	if q >= 0 {
		z.Exp(big.NewInt(5), big.NewInt(int64(q)), nil)
		if n := z.BitLen(); n > 128 {
			z.Rsh(z, uint(n-128))
		} else {
			z.Lsh(z, uint(128-n))
		}
	} else {
		d := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-q)), nil)
		b := d.BitLen()
		if q >= -27 {
			z.Lsh(one, uint(b+127))
		} else {
			z.Lsh(one, uint(2*b+128))
		}
		z.Quo(z, d)
		z.Add(z, one)
		for z.BitLen() > 128 {
			z.Rsh(z, 1)
		}
	}
	lo = new(big.Int).And(z, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi = new(big.Int).Rsh(z, 64).Uint64()
	return hi, lo
}

func TestPowerOfFive128(t *testing.T) {
	for q := smallestPowerOfFive; q <= largestPowerOfFive; q++ {
		got := powerOfFive128[q-smallestPowerOfFive]
		wantHi, wantLo := wantPowerOfFive128(q)
		if got.H != wantHi || got.L != wantLo {
			t.Errorf("powerOfFive128[5^%v] = {%#x, %#x}, want {%#x, %#x}", q, got.H, got.L, wantHi, wantLo)
		}
	}
}

func TestPower(t *testing.T) {
	five := big.NewInt(5)
	for q := int32(smallestPowerOfFive); q <= largestPowerOfFive; q++ {
		// floor(q * log2(5)) is BitLen(5^q) - 1 for q >= 0
		// and -BitLen(5^-q) for q < 0, since 5^q is never a power of two.
		var want int32
		if q >= 0 {
			p := new(big.Int).Exp(five, big.NewInt(int64(q)), nil)
			want = int32(p.BitLen()-1) + q + 63
		} else {
			p := new(big.Int).Exp(five, big.NewInt(int64(-q)), nil)
			want = -int32(p.BitLen()) + q + 63
		}
		if got := power(q); got != want {
			t.Errorf("power(%v) = %v, want %v", q, got, want)
		}
	}
}
