package fastfloat

import (
	"math/big"
	"sync"
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = [...]*bint{
	newBintFromPow10(0),
	newBintFromPow10(1),
	newBintFromPow10(2),
	newBintFromPow10(3),
	newBintFromPow10(4),
	newBintFromPow10(5),
	newBintFromPow10(6),
	newBintFromPow10(7),
	newBintFromPow10(8),
	newBintFromPow10(9),
	newBintFromPow10(10),
	newBintFromPow10(11),
	newBintFromPow10(12),
	newBintFromPow10(13),
	newBintFromPow10(14),
	newBintFromPow10(15),
	newBintFromPow10(16),
	newBintFromPow10(17),
	newBintFromPow10(18),
	newBintFromPow10(19),
	newBintFromPow10(20),
	newBintFromPow10(21),
	newBintFromPow10(22),
	newBintFromPow10(23),
	newBintFromPow10(24),
	newBintFromPow10(25),
	newBintFromPow10(26),
	newBintFromPow10(27),
	newBintFromPow10(28),
	newBintFromPow10(29),
	newBintFromPow10(30),
	newBintFromPow10(31),
	newBintFromPow10(32),
	newBintFromPow10(33),
	newBintFromPow10(34),
	newBintFromPow10(35),
	newBintFromPow10(36),
	newBintFromPow10(37),
	newBintFromPow10(38),
}

// newBintFromPow10 creates a *big.Int equal to 10^power.
func newBintFromPow10(power int) *bint {
	z := (*bint)(new(big.Int))
	z.pow10(power)
	return z
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

func (z *bint) setUint64(x uint64) {
	(*big.Int)(z).SetUint64(x)
}

// uint64 converts *big.Int to uint64.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) uint64() uint64 {
	return (*big.Int)(z).Uint64()
}

// bitLen returns the length of z in bits.
// bitLen assumes that 0 has no bits.
func (z *bint) bitLen() int {
	return (*big.Int)(z).BitLen()
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	y := bpow10[0]
	z.add(x, y)
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// shl (Shift Left) calculates z = x * 2^shift.
func (z *bint) shl(x *bint, shift uint) {
	(*big.Int)(z).Lsh((*big.Int)(x), shift)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	z.exp(x, y)
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// fsa (Fused Shift and Addition) calculates z = x * 10^shift + f.
func (z *bint) fsa(x *bint, shift int, f uint64) {
	y := getBint()
	defer putBint(y)
	y.setUint64(f)
	z.lsh(x, shift)
	z.add(z, y)
}

// rshHalfEven (Right Shift) calculates z = round(x / y) and
// rounds result using "half to even" rule.
func (z *bint) rshHalfEven(x, y *bint) {
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	r.dbl(r) // r = r * 2
	switch y.cmp(r) {
	case -1:
		z.inc(z) // z = z + 1
	case 0:
		// half-to-even
		if z.isOdd() {
			z.inc(z) // z = z + 1
		}
	}
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
