package fastfloat

// parseLongMantissa converts the decimal literal s[pos:end] to an adjusted
// mantissa using big.Int arithmetic.
// The literal must have been accepted by parseNumber.
// All significant digits are taken into account, so the result is always
// correctly rounded.
func parseLongMantissa[S text](f *binaryFormat, s S, pos, end int) adjustedMantissa {
	coef := getBint()
	defer putBint(coef)
	exp, prec := scanDigits(coef, s, pos, end)
	return roundBig(f, coef, exp, prec)
}

// scanDigits sets coef to the significant digits of the literal s[pos:end]
// without trailing zeros and returns the decimal exponent of the last digit
// and the number of digits in coef.
func scanDigits[S text](coef *bint, s S, pos, end int) (exp int64, prec int) {
	var (
		chunk  uint64 // digits not yet added to coef
		nc     int    // number of digits in chunk
		zeros  int    // trailing zeros not yet added to chunk
		scale  int64  // number of digits after the decimal point
		sawdot bool
	)

	coef.setUint64(0)

	// Sign
	if pos < end && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}

	// Significand
	for ; pos < end; pos++ {
		c := s[pos]
		if c == '.' {
			sawdot = true
			continue
		}
		if !isDigit(c) {
			break
		}
		if sawdot {
			scale++
		}
		if c == '0' {
			if prec > 0 {
				zeros++
			}
			continue
		}
		if zeros > 0 {
			coef.fsa(coef, nc, chunk)
			coef.lsh(coef, zeros)
			prec += zeros
			chunk, nc, zeros = 0, 0, 0
		}
		if nc == maxMantDigits {
			coef.fsa(coef, nc, chunk)
			chunk, nc = 0, 0
		}
		chunk = chunk*10 + uint64(c-'0')
		nc++
		prec++
	}
	if nc > 0 {
		coef.fsa(coef, nc, chunk)
	}

	// Exponent
	if pos < end {
		pos++ // 'e' or 'E'
		eneg := false
		switch s[pos] {
		case '-':
			eneg = true
			pos++
		case '+':
			pos++
		}
		for ; pos < end; pos++ {
			if exp < maxExp10 {
				exp = exp*10 + int64(s[pos]-'0')
			}
		}
		if eneg {
			exp = -exp
		}
	}

	if prec == 0 {
		return 0, 0
	}
	return exp + int64(zeros) - scale, prec
}

// roundBig calculates coef * 10^exp rounded to the format f using
// "half to even" rule.
// The argument prec is the number of decimal digits in coef.
func roundBig(f *binaryFormat, coef *bint, exp int64, prec int) adjustedMantissa {
	// Special cases
	switch {
	case coef.sign() == 0:
		return adjustedMantissa{}
	case exp+int64(prec)-1 > f.largestPowerOfTen: // coef * 10^exp >= 10^(largestPowerOfTen + 1)
		return f.infinity()
	case exp+int64(prec) < f.smallestPowerOfTen: // coef * 10^exp < 10^smallestPowerOfTen
		return adjustedMantissa{}
	}

	// General case
	num := getBint()
	defer putBint(num)
	den := getBint()
	defer putBint(den)
	if exp >= 0 {
		num.lsh(coef, int(exp))
		den.setUint64(1)
	} else {
		num.setBint(coef)
		den.setUint64(1)
		den.lsh(den, int(-exp))
	}

	// Binary exponent e of the unit in the last place, so that
	// 2^p <= num / den / 2^e < 2^(p+1), where p = f.mantBits.
	e := num.bitLen() - den.bitLen()
	if !scaledLess(num, den, e) {
		e++
	}
	e -= int(f.mantBits) + 1
	if emin := 1 - int(f.bias) - int(f.mantBits); e < emin {
		e = emin
	}

	// Division
	quo := getBint()
	defer putBint(quo)
	if e >= 0 {
		den.shl(den, uint(e))
	} else {
		num.shl(num, uint(-e))
	}
	quo.rshHalfEven(num, den)

	// Rounding may have added a bit.
	mant := quo.uint64()
	if mant == 2<<f.mantBits {
		mant >>= 1
		e++
	}

	// Subnormal
	if mant < 1<<f.mantBits {
		return adjustedMantissa{mant: mant}
	}

	exp2 := e + int(f.mantBits) + int(f.bias)
	if exp2 >= int(f.infinitePower) {
		return f.infinity()
	}
	return adjustedMantissa{mant: mant &^ (1 << f.mantBits), exp2: int32(exp2)}
}

// scaledLess returns true if num < den * 2^e.
func scaledLess(num, den *bint, e int) bool {
	x := getBint()
	defer putBint(x)
	if e >= 0 {
		x.shl(den, uint(e))
		return num.cmp(x) < 0
	}
	x.shl(num, uint(-e))
	return x.cmp(den) < 0
}
