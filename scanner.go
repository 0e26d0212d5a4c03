package fastfloat

// text is a read-only span of bytes.
type text interface {
	~string | ~[]byte
}

// maxMantDigits is the number of decimal digits that always fit into uint64.
const maxMantDigits = 19

// maxExp10 caps the explicit exponent while it is being accumulated.
// Any literal with a larger exponent converts to zero or infinity.
const maxExp10 = 1_000_000_000_000_000

// parsedNumber is a decimal literal reduced to mant * 10^exp.
type parsedNumber struct {
	mant  uint64 // the first 19 significant digits
	exp   int64  // decimal exponent of the last digit in mant
	neg   bool   // indicates whether the literal is negative
	trunc bool   // indicates whether a non-zero digit did not fit into mant
	valid bool   // indicates whether a literal was found
	end   int    // index of the first unconsumed byte
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// parseNumber scans a decimal literal starting at s[pos].
// If no literal is found, the result is invalid and end equals pos.
//
// The number of digits after the 19th significant digit is accounted for
// in exp, so mant * 10^exp is exact unless trunc is set.
func parseNumber[S text](s S, pos int) parsedNumber {
	var (
		pn        parsedNumber
		width     int
		start     int
		sawdot    bool
		sawdigits bool
		nd        int // number of significant digits
		ndMant    int // number of significant digits in mant
		dp        int // position of the decimal point relative to the first significant digit
	)

	width = len(s)
	start = pos
	pn.end = start

	// Sign
	switch {
	case pos == width:
		return pn
	case s[pos] == '-':
		pn.neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Significand
	for ; pos < width; pos++ {
		c := s[pos]
		if c == '.' {
			if sawdot {
				break
			}
			sawdot = true
			dp = nd
			continue
		}
		if !isDigit(c) {
			break
		}
		sawdigits = true
		if c == '0' && nd == 0 { // leading zero
			dp--
			continue
		}
		nd++
		if ndMant < maxMantDigits {
			pn.mant = pn.mant*10 + uint64(c-'0')
			ndMant++
		} else if c != '0' {
			pn.trunc = true
		}
	}
	if !sawdigits {
		return pn
	}
	if !sawdot {
		dp = nd
	}
	pn.end = pos

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		eneg := false
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		var exp int64
		hasexp := false
		for ; pos < width && isDigit(s[pos]); pos++ {
			hasexp = true
			if exp < maxExp10 {
				exp = exp*10 + int64(s[pos]-'0')
			}
		}
		// A dangling exponent marker is not part of the literal.
		if hasexp {
			if eneg {
				exp = -exp
			}
			pn.exp = exp
			pn.end = pos
		}
	}

	if pn.mant != 0 {
		pn.exp += int64(dp - ndMant)
	} else {
		pn.exp = 0
	}
	pn.valid = true
	return pn
}
