package fastfloat

// lower(c) is a lower-case letter if and only if
// c is either that lower-case letter or the equivalent upper-case letter.
// Note that lower of non-letters can produce other non-letters.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

// hasPrefixFold reports whether s[pos:] begins with prefix, ignoring case.
// The prefix must be all lower-case letters.
func hasPrefixFold[S text](s S, pos int, prefix string) bool {
	if len(s)-pos < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[pos+i]) != prefix[i] {
			return false
		}
	}
	return true
}

// parseInfNaN recognizes "inf", "infinity", and "nan" with an optional sign
// at s[pos:], ignoring case.
// It returns the bit pattern and the index of the first unconsumed byte.
// Unsigned "nan" is always a positive NaN.
func parseInfNaN[S text](f *binaryFormat, s S, pos int) (word uint64, end int, ok bool) {
	var (
		am  adjustedMantissa
		neg bool
	)

	// Sign
	end = pos
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		neg = s[end] == '-'
		end++
	}

	switch {
	case hasPrefixFold(s, end, "nan"):
		am = f.nan()
		end += 3
	case hasPrefixFold(s, end, "infinity"):
		am = f.infinity()
		end += 8
	case hasPrefixFold(s, end, "inf"):
		am = f.infinity()
		end += 3
	default:
		return 0, pos, false
	}
	return f.assemble(am, neg), end, true
}
