package fastfloat

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument is returned when the input is neither a decimal
// nor a special string.
var ErrInvalidArgument = errors.New("invalid argument")

// Parse converts a string to the nearest value of type T.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22E-9
//	-Infinity
//	nan
//
// See the package documentation for the formal grammar.
// Leading and trailing ASCII whitespace is ignored.
//
// Parse returns error if the string, apart from surrounding whitespace,
// is not a valid decimal or special string.
// Values outside the range of T are not an error: they are converted to
// an infinity or a zero with the sign of the input.
func Parse[T constraints.Float](s string) (T, error) {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	f, n, err := ParsePrefix[T](s[:end])
	if err != nil {
		return 0, err
	}
	if n != end {
		return 0, fmt.Errorf("invalid character %q: %w", s[n], ErrInvalidArgument)
	}
	return f, nil
}

// ParseFloat is similar to [strconv.ParseFloat], but it never returns
// a range error.
// If bitSize is 32, the result is rounded to float32 and then converted
// to float64 without changing its value.
// Otherwise the result is rounded to float64.
//
// [strconv.ParseFloat]: https://pkg.go.dev/strconv#ParseFloat
func ParseFloat(s string, bitSize int) (float64, error) {
	if bitSize == 32 {
		f, err := Parse[float32](s)
		return float64(f), err
	}
	return Parse[float64](s)
}

// ParsePrefix converts the longest prefix of s that forms a decimal or
// a special string to the nearest value of type T.
// It returns the value and the number of bytes consumed, including
// leading ASCII whitespace.
// Bytes after the prefix are not examined, so trailing characters are
// not an error; compare the number of consumed bytes with len(s) to
// detect them.
//
// An exponent marker that is not followed by digits is not consumed:
// "1e" and "1e+" are parsed as "1".
//
// If no prefix can be parsed, ParsePrefix returns 0 consumed bytes and
// an error wrapping [ErrInvalidArgument].
func ParsePrefix[T constraints.Float](s string) (T, int, error) {
	word, n, err := fromChars(formatOf[T](), s)
	if err != nil {
		return 0, 0, err
	}
	return fromBits[T](word), n, nil
}

// ParsePrefixBytes is like [ParsePrefix] but reads from a byte slice.
// It does not allocate.
func ParsePrefixBytes[T constraints.Float](b []byte) (T, int, error) {
	word, n, err := fromChars(formatOf[T](), b)
	if err != nil {
		return 0, 0, err
	}
	return fromBits[T](word), n, nil
}

func isSpace(c byte) bool {
	return c == ' ' || ('\t' <= c && c <= '\r')
}

// fromChars converts the longest valid prefix of s to the bit pattern of
// the format f.
func fromChars[S text](f *binaryFormat, s S) (word uint64, n int, err error) {
	pos := 0
	width := len(s)

	// Whitespace
	for pos < width && isSpace(s[pos]) {
		pos++
	}
	if pos == width {
		return 0, 0, fmt.Errorf("empty input: %w", ErrInvalidArgument)
	}

	// Decimal
	pn := parseNumber(s, pos)
	if !pn.valid {
		bits, end, ok := parseInfNaN(f, s, pos)
		if !ok {
			return 0, 0, syntaxError(s, pos)
		}
		return bits, end, nil
	}

	// Conversion
	if bits, ok := exactBits(f, &pn); ok {
		return bits, pn.end, nil
	}
	am := eiselLemire(f, &pn)
	if !am.valid() {
		am = parseLongMantissa(f, s, pos, pn.end)
	}

	return f.assemble(am, pn.neg), pn.end, nil
}

// syntaxError describes why no literal starts at s[pos].
func syntaxError[S text](s S, pos int) error {
	if s[pos] == '-' || s[pos] == '+' {
		pos++
	}
	if pos < len(s) && s[pos] == '.' {
		pos++
	}
	if pos == len(s) {
		return fmt.Errorf("no digits: %w", ErrInvalidArgument)
	}
	return fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidArgument)
}
