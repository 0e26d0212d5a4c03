/*
Package fastfloat implements fast and correctly rounded conversion of decimal
strings to IEEE 754 binary floating-point numbers.
It is specifically designed for systems that parse large volumes of numeric
text, such as data loaders, serializers, and log or CSV ingestion pipelines.
Numeric results are bit-for-bit identical to [strconv.ParseFloat].

# Representation

A decimal string is converted in three stages:

  - Scanning: the string is validated and reduced to a sign, a 64-bit
    significand holding the first 19 significant digits, and a decimal
    exponent.
  - Conversion: the significand and the exponent are turned into a binary
    significand and a binary exponent.
  - Assembly: the sign, the biased exponent, and the explicit significand
    bits are packed into the bit pattern of the target format.

The following binary formats are supported:

	| Type    | Format   | Significand Bits | Exponent Bias | Sign Bit | Exact Digits |
	| ------- | -------- | ---------------- | ------------- | -------- | ------------ |
	| float32 | binary32 | 23 + 1           | 127           | 31       | 7            |
	| float64 | binary64 | 52 + 1           | 1023          | 63       | 15           |

The format is selected by the type parameter of [Parse], [ParsePrefix],
and [MustParse].

# Syntax

The accepted syntax is described by the following formal EBNF grammar:

	sign           ::= '+' | '-'
	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
	exponent       ::= ('e' | 'E') [sign] digits
	numeric-string ::= [sign] significand [exponent]
	special-string ::= [sign] ('inf' | 'infinity' | 'nan')

Special strings are matched without regard to case.
Leading ASCII whitespace (space, '\t', '\n', '\v', '\f', '\r') is skipped.
Hexadecimal floating-point literals, underscores, and non-ASCII digits are
not supported.

# Conversion

Each conversion is carried out in up to three steps:

 1. If the significand and the power of ten are both exactly representable
    in the target format, the result is computed with a single
    floating-point multiplication or division.

 2. Otherwise, the conversion is performed using 128-bit multiplication by
    a precomputed approximation of a power of five.
    If the result is guaranteed to be correctly rounded, it is immediately
    returned.
    Otherwise, the conversion proceeds to step 3.

 3. The conversion is repeated with unlimited precision using [big.Int]
    arithmetic.
    This step always produces the correctly rounded result.

Steps 1 and 2 avoid heap allocations and resolve almost all inputs.
Step 3 is used when the string has more than 19 significant digits and some
of the digits after the 19th are not zero, or when step 2 cannot certify
its own result.

# Rounding

The result is the one that would be obtained by computing the exact
mathematical value of the decimal string with infinite precision and then
rounding it to the target format using half-to-even rounding.

# Errors

All functions, except for [MustParse], are panic-free and pure.
They are safe for concurrent use by multiple goroutines.
Errors are returned in the following cases:

  - Invalid Argument.
    The input is empty, contains no digits, or is neither a decimal nor
    a special string.
    Such errors wrap [ErrInvalidArgument].

Errors are not returned in the following cases:

  - Overflow.
    Values too large for the target format are converted to [Infinity]
    with the sign of the input.

  - Underflow.
    Values too small for the target format are converted to [Subnormal numbers]
    or to [negative zeros] and positive zeros.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[Subnormal numbers]: https://en.wikipedia.org/wiki/Subnormal_number
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
[big.Int]: https://pkg.go.dev/math/big#Int
[strconv.ParseFloat]: https://pkg.go.dev/strconv#ParseFloat
*/
package fastfloat
