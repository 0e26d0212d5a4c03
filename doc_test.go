package fastfloat_test

import (
	"errors"
	"fmt"

	"github.com/govalues/fastfloat"
)

// sum adds up whitespace-separated numbers.
func sum(s string) (float64, error) {
	var total float64
	for len(s) > 0 {
		f, n, err := fastfloat.ParsePrefix[float64](s)
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", s, err)
		}
		total += f
		s = s[n:]
	}
	return total, nil
}

func Example_sum() {
	fmt.Println(sum("1.5 2.25\t-0.75\n1e2"))
	fmt.Println(sum("1.5 2.25 x"))
	// Output:
	// 103 <nil>
	// 0 parsing " x": invalid character 'x': invalid argument
}

func ExampleParse() {
	fmt.Println(fastfloat.Parse[float64]("-1.23"))
	fmt.Println(fastfloat.Parse[float32]("0.1"))
	fmt.Println(fastfloat.Parse[float64]("  6.02214076e23\n"))
	// Output:
	// -1.23 <nil>
	// 0.1 <nil>
	// 6.02214076e+23 <nil>
}

func ExampleParse_specials() {
	fmt.Println(fastfloat.Parse[float64]("-Infinity"))
	fmt.Println(fastfloat.Parse[float64]("nan"))
	fmt.Println(fastfloat.Parse[float32]("1e39"))
	fmt.Println(fastfloat.Parse[float64]("1e-400"))
	// Output:
	// -Inf <nil>
	// NaN <nil>
	// +Inf <nil>
	// 0 <nil>
}

func ExampleParse_errors() {
	_, err := fastfloat.Parse[float64]("1.5x")
	fmt.Println(err)
	fmt.Println(errors.Is(err, fastfloat.ErrInvalidArgument))
	_, err = fastfloat.Parse[float64]("")
	fmt.Println(err)
	_, err = fastfloat.Parse[float64]("-.")
	fmt.Println(err)
	// Output:
	// invalid character 'x': invalid argument
	// true
	// empty input: invalid argument
	// no digits: invalid argument
}

func ExampleParseFloat() {
	fmt.Println(fastfloat.ParseFloat("0.1", 64))
	fmt.Println(fastfloat.ParseFloat("0.1", 32))
	// Output:
	// 0.1 <nil>
	// 0.10000000149011612 <nil>
}

func ExampleParsePrefix() {
	fmt.Println(fastfloat.ParsePrefix[float64]("1.5e3xyz"))
	fmt.Println(fastfloat.ParsePrefix[float64]("1e"))
	fmt.Println(fastfloat.ParsePrefix[float64]("infinit"))
	// Output:
	// 1500 5 <nil>
	// 1 1 <nil>
	// +Inf 3 <nil>
}

func ExampleParsePrefixBytes() {
	fmt.Println(fastfloat.ParsePrefixBytes[float32]([]byte("42 apples")))
	// Output: 42 2 <nil>
}

func ExampleMustParse() {
	fmt.Println(fastfloat.MustParse[float64]("-2.5e-3"))
	// Output: -0.0025
}
