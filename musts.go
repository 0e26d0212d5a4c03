package fastfloat

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding floats.
func MustParse[T constraints.Float](s string) T {
	f, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return f
}
