package fastfloat

import (
	"math"
	"os"
	"strconv"
	"testing"

	"github.com/sugawarayuuta/sonnet"
)

// vector is a conversion with known results for both formats.
type vector struct {
	Name    string `json:"name"`
	In      string `json:"in"`
	N       int    `json:"n"`
	Float32 string `json:"float32"`
	Float64 string `json:"float64"`
}

func readVectors(t *testing.T, name string) []vector {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("os.ReadFile(%q) failed: %v", name, err)
	}
	var vectors []vector
	if err := sonnet.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("sonnet.Unmarshal(%q) failed: %v", name, err)
	}
	if len(vectors) == 0 {
		t.Fatalf("%q contains no vectors", name)
	}
	return vectors
}

func TestParsePrefix_vectors(t *testing.T) {
	for _, v := range readVectors(t, "testdata/vectors.json") {
		t.Run(v.Name, func(t *testing.T) {
			want64, err := strconv.ParseUint(v.Float64, 0, 64)
			if err != nil {
				t.Fatalf("strconv.ParseUint(%q) failed: %v", v.Float64, err)
			}
			want32, err := strconv.ParseUint(v.Float32, 0, 32)
			if err != nil {
				t.Fatalf("strconv.ParseUint(%q) failed: %v", v.Float32, err)
			}

			got64, n, err := ParsePrefix[float64](v.In)
			if err != nil {
				t.Fatalf("ParsePrefix[float64](%q) failed: %v", v.In, err)
			}
			if math.Float64bits(got64) != want64 || n != v.N {
				t.Errorf("ParsePrefix[float64](%q) = %#016x, %v, want %#016x, %v", v.In, math.Float64bits(got64), n, want64, v.N)
			}

			got32, n, err := ParsePrefixBytes[float32]([]byte(v.In))
			if err != nil {
				t.Fatalf("ParsePrefixBytes[float32](%q) failed: %v", v.In, err)
			}
			if uint64(math.Float32bits(got32)) != want32 || n != v.N {
				t.Errorf("ParsePrefixBytes[float32](%q) = %#08x, %v, want %#08x, %v", v.In, math.Float32bits(got32), n, want32, v.N)
			}
		})
	}
}
