// Package gen produces reproducible input slices for tests, benchmarks and
// the sortbench tool.
package gen

import (
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// Element lists the element types generators produce.
type Element interface {
	float32 | float64 | int32 | int64
}

// Distribution selects the shape of a generated slice.
type Distribution int

const (
	// Random draws independent values: normal for floats, uniform over the
	// whole range for integers.
	Random Distribution = iota
	// Sorted is Random in ascending order.
	Sorted
	// Reversed is Random in descending order.
	Reversed
	// AllEqual repeats a single drawn value.
	AllEqual
	// QuasiSorted is Sorted with about 1% of positions swapped at random.
	QuasiSorted
	// FewUnique draws every element from fewUniqueValues distinct values.
	FewUnique
	// WithNaN is Random with every nanStride-th element replaced by a NaN
	// of alternating sign. Integer slices get plain Random.
	WithNaN
)

const (
	fewUniqueValues = 8
	nanStride       = 16
)

var distributionNames = map[Distribution]string{
	Random:      "random",
	Sorted:      "sorted",
	Reversed:    "reversed",
	AllEqual:    "all-equal",
	QuasiSorted: "quasi-sorted",
	FewUnique:   "few-unique",
	WithNaN:     "with-nan",
}

func (d Distribution) String() string {
	if name, ok := distributionNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDistribution returns the distribution with the given name.
func ParseDistribution(name string) (Distribution, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for d, n := range distributionNames {
		if n == norm {
			return d, nil
		}
	}
	return 0, errors.Errorf("unknown distribution %q (want one of %s)", name, strings.Join(DistributionNames(), ", "))
}

// Distributions returns every distribution in declaration order.
func Distributions() []Distribution {
	all := lo.Keys(distributionNames)
	slices.Sort(all)
	return all
}

// DistributionNames returns the names of Distributions, in the same order.
func DistributionNames() []string {
	return lo.Map(Distributions(), func(d Distribution, _ int) string { return d.String() })
}

// Slice returns n elements of distribution d. The same seed always yields
// the same slice.
func Slice[T Element](d Distribution, n int, seed uint64) []T {
	r := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	switch d {
	case Sorted, Reversed, QuasiSorted:
		fill(r, out)
		slices.SortFunc(out, compareNoNaN[T])
		if d == Reversed {
			slices.Reverse(out)
		}
		if d == QuasiSorted && n > 1 {
			for range max(1, n/100) {
				i, j := r.Intn(n), r.Intn(n)
				out[i], out[j] = out[j], out[i]
			}
		}
	case AllEqual:
		if n > 0 {
			v := draw[T](r)
			for i := range out {
				out[i] = v
			}
		}
	case FewUnique:
		var pool [fewUniqueValues]T
		fill(r, pool[:])
		for i := range out {
			out[i] = pool[r.Intn(fewUniqueValues)]
		}
	case WithNaN:
		fill(r, out)
		for i := nanStride - 1; i < n; i += nanStride {
			if nan, ok := nanOf[T](i/nanStride%2 == 1); ok {
				out[i] = nan
			}
		}
	default:
		fill(r, out)
	}
	return out
}

func fill[T Element](r *rand.Rand, out []T) {
	for i := range out {
		out[i] = draw[T](r)
	}
}

func draw[T Element](r *rand.Rand) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(r.NormFloat64() * 1e3)).(T)
	case float64:
		return any(r.NormFloat64() * 1e6).(T)
	case int32:
		return any(int32(r.Uint32())).(T)
	default:
		return any(int64(r.Uint64())).(T)
	}
}

// nanOf returns a quiet NaN with the requested sign bit, or false for
// integer types.
func nanOf[T Element](negative bool) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float32:
		b := uint32(0x7fc00000)
		if negative {
			b |= 1 << 31
		}
		return any(math.Float32frombits(b)).(T), true
	case float64:
		b := uint64(0x7ff8000000000000)
		if negative {
			b |= 1 << 63
		}
		return any(math.Float64frombits(b)).(T), true
	}
	return zero, false
}

// compareNoNaN orders generated values, none of which is NaN at this point.
func compareNoNaN[T Element](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
