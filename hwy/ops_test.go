package hwy

import (
	"math"
	"testing"
)

func allLanes[T Lanes]() uint64 {
	return uint64(1)<<uint(MaxLanes[T]()) - 1
}

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	v := Load(data)

	// Lane i holds data[i], so exactly lanes 0..i-1 are below data[i].
	for i := range MaxLanes[float32]() {
		got := BitsFromMask(GreaterThan(Set(data[i]), v))
		if want := uint64(1)<<uint(i) - 1; got != want {
			t.Errorf("Load: lanes below %v: got %b, want %b", data[i], got, want)
		}
	}

	short := Load([]int64{7})
	if got := BitsFromMask(GreaterEqual(short, Set[int64](7))); got != 1 {
		t.Errorf("Load(short): got bits %b, want 1", got)
	}
}

func TestSet(t *testing.T) {
	v := Set[int32](42)

	if got := BitsFromMask(GreaterEqual(v, Set[int32](42))); got != allLanes[int32]() {
		t.Errorf("Set: lanes >= 42: got %b, want %b", got, allLanes[int32]())
	}
	if got := BitsFromMask(GreaterThan(v, Set[int32](42))); got != 0 {
		t.Errorf("Set: lanes > 42: got %b, want 0", got)
	}
}

func TestGreaterThan(t *testing.T) {
	a := Load([]float32{3, 5, 2, 8})
	b := Load([]float32{2, 6, 3, 7})
	mask := GreaterThan(a, b)

	if got := BitsFromMask(mask); got != 0b1001 {
		t.Errorf("GreaterThan: got bits %04b, want 1001", got)
	}
}

func TestGreaterEqual(t *testing.T) {
	a := Load([]int32{3, 5, 2, 8})
	p := Set[int32](5)
	mask := GreaterEqual(a, p)

	if got := BitsFromMask(mask); got != 0b1010 {
		t.Errorf("GreaterEqual: got bits %04b, want 1010", got)
	}
	if FindFirstTrue(mask) != 1 {
		t.Errorf("FindFirstTrue: got %d, want 1", FindFirstTrue(mask))
	}
}

func TestCompareExtremes(t *testing.T) {
	a := Load([]int32{math.MinInt32, -1, 0, math.MaxInt32})
	low := Set[int32](math.MinInt32)
	high := Set[int32](math.MaxInt32)

	if got := BitsFromMask(GreaterEqual(a, low)); got != 0b1111 {
		t.Errorf("GreaterEqual(MinInt32): got bits %04b, want 1111", got)
	}
	if got := BitsFromMask(GreaterThan(a, high)); got != 0 {
		t.Errorf("GreaterThan(MaxInt32): got bits %04b, want 0", got)
	}
	if FindFirstTrue(GreaterThan(a, high)) != -1 {
		t.Error("FindFirstTrue: expected -1 on an empty mask")
	}
}

// TestCompareCommonLanes tests that masks only cover lanes present in both
// operands
func TestCompareCommonLanes(t *testing.T) {
	a := Load([]int64{5})
	b := Set[int64](1)

	if got := BitsFromMask(GreaterThan(a, b)); got != 1 {
		t.Errorf("GreaterThan: got bits %b, want 1", got)
	}
}
