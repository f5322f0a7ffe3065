// Package hwy provides the portable vector layer used by the sorting
// partitioners: fixed-width lane vectors, lane-wise comparisons producing
// masks, and runtime detection of the widest register available.
//
// Vectors are backed by a fixed-size array so that no operation allocates.
// The lane count follows the detected register width (16, 32 or 64 bytes)
// divided by the element size, capped at MaxVecLanes.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-pivotsort/hwy"
//
//	p := hwy.Set(pivot)
//	v := hwy.Load(keys[i:])
//	bits := hwy.BitsFromMask(hwy.GreaterEqual(v, p))
package hwy

// MaxVecLanes is the largest lane count any Vec can hold: a 512-bit
// register split into 32-bit lanes.
const MaxVecLanes = 16

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for the signed integer lane types.
type SignedInts interface {
	~int32 | ~int64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// Only 32- and 64-bit lanes are supported.
type Lanes interface {
	Floats | SignedInts
}

// Vec is a portable vector handle. Only the first n lanes are meaningful.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Lanes] struct {
	data [MaxVecLanes]T
	n    int
}

// Mask represents the result of a lane-wise comparison. Bit i is set if
// lane i compared true.
type Mask[T Lanes] struct {
	bits uint64
}
