//go:build !pivotsort_debug

package sort

const (
	// insertionThreshold: ranges shorter than this are insertion sorted.
	insertionThreshold = 27

	debugAssertions = false
)
