//go:build pivotsort_debug

package sort

const (
	// insertionThreshold is lowered so partitioning code runs on the small
	// inputs used by tests.
	insertionThreshold = 9

	debugAssertions = true
)
