//go:build !(amd64 && goexperiment.simd)

package sort

func newPivotComparer[K orderKey]() pivotComparer[K] {
	return &vecComparer[K]{}
}
