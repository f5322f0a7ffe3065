package sort

// InsertionSort sorts data in place by shifting each element left past its
// larger predecessors. It is the fallback every strategy uses below the
// insertion threshold.
func InsertionSort[T Sortable](data []T) {
	switch d := any(data).(type) {
	case []float32:
		insertionSort(d, keyFloat32)
	case []float64:
		insertionSort(d, keyFloat64)
	case []int32:
		insertionSort(d, keyInt32)
	case []int64:
		insertionSort(d, keyInt64)
	}
}

func insertionSort[T Sortable, K orderKey](data []T, key func(T) K) {
	for i := 1; i < len(data); i++ {
		v := data[i]
		k := key(v)
		j := i - 1
		for j >= 0 && key(data[j]) > k {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = v
	}
}
