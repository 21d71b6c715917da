package sampling

// Batches splits items into contiguous sub-slices of at most size elements,
// preserving order and covering every item exactly once. The final batch may
// be shorter. An empty input yields zero batches. The returned slices share
// the input's backing array.
func Batches[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
