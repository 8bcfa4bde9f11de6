package compare

// Pair holds the elements found at the same index of two slices. A side is
// nil when its slice is shorter than the other.
type Pair[T any] struct {
	Left  *T
	Right *T
}

// ZipLongest pairs the elements of a and b by index, padding the shorter side
// with nil so that every element of both slices appears exactly once.
//
// Example:
//
//	for i, p := range compare.ZipLongest(src, formatted) {
//	    if p.Left == nil || p.Right == nil {
//	        // one stream ended early
//	    }
//	}
func ZipLongest[T any](a, b []T) []Pair[T] {
	n := max(len(a), len(b))

	pairs := make([]Pair[T], n)
	for i := range n {
		if i < len(a) {
			pairs[i].Left = &a[i]
		}
		if i < len(b) {
			pairs[i].Right = &b[i]
		}
	}
	return pairs
}

// FirstMismatch returns the index of the first pair that differs, either
// because equalFunc rejects it or because one side is missing. ok is false
// when the slices are equal.
//
// Example:
//
//	if i, ok := compare.FirstMismatch(want, got, sameToken); ok {
//	    return fmt.Errorf("token %d differs", i)
//	}
func FirstMismatch[T any](a, b []T, equalFunc func(T, T) bool) (int, bool) {
	for i, p := range ZipLongest(a, b) {
		if p.Left == nil || p.Right == nil || !equalFunc(*p.Left, *p.Right) {
			return i, true
		}
	}
	return 0, false
}
