package slices

// Transform builds a new slice by applying the provided function
// to every element of the given slice.
// An empty input yields a nil slice.
func Transform[From, To any](from []From, f func(From) To) []To {
	if len(from) == 0 {
		return nil
	}
	to := make([]To, len(from))
	for i, v := range from {
		to[i] = f(v)
	}
	return to
}
