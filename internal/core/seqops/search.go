package seqops

import "errors"

var ErrElementNotFound = errors.New("object not in sequence")

// IndexOf returns the smallest index whose element is equal to target, or
// ErrElementNotFound. A zero count and a failing search agree: IndexOf
// fails exactly when Count returns 0.
func IndexOf[E any](items []E, target E, equal EqualFn[E]) (int, error) {
	return IndexOfWithin(items, target, equal, 0, len(items))
}

// IndexOfWithin restricts the search to [start, stop). The bounds follow
// the same normalization as ClampIndex: negative values count from the end
// and out-of-range values are clamped, never errors.
func IndexOfWithin[E any](items []E, target E, equal EqualFn[E], start, stop int) (int, error) {
	start = ClampIndex(len(items), start)
	stop = ClampIndex(len(items), stop)

	for i := start; i < stop; i++ {
		if equal(items[i], target) {
			return i, nil
		}
	}

	return 0, ErrElementNotFound
}

// Count returns the number of elements equal to target. Zero is a normal,
// non-error result.
func Count[E any](items []E, target E, equal EqualFn[E]) int {
	count := 0
	for _, item := range items {
		if equal(item, target) {
			count++
		}
	}
	return count
}
