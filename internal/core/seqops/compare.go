package seqops

import (
	"bytes"

	"github.com/thomasgruebler/micropython/internal/utils"
)

// An EqualFn decides whether two elements are equal, it abstracts over the
// concrete element representation.
type EqualFn[E any] func(a, b E) bool

// A RelateFn decides a relational operation between two elements that are
// already known to be unequal.
type RelateFn[E any] func(op ComparisonOperator, a, b E) bool

// CompareBytes lexicographically compares two byte runs for op. Don't pass
// a not-equal operator, see ComparisonOperator.
func CompareBytes(op ComparisonOperator, data1, data2 []byte) bool {
	// differing lengths are enough to disprove equality
	if op == Equal && len(data1) != len(data2) {
		return false
	}

	// only deal with > and >=
	if op == LessThan || op == LessOrEqual {
		data1, data2 = data2, data1
		if op == LessThan {
			op = GreaterThan
		} else {
			op = GreaterOrEqual
		}
	}
	assertGreaterOrEqualOperator(op)

	minLen := utils.Min(len(data1), len(data2))
	res := bytes.Compare(data1[:minLen], data2[:minLen])

	if op == Equal {
		// lengths are already known to be equal
		return res == 0
	}
	if res != 0 {
		return res > 0
	}

	return greaterTieBreak(op, len(data1), len(data2))
}

// Compare lexicographically compares two element runs for op, using the
// equal capability to walk the common prefix and the relate capability to
// decide the outcome on the first unequal pair. No element past the first
// unequal pair is examined. Don't pass a not-equal operator, see
// ComparisonOperator.
func Compare[E any](op ComparisonOperator, items1, items2 []E, equal EqualFn[E], relate RelateFn[E]) bool {
	// differing lengths are enough to disprove equality
	if op == Equal && len(items1) != len(items2) {
		return false
	}

	// only deal with > and >=
	if op == LessThan || op == LessOrEqual {
		items1, items2 = items2, items1
		if op == LessThan {
			op = GreaterThan
		} else {
			op = GreaterOrEqual
		}
	}
	assertGreaterOrEqualOperator(op)

	minLen := utils.Min(len(items1), len(items2))
	for i := 0; i < minLen; i++ {
		// equal elements cannot decide anything
		if equal(items1[i], items2[i]) {
			continue
		}

		if op == Equal {
			return false
		}

		// the first unequal pair decides
		return relate(op, items1[i], items2[i])
	}

	return greaterTieBreak(op, len(items1), len(items2))
}

// greaterTieBreak settles a comparison whose common prefix was indecisive.
// op is Equal (with len1 == len2 guaranteed) or one of the Greater*
// operators.
func greaterTieBreak(op ComparisonOperator, len1, len2 int) bool {
	if len1 != len2 {
		// only the longer sequence can be greater
		return len1 > len2
	}
	// fully equal sequences fail a strict relation
	return op != GreaterThan
}
