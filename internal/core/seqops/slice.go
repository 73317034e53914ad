package seqops

import (
	"errors"

	"github.com/thomasgruebler/micropython/internal/utils"
)

var ErrUnsupportedSliceStep = errors.New("only slices with step=1 (aka none) are supported")

// A SliceSpec is a possibly partial [start:stop:step] slice specification,
// a nil field means the corresponding bound was not given.
type SliceSpec struct {
	Start *int
	Stop  *int
	Step  *int
}

// ResolveSliceBounds turns spec into a half-open range [begin, end) with
// 0 <= begin <= end <= length. Out-of-bounds and inverted bounds are never
// an error, they only shrink the range (possibly down to an empty one). The
// only failure is ErrUnsupportedSliceStep: steps other than 1/unspecified
// are not supported, callers have to fall back to a per-element strided
// path.
func ResolveSliceBounds(length int, spec SliceSpec) (begin int, end int, err error) {
	if spec.Step != nil && *spec.Step != 1 {
		return 0, 0, ErrUnsupportedSliceStep
	}

	start := 0
	if spec.Start != nil {
		start = *spec.Start
	}
	stop := length
	if spec.Stop != nil {
		stop = *spec.Stop
	}

	if start < 0 {
		start = utils.Max(length+start, 0)
	} else if start > length {
		start = length
	}

	if stop < 0 {
		stop = length + stop
		// a stop still negative after the adjustment yields an empty range
		if stop < 0 {
			stop = start
		}
	} else if stop > length {
		stop = length
	}

	if start > stop {
		stop = start
	}

	return start, stop, nil
}

// ClampIndex normalizes a single index the way the range arguments of a
// search are normalized: a negative index counts from the end and the
// result is clamped into [0, length]. Unlike subscription this never fails.
func ClampIndex(length int, i int) int {
	if i < 0 {
		i += length
	}
	return utils.Min(utils.Max(i, 0), length)
}
