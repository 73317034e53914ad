package seqops

import "errors"

var ErrRepeatDestTooSmall = errors.New("destination is too small for the repeated sequence")

// Repeat writes times back-to-back copies of src into dst and returns the
// number of elements written. times <= 0 writes nothing. dst and src must
// not overlap. A dst too small to hold all the copies is a caller bug and
// makes Repeat panic with ErrRepeatDestTooSmall before anything is written.
func Repeat[E any](dst, src []E, times int) int {
	if times <= 0 || len(src) == 0 {
		return 0
	}
	if times*len(src) > len(dst) {
		panic(ErrRepeatDestTooSmall)
	}

	for i := 0; i < times; i++ {
		copy(dst[i*len(src):], src)
	}
	return times * len(src)
}
