package fft

import (
	"fmt"
	"unsafe"
)

// CheckBuffers panics unless dst holds at least dstLen elements, src at least
// srcLen, and the two do not overlap. Plans call it only when Debug is set.
func CheckBuffers[D, S any](op string, dst []D, dstLen int, src []S, srcLen int) {
	if len(dst) < dstLen {
		panic(fmt.Sprintf("mrfft: %s: dst has %d elements, need %d", op, len(dst), dstLen))
	}

	if len(src) < srcLen {
		panic(fmt.Sprintf("mrfft: %s: src has %d elements, need %d", op, len(src), srcLen))
	}

	if overlaps(dst, src) {
		panic(fmt.Sprintf("mrfft: %s: dst aliases src", op))
	}
}

func overlaps[A, B any](a []A, b []B) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	a1 := a0 + uintptr(len(a))*unsafe.Sizeof(a[0])
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	b1 := b0 + uintptr(len(b))*unsafe.Sizeof(b[0])

	return a0 < b1 && b0 < a1
}
