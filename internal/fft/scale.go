package fft

import (
	"unsafe"

	"github.com/tphakala/simd/f32"
)

// ScaleComplex64InPlace scales each element in dst by scale, running the
// vectorized float32 kernel over the interleaved re/im pairs.
func ScaleComplex64InPlace(dst []complex64, scale float32) {
	if scale == 1 || len(dst) == 0 {
		return
	}

	flat := unsafe.Slice((*float32)(unsafe.Pointer(&dst[0])), 2*len(dst))
	f32.Scale(flat, flat, scale)
}
