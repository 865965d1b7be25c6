package mrfft

import "github.com/cwbudde/algo-mrfft/internal/fixed"

// Float32ToQ31 quantizes src into dst with round-half-up and saturation.
// Values are interpreted in [-1, 1). It converts min(len(dst), len(src))
// samples and returns that count.
func Float32ToQ31(dst []int32, src []float32) int {
	return toFixed(dst, src)
}

// Float32ToQ15 is Float32ToQ31 for Q15.
func Float32ToQ15(dst []int16, src []float32) int {
	return toFixed(dst, src)
}

// Q31ToFloat32 converts Q31 samples to float32 and returns the count.
func Q31ToFloat32(dst []float32, src []int32) int {
	return fromFixed(dst, src)
}

// Q15ToFloat32 converts Q15 samples to float32 and returns the count.
func Q15ToFloat32(dst []float32, src []int16) int {
	return fromFixed(dst, src)
}

// Complex64ToQ31 quantizes both components of each sample.
func Complex64ToQ31(dst []ComplexQ31, src []complex64) int {
	return complexToFixed(dst, src)
}

// Complex64ToQ15 quantizes both components of each sample.
func Complex64ToQ15(dst []ComplexQ15, src []complex64) int {
	return complexToFixed(dst, src)
}

// Q31ToComplex64 converts Q31 complex samples to complex64.
func Q31ToComplex64(dst []complex64, src []ComplexQ31) int {
	return complexFromFixed(dst, src)
}

// Q15ToComplex64 converts Q15 complex samples to complex64.
func Q15ToComplex64(dst []complex64, src []ComplexQ15) int {
	return complexFromFixed(dst, src)
}

func toFixed[T fixed.Int](dst []T, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = fixed.FromFloat[T](float64(src[i]))
	}

	return n
}

func fromFixed[T fixed.Int](dst []float32, src []T) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(fixed.ToFloat(src[i]))
	}

	return n
}

func complexToFixed[T fixed.Int](dst []fixed.Complex[T], src []complex64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = fixed.Complex[T]{
			Re: fixed.FromFloat[T](float64(real(src[i]))),
			Im: fixed.FromFloat[T](float64(imag(src[i]))),
		}
	}

	return n
}

func complexFromFixed[T fixed.Int](dst []complex64, src []fixed.Complex[T]) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = complex(float32(fixed.ToFloat(src[i].Re)), float32(fixed.ToFloat(src[i].Im)))
	}

	return n
}
