// Package reference provides an O(n^2) DFT used as a test oracle.
package reference

import (
	"math"
	"math/cmplx"
)

// NaiveDFT computes the forward DFT of src in complex128 precision.
func NaiveDFT(src []complex128) []complex128 {
	return naive(src, -1)
}

// NaiveIDFT computes the inverse DFT of src, scaled by 1/n.
func NaiveIDFT(src []complex128) []complex128 {
	out := naive(src, 1)

	scale := complex(1/float64(len(src)), 0)
	for i := range out {
		out[i] *= scale
	}

	return out
}

// NaiveDFT64 is NaiveDFT for complex64 input; it accumulates in complex128.
func NaiveDFT64(src []complex64) []complex64 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex128(v)
	}

	out := NaiveDFT(wide)

	narrow := make([]complex64, len(out))
	for i, v := range out {
		narrow[i] = complex64(v)
	}

	return narrow
}

func naive(src []complex128, sign float64) []complex128 {
	n := len(src)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for t := range n {
			// Reduce k*t mod n first to keep the phase argument small.
			phase := sign * 2 * math.Pi * float64((k*t)%n) / float64(n)
			sum += src[t] * cmplx.Exp(complex(0, phase))
		}

		out[k] = sum
	}

	return out
}
