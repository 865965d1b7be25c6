// Package snr measures how closely a transform result tracks a reference
// result, as a signal-to-noise ratio in decibels.
package snr

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Minimum SNR a fixed-point result must reach against the float32 reference.
const (
	ThresholdQ31 = 25.0
	ThresholdQ15 = 35.0
)

// Real returns 10*log10(sum(ref^2) / sum((ref-got)^2)). It returns +Inf when
// the inputs are identical and -Inf when ref carries no energy but got differs.
// It panics if the lengths differ.
func Real(ref, got []float64) float64 {
	if len(ref) != len(got) {
		panic("snr: slice length mismatch")
	}

	diff := make([]float64, len(ref))
	vecmath.ScaleBlock(diff, got, -1)
	vecmath.AddBlockInPlace(diff, ref)

	signal := vecmath.DotProduct(ref, ref)
	noise := vecmath.DotProduct(diff, diff)

	switch {
	case noise == 0:
		return math.Inf(1)
	case signal == 0:
		return math.Inf(-1)
	}

	return 10 * math.Log10(signal/noise)
}

// Float32 is Real for float32 samples.
func Float32(ref, got []float32) float64 {
	return Real(widen(ref), widen(got))
}

// Complex64 is Real over the interleaved re/im components.
func Complex64(ref, got []complex64) float64 {
	return Real(flatten(ref), flatten(got))
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}

	return out
}

func flatten(x []complex64) []float64 {
	out := make([]float64, 2*len(x))
	for i, v := range x {
		out[2*i] = float64(real(v))
		out[2*i+1] = float64(imag(v))
	}

	return out
}
