// Package testutil generates deterministic signals for tests and benchmarks.
package testutil

import (
	"math"
	"math/rand"
)

// RandomComplex64 returns n samples with components uniform in [-amp, amp).
func RandomComplex64(n int, amp float32, seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex64, n)
	for i := range out {
		re := (2*rng.Float32() - 1) * amp
		im := (2*rng.Float32() - 1) * amp
		out[i] = complex(re, im)
	}

	return out
}

// RandomFloat32 returns n samples uniform in [-amp, amp).
func RandomFloat32(n int, amp float32, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float32, n)
	for i := range out {
		out[i] = (2*rng.Float32() - 1) * amp
	}

	return out
}

// Tones returns n real samples of a sum of sines at the given bin
// frequencies, scaled so the peak magnitude stays below amp.
func Tones(n int, amp float64, bins ...int) []float32 {
	out := make([]float32, n)
	if len(bins) == 0 {
		return out
	}

	gain := amp / float64(len(bins))
	for i := range out {
		var v float64
		for j, b := range bins {
			v += math.Sin(2*math.Pi*float64(b*i%n)/float64(n) + float64(j))
		}

		out[i] = float32(gain * v)
	}

	return out
}
