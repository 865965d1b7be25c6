package fft

import (
	"math"
	"testing"
)

// relRMS returns ||got-want|| / ||want||, or ||got-want|| when want is zero.
func relRMS(got, want []complex64) float64 {
	var num, den float64

	for i := range want {
		dr := float64(real(got[i])) - float64(real(want[i]))
		di := float64(imag(got[i])) - float64(imag(want[i]))
		num += dr*dr + di*di
		den += float64(real(want[i]))*float64(real(want[i])) + float64(imag(want[i]))*float64(imag(want[i]))
	}

	if den == 0 {
		return math.Sqrt(num)
	}

	return math.Sqrt(num / den)
}

func assertRelRMS(t *testing.T, got, want []complex64, tol float64, format string, args ...any) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf(format+": length %d, want %d", append(args, len(got), len(want))...)
	}

	if e := relRMS(got, want); e > tol {
		t.Fatalf(format+": relative RMS error %.3g exceeds %.3g", append(args, e, tol)...)
	}
}

func widen(x []complex64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex128(v)
	}

	return out
}

func narrow(x []complex128) []complex64 {
	out := make([]complex64, len(x))
	for i, v := range x {
		out[i] = complex64(v)
	}

	return out
}

func mustEngine32(t *testing.T, n int, accelerated bool) *Engine32 {
	t.Helper()

	e, err := NewEngine32(n, accelerated)
	if err != nil {
		t.Fatalf("NewEngine32(%d, %v): %v", n, accelerated, err)
	}

	return e
}
