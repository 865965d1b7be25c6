package mrfft

import (
	"math/cmplx"
	"testing"
)

func assertApproxComplex64Tolf(t *testing.T, got, want complex64, tol float64, format string, args ...any) {
	t.Helper()

	if d := cmplx.Abs(complex128(got - want)); d > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, d)...)
	}
}

func maxAbsDiff(a, b []complex64) float64 {
	var worst float64

	for i := range a {
		if d := cmplx.Abs(complex128(a[i] - b[i])); d > worst {
			worst = d
		}
	}

	return worst
}
