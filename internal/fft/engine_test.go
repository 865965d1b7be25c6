package fft

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-mrfft/internal/reference"
	"github.com/cwbudde/algo-mrfft/internal/testutil"
)

var (
	genericSizes = []int{1, 2, 4, 6, 8, 10, 12, 16, 18, 20, 24, 30, 36, 40, 48, 50, 60, 64, 90, 96, 100, 120, 128, 150, 250, 256, 360, 480}
	pow2Sizes    = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}
)

func TestEngine32MatchesNaiveDFT(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, n int, accelerated bool) {
		t.Helper()

		e := mustEngine32(t, n, accelerated)
		src := testutil.RandomComplex64(n, 1, int64(n))
		dst := make([]complex64, n)
		scratch := make([]complex64, n)

		e.Transform(dst, src, scratch, false)

		want := reference.NaiveDFT64(src)
		assertRelRMS(t, dst, want, 1e-5, "n=%d accelerated=%v", n, accelerated)
	}

	for _, n := range genericSizes {
		t.Run(fmt.Sprintf("reference/n=%d", n), func(t *testing.T) {
			t.Parallel()
			run(t, n, false)
		})
	}

	for _, n := range pow2Sizes {
		t.Run(fmt.Sprintf("accelerated/n=%d", n), func(t *testing.T) {
			t.Parallel()
			run(t, n, true)
		})
	}
}

func TestEngine32MatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{8, 96, 480, 1000, 2048, 3000, 4096} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			src := testutil.RandomComplex64(n, 1, 42)
			want := fourier.NewCmplxFFT(n).Coefficients(nil, widen(src))

			for _, accelerated := range []bool{false, true} {
				if accelerated && !IsPowerOfTwo(n) {
					continue
				}

				e := mustEngine32(t, n, accelerated)
				dst := make([]complex64, n)
				e.Transform(dst, src, make([]complex64, n), false)

				assertRelRMS(t, dst, narrow(want), 2e-5, "n=%d accelerated=%v", n, accelerated)
			}
		})
	}
}

func TestEngine32RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 6, 60, 64, 360, 1024, 3840} {
		for _, accelerated := range []bool{false, true} {
			if accelerated && !IsPowerOfTwo(n) {
				continue
			}

			e := mustEngine32(t, n, accelerated)
			src := testutil.RandomComplex64(n, 1, 7)
			freq := make([]complex64, n)
			back := make([]complex64, n)
			scratch := make([]complex64, n)

			e.Transform(freq, src, scratch, false)
			e.Transform(back, freq, scratch, true)

			assertRelRMS(t, back, src, 1e-5, "round trip n=%d accelerated=%v", n, accelerated)
		}
	}
}

func TestEngine32InverseMatchesNaive(t *testing.T) {
	t.Parallel()

	for _, n := range []int{12, 45 * 2, 256} {
		e := mustEngine32(t, n, false)
		src := testutil.RandomComplex64(n, 1, 3)
		dst := make([]complex64, n)
		e.Transform(dst, src, make([]complex64, n), true)

		want := narrow(reference.NaiveIDFT(widen(src)))
		assertRelRMS(t, dst, want, 1e-5, "inverse n=%d", n)
	}
}

func TestEngine32Linearity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{8, 12, 60, 64, 250, 1024} {
		e := mustEngine32(t, n, false)
		x := testutil.RandomComplex64(n, 1, 12345)
		y := testutil.RandomComplex64(n, 1, 67890)

		a := complex(float32(2.5), float32(1.3))
		b := complex(float32(-1.7), float32(0.8))

		combined := make([]complex64, n)
		for i := range n {
			combined[i] = a*x[i] + b*y[i]
		}

		scratch := make([]complex64, n)
		fc := make([]complex64, n)
		fx := make([]complex64, n)
		fy := make([]complex64, n)

		e.Transform(fc, combined, scratch, false)
		e.Transform(fx, x, scratch, false)
		e.Transform(fy, y, scratch, false)

		want := make([]complex64, n)
		for i := range n {
			want[i] = a*fx[i] + b*fy[i]
		}

		assertRelRMS(t, fc, want, 1e-5, "linearity n=%d", n)
	}
}

func TestEngine32EightPointExample(t *testing.T) {
	t.Parallel()

	src := []complex64{1, 2, 3, 4, 5, 6, 7, 8}

	for _, accelerated := range []bool{false, true} {
		e := mustEngine32(t, 8, accelerated)
		freq := make([]complex64, 8)
		scratch := make([]complex64, 8)

		e.Transform(freq, src, scratch, false)

		if freq[0] != 36 {
			t.Errorf("accelerated=%v: X[0] = %v, want 36", accelerated, freq[0])
		}

		if freq[4] != -4 {
			t.Errorf("accelerated=%v: X[4] = %v, want -4", accelerated, freq[4])
		}

		back := make([]complex64, 8)
		e.Transform(back, freq, scratch, true)
		assertRelRMS(t, back, src, 1e-6, "accelerated=%v round trip", accelerated)
	}
}

func TestEngine32BackendsAgree(t *testing.T) {
	t.Parallel()

	for _, n := range pow2Sizes {
		ref := mustEngine32(t, n, false)
		fast := mustEngine32(t, n, true)

		if ref.Strategy() != "reference" || fast.Strategy() != "accelerated" {
			t.Fatalf("strategies = %q, %q", ref.Strategy(), fast.Strategy())
		}

		src := testutil.RandomComplex64(n, 1, 99)
		scratch := make([]complex64, n)

		for _, inverse := range []bool{false, true} {
			a := make([]complex64, n)
			b := make([]complex64, n)

			ref.Transform(a, src, scratch, inverse)
			fast.Transform(b, src, scratch, inverse)

			assertRelRMS(t, b, a, 1e-6, "n=%d inverse=%v", n, inverse)
		}
	}
}

func TestEngine32LeavesSourceIntact(t *testing.T) {
	t.Parallel()

	for _, n := range []int{8, 60, 256} {
		e := mustEngine32(t, n, false)
		src := testutil.RandomComplex64(n, 1, 5)
		keep := append([]complex64(nil), src...)

		e.Transform(make([]complex64, n), src, make([]complex64, n), false)

		for i := range src {
			if src[i] != keep[i] {
				t.Fatalf("n=%d: src[%d] changed", n, i)
			}
		}
	}
}

func TestNewEngine32RejectsAcceleratedNonPow2(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine32(12, true); err == nil {
		t.Fatal("expected error for n=12 on the accelerated path")
	}

	if _, err := NewEngine32(12, false); err != nil {
		t.Fatalf("n=12 reference: %v", err)
	}
}

func BenchmarkEngine32(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		for _, accelerated := range []bool{false, true} {
			b.Run(fmt.Sprintf("n=%d/accelerated=%v", n, accelerated), func(b *testing.B) {
				e, err := NewEngine32(n, accelerated)
				if err != nil {
					b.Fatal(err)
				}

				src := testutil.RandomComplex64(n, 1, 1)
				dst := make([]complex64, n)
				scratch := make([]complex64, n)

				b.ReportAllocs()
				b.SetBytes(int64(n * 8))
				b.ResetTimer()

				for range b.N {
					e.Transform(dst, src, scratch, false)
				}
			})
		}
	}
}
