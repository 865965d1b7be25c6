package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-mrfft/internal/fixed"
)

func TestTwiddles32(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 8, 12, 60, 1024} {
		tw := Twiddles32(n)
		if len(tw) != n {
			t.Fatalf("n=%d: len = %d", n, len(tw))
		}

		if tw[0] != 1 {
			t.Fatalf("n=%d: W^0 = %v, want 1", n, tw[0])
		}

		for k, w := range tw {
			want := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
			if cmplx.Abs(complex128(w)-want) > 1e-7 {
				t.Fatalf("n=%d: W^%d = %v, want %v", n, k, w, want)
			}
		}
	}
}

func TestSuperTwiddles32(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 64, 1024} {
		super := SuperTwiddles32(n)
		if len(super) != n/4 {
			t.Fatalf("n=%d: len = %d, want %d", n, len(super), n/4)
		}

		half := n / 2
		for i, w := range super {
			k := i + 1
			want := cmplx.Exp(complex(0, -math.Pi*(float64(k)/float64(half)+0.5)))

			if cmplx.Abs(complex128(w)-want) > 1e-7 {
				t.Fatalf("n=%d: super[%d] = %v, want %v", n, i, w, want)
			}
		}

		// The last entry sits at k = N/4 where the coefficient is -1.
		if len(super) > 0 && cmplx.Abs(complex128(super[len(super)-1])+1) > 1e-7 {
			t.Fatalf("n=%d: super[N/4-1] = %v, want -1", n, super[len(super)-1])
		}
	}
}

func TestTwiddlesFixedQuantization(t *testing.T) {
	t.Parallel()

	tw31 := TwiddlesFixed[int32](8)
	if tw31[0] != (fixed.Complex[int32]{Re: math.MaxInt32, Im: 0}) {
		t.Errorf("Q31 W^0 = %+v, want saturated +1", tw31[0])
	}

	if tw31[2] != (fixed.Complex[int32]{Re: 0, Im: -math.MaxInt32}) {
		t.Errorf("Q31 W^2 = %+v, want -i", tw31[2])
	}

	if tw31[4].Re != -math.MaxInt32 {
		t.Errorf("Q31 W^4 = %+v, want -1 clamped to -MAX", tw31[4])
	}

	tw15 := TwiddlesFixed[int16](8)
	// cos(pi/4) * 32767 = 23169.77 -> 23170
	if tw15[1] != (fixed.Complex[int16]{Re: 23170, Im: -23170}) {
		t.Errorf("Q15 W^1 = %+v", tw15[1])
	}

	super := SuperTwiddlesFixed[int16](16)
	if len(super) != 4 || super[3].Re != -math.MaxInt16 {
		t.Errorf("Q15 super table = %+v", super)
	}
}

func TestPackTwiddles(t *testing.T) {
	t.Parallel()

	const n = 64

	tw := Twiddles32(n)
	st := Stage{Radix: 4, M: 4, F: 4}
	packed := packTwiddles(tw, st)

	if len(packed) != 12 {
		t.Fatalf("len = %d, want 12", len(packed))
	}

	for m := range 4 {
		for j := 1; j < 4; j++ {
			if got, want := packed[m*3+j-1], tw[j*m*4]; got != want {
				t.Fatalf("packed[%d] = %v, want W^%d = %v", m*3+j-1, got, j*m*4, want)
			}
		}
	}

	if packTwiddles(tw, Stage{Radix: 4, M: 1, F: 16}) != nil {
		t.Fatal("first stage should carry no twiddles")
	}
}
