package fft

import (
	"math"

	"github.com/cwbudde/algo-mrfft/internal/fixed"
)

// Twiddles32 returns the N-entry table W_N^k = cos(2*pi*k/N) - i*sin(2*pi*k/N),
// evaluated in float64 and rounded to float32.
func Twiddles32(n int) []complex64 {
	tw := make([]complex64, n)
	for k := range tw {
		re, im := twiddle(k, n)
		tw[k] = complex(float32(re), float32(im))
	}

	return tw
}

// TwiddlesFixed returns the N-entry twiddle table quantized to T.
func TwiddlesFixed[T fixed.Int](n int) []fixed.Complex[T] {
	tw := make([]fixed.Complex[T], n)
	for k := range tw {
		re, im := twiddle(k, n)
		tw[k] = fixed.Complex[T]{Re: fixed.Coef[T](re), Im: fixed.Coef[T](im)}
	}

	return tw
}

// SuperTwiddles32 returns the N/4 split coefficients for a real transform of
// length n: super[k-1] = exp(-i*pi*(k/(N/2) + 1/2)) for k = 1..N/4.
func SuperTwiddles32(n int) []complex64 {
	super := make([]complex64, n/4)
	for i := range super {
		re, im := superTwiddle(i+1, n/2)
		super[i] = complex(float32(re), float32(im))
	}

	return super
}

// SuperTwiddlesFixed is SuperTwiddles32 quantized to T.
func SuperTwiddlesFixed[T fixed.Int](n int) []fixed.Complex[T] {
	super := make([]fixed.Complex[T], n/4)
	for i := range super {
		re, im := superTwiddle(i+1, n/2)
		super[i] = fixed.Complex[T]{Re: fixed.Coef[T](re), Im: fixed.Coef[T](im)}
	}

	return super
}

func twiddle(k, n int) (re, im float64) {
	phase := 2 * math.Pi * float64(k) / float64(n)
	return math.Cos(phase), -math.Sin(phase)
}

func superTwiddle(k, half int) (re, im float64) {
	phase := math.Pi * (float64(k)/float64(half) + 0.5)
	return math.Cos(phase), -math.Sin(phase)
}

// packTwiddles lays out the twiddles of one stage contiguously:
// packed[m*(Radix-1)+j-1] = tw[j*m*F]. A first stage (M == 1) needs none.
func packTwiddles[C any](tw []C, st Stage) []C {
	if st.M == 1 {
		return nil
	}

	r := st.Radix
	packed := make([]C, st.M*(r-1))

	for m := range st.M {
		for j := 1; j < r; j++ {
			packed[m*(r-1)+j-1] = tw[j*m*st.F]
		}
	}

	return packed
}
