package fft

import "github.com/cwbudde/algo-mrfft/internal/fixed"

// SplitForward32 turns the half-length spectrum z (length M = N/2) of a real
// signal packed as z[n] = x[2n] + i*x[2n+1] into the N/2+1 bins of X.
//
// Bins 0 and M are purely real by construction and bin N/4 uses its own
// formula; the general case covers k in [1, N/4) and mirrors into M-k.
func SplitForward32(dst, z, super []complex64) {
	half := len(z)

	z0r, z0i := real(z[0]), imag(z[0])
	dst[0] = complex(z0r+z0i, 0)
	dst[half] = complex(z0r-z0i, 0)

	if half < 2 {
		return
	}

	quarter := half / 2
	for k := 1; k < quarter; k++ {
		fk := z[k]
		fnkc := conj64(z[half-k])

		f1 := fk + fnkc
		tw := (fk - fnkc) * super[k-1]

		dst[k] = (f1 + tw) * 0.5
		dst[half-k] = conj64(f1-tw) * 0.5
	}

	dst[quarter] = conj64(z[quarter])
}

// SplitInverse32 folds the N/2+1 bins of x back into the half-length spectrum
// dst (length M) whose inverse transform is the packed real signal. The
// imaginary parts of bins 0 and M are ignored.
func SplitInverse32(dst, x, super []complex64) {
	half := len(dst)

	x0, xm := real(x[0]), real(x[half])
	dst[0] = complex((x0+xm)*0.5, (x0-xm)*0.5)

	if half < 2 {
		return
	}

	quarter := half / 2
	for k := 1; k < quarter; k++ {
		fk := x[k]
		fnkc := conj64(x[half-k])

		fek := fk + fnkc
		fok := (fk - fnkc) * conj64(super[k-1])

		dst[k] = (fek + fok) * 0.5
		dst[half-k] = conj64(fek-fok) * 0.5
	}

	dst[quarter] = conj64(x[quarter])
}

// SplitForwardFixed is the fixed-point SplitForward32. With scaled set the
// half-length spectrum is halved on entry, so a scaled engine pass followed by
// this split yields X/N. Otherwise the result is X.
func SplitForwardFixed[T fixed.Int](dst, z, super []fixed.Complex[T], scaled bool) {
	half := len(z)

	var shift uint
	if scaled {
		shift = 1
	}

	z0 := fixed.Shr(z[0], shift)
	dst[0] = fixed.Complex[T]{Re: z0.Re + z0.Im}
	dst[half] = fixed.Complex[T]{Re: z0.Re - z0.Im}

	if half < 2 {
		return
	}

	quarter := half / 2
	for k := 1; k < quarter; k++ {
		fk := fixed.Shr(z[k], shift)
		fnkc := fixed.Conj(fixed.Shr(z[half-k], shift))

		f1 := fixed.Add(fk, fnkc)
		tw := fixed.CMul(fixed.Sub(fk, fnkc), super[k-1])

		dst[k] = fixed.Complex[T]{
			Re: T((int64(f1.Re) + int64(tw.Re)) >> 1),
			Im: T((int64(f1.Im) + int64(tw.Im)) >> 1),
		}
		dst[half-k] = fixed.Complex[T]{
			Re: T((int64(f1.Re) - int64(tw.Re)) >> 1),
			Im: T((int64(tw.Im) - int64(f1.Im)) >> 1),
		}
	}

	dst[quarter] = fixed.Conj(fixed.Shr(z[quarter], shift))
}

// SplitInverseFixed is the fixed-point SplitInverse32. With scaled set the
// bins are halved on entry, which together with a scaled inverse engine pass
// reproduces x. Otherwise the pair yields N*x.
func SplitInverseFixed[T fixed.Int](dst, x, super []fixed.Complex[T], scaled bool) {
	half := len(dst)

	var shift uint
	if scaled {
		shift = 1
	}

	x0, xm := int64(x[0].Re), int64(x[half].Re)
	dst[0] = fixed.Complex[T]{
		Re: T((x0 + xm) >> shift),
		Im: T((x0 - xm) >> shift),
	}

	if half < 2 {
		return
	}

	quarter := half / 2
	for k := 1; k < quarter; k++ {
		fk := fixed.Shr(x[k], shift)
		fnkc := fixed.Conj(fixed.Shr(x[half-k], shift))

		fek := fixed.Add(fk, fnkc)
		fok := fixed.CMulConj(fixed.Sub(fk, fnkc), super[k-1])

		dst[k] = fixed.Add(fek, fok)
		dst[half-k] = fixed.Conj(fixed.Sub(fek, fok))
	}

	mid := fixed.Conj(x[quarter])
	if !scaled {
		mid = fixed.Add(mid, mid)
	}

	dst[quarter] = mid
}
