package fft

import "github.com/cwbudde/algo-mrfft/internal/fixed"

// radixShift returns log2 of a power-of-two radix.
func radixShift(radix int) uint {
	if radix == 4 {
		return 2
	}

	return 1
}

// refStrategyFixed indexes the full quantized twiddle table per butterfly.
type refStrategyFixed[T fixed.Int] struct {
	n      int
	tw     []fixed.Complex[T]
	stages []Stage
}

func newRefStrategyFixed[T fixed.Int](n int, tw []fixed.Complex[T], stages []Stage) *refStrategyFixed[T] {
	return &refStrategyFixed[T]{n: n, tw: tw, stages: stages}
}

func (s *refStrategyFixed[T]) Name() string { return "reference" }

func (s *refStrategyFixed[T]) Stage(dst, src []fixed.Complex[T], i int, inverse, scaled bool) {
	st := s.stages[i]

	var shift uint
	if scaled {
		shift = radixShift(st.Radix)
	}

	switch st.Radix {
	case 2:
		radix2RefFixed(dst, src, s.tw, st, s.n, inverse, shift)
	case 4:
		radix4RefFixed(dst, src, s.tw, st, s.n, inverse, shift)
	default:
		panic("fft: fixed-point backends support radix 2 and 4 only")
	}
}

func rotateFixed[T fixed.Int](v, w fixed.Complex[T], inverse bool) fixed.Complex[T] {
	if inverse {
		return fixed.CMulConj(v, w)
	}

	return fixed.CMul(v, w)
}

func radix2RefFixed[T fixed.Int](dst, src, tw []fixed.Complex[T], st Stage, n int, inverse bool, shift uint) {
	step := n / 2
	m, f := st.M, st.F

	for fi := range f {
		for mi := range m {
			in := fi*m + mi
			out := fi*2*m + mi

			a := fixed.Shr(src[in], shift)
			b := fixed.Shr(src[in+step], shift)

			if mi > 0 {
				b = rotateFixed(b, tw[mi*f], inverse)
			}

			dst[out] = fixed.Add(a, b)
			dst[out+m] = fixed.Sub(a, b)
		}
	}
}

func radix4RefFixed[T fixed.Int](dst, src, tw []fixed.Complex[T], st Stage, n int, inverse bool, shift uint) {
	step := n / 4
	m, f := st.M, st.F

	for fi := range f {
		for mi := range m {
			in := fi*m + mi
			out := fi*4*m + mi

			a := fixed.Shr(src[in], shift)
			b := fixed.Shr(src[in+step], shift)
			c := fixed.Shr(src[in+2*step], shift)
			d := fixed.Shr(src[in+3*step], shift)

			if mi > 0 {
				b = rotateFixed(b, tw[mi*f], inverse)
				c = rotateFixed(c, tw[2*mi*f], inverse)
				d = rotateFixed(d, tw[3*mi*f], inverse)
			}

			s0 := fixed.Add(a, c)
			s1 := fixed.Sub(a, c)
			s2 := fixed.Add(b, d)
			s3 := fixed.Sub(b, d)

			// s1 - i*s3 and s1 + i*s3
			minus := fixed.Complex[T]{Re: s1.Re + s3.Im, Im: s1.Im - s3.Re}
			plus := fixed.Complex[T]{Re: s1.Re - s3.Im, Im: s1.Im + s3.Re}

			dst[out] = fixed.Add(s0, s2)
			dst[out+2*m] = fixed.Sub(s0, s2)

			if inverse {
				dst[out+m], dst[out+3*m] = plus, minus
			} else {
				dst[out+m], dst[out+3*m] = minus, plus
			}
		}
	}
}

// fastStrategyFixed streams packed per-stage twiddles and keeps the rounding
// constants hoisted out of the butterfly loop. It produces bit-identical
// results to refStrategyFixed.
type fastStrategyFixed[T fixed.Int] struct {
	n      int
	stages []Stage
	tw     [][]fixed.Complex[T]
}

func newFastStrategyFixed[T fixed.Int](n int, tw []fixed.Complex[T], stages []Stage) *fastStrategyFixed[T] {
	s := &fastStrategyFixed[T]{
		n:      n,
		stages: stages,
		tw:     make([][]fixed.Complex[T], len(stages)),
	}

	for i, st := range stages {
		s.tw[i] = packTwiddles(tw, st)
	}

	return s
}

func (s *fastStrategyFixed[T]) Name() string { return "accelerated" }

func (s *fastStrategyFixed[T]) Stage(dst, src []fixed.Complex[T], i int, inverse, scaled bool) {
	st := s.stages[i]

	var shift uint
	if scaled {
		shift = radixShift(st.Radix)
	}

	switch st.Radix {
	case 2:
		radix2FastFixed(dst, src, s.tw[i], st, s.n, inverse, shift)
	case 4:
		radix4FastFixed(dst, src, s.tw[i], st, s.n, inverse, shift)
	default:
		panic("fft: fixed-point backends support radix 2 and 4 only")
	}
}

// cmulFast is fixed.CMul (or CMulConj when conj is set) with the shift and
// rounding constant supplied by the caller.
func cmulFast(vr, vi, wr, wi int64, conj bool, q uint, rnd int64) (int64, int64) {
	if conj {
		wi = -wi
	}

	return (vr*wr - vi*wi + rnd) >> q, (vr*wi + vi*wr + rnd) >> q
}

func radix2FastFixed[T fixed.Int](dst, src, tw []fixed.Complex[T], st Stage, n int, inverse bool, shift uint) {
	step := n / 2
	m, f := st.M, st.F
	q := fixed.FracBits[T]()
	rnd := int64(1) << (q - 1)

	for fi := range f {
		in0 := src[fi*m : fi*m+m]
		in1 := src[fi*m+step : fi*m+step+m]
		out0 := dst[fi*2*m : fi*2*m+m]
		out1 := dst[fi*2*m+m : fi*2*m+2*m]

		for mi := range m {
			ar, ai := in0[mi].Re>>shift, in0[mi].Im>>shift
			br, bi := in1[mi].Re>>shift, in1[mi].Im>>shift

			if mi > 0 {
				w := tw[mi]
				r, i := cmulFast(int64(br), int64(bi), int64(w.Re), int64(w.Im), inverse, q, rnd)
				br, bi = T(r), T(i)
			}

			out0[mi] = fixed.Complex[T]{Re: ar + br, Im: ai + bi}
			out1[mi] = fixed.Complex[T]{Re: ar - br, Im: ai - bi}
		}
	}
}

func radix4FastFixed[T fixed.Int](dst, src, tw []fixed.Complex[T], st Stage, n int, inverse bool, shift uint) {
	step := n / 4
	m, f := st.M, st.F
	q := fixed.FracBits[T]()
	rnd := int64(1) << (q - 1)

	o1, o3 := m, 3*m
	if inverse {
		o1, o3 = 3*m, m
	}

	for fi := range f {
		base := fi * m
		out := fi * 4 * m

		for mi := range m {
			in := base + mi

			ar, ai := src[in].Re>>shift, src[in].Im>>shift
			br, bi := src[in+step].Re>>shift, src[in+step].Im>>shift
			cr, ci := src[in+2*step].Re>>shift, src[in+2*step].Im>>shift
			dr, di := src[in+3*step].Re>>shift, src[in+3*step].Im>>shift

			if mi > 0 {
				w := tw[3*mi : 3*mi+3 : 3*mi+3]

				r, i := cmulFast(int64(br), int64(bi), int64(w[0].Re), int64(w[0].Im), inverse, q, rnd)
				br, bi = T(r), T(i)
				r, i = cmulFast(int64(cr), int64(ci), int64(w[1].Re), int64(w[1].Im), inverse, q, rnd)
				cr, ci = T(r), T(i)
				r, i = cmulFast(int64(dr), int64(di), int64(w[2].Re), int64(w[2].Im), inverse, q, rnd)
				dr, di = T(r), T(i)
			}

			s0r, s0i := ar+cr, ai+ci
			s1r, s1i := ar-cr, ai-ci
			s2r, s2i := br+dr, bi+di
			s3r, s3i := br-dr, bi-di

			o := out + mi
			dst[o] = fixed.Complex[T]{Re: s0r + s2r, Im: s0i + s2i}
			dst[o+2*m] = fixed.Complex[T]{Re: s0r - s2r, Im: s0i - s2i}
			dst[o+o1] = fixed.Complex[T]{Re: s1r + s3i, Im: s1i - s3r}
			dst[o+o3] = fixed.Complex[T]{Re: s1r - s3i, Im: s1i + s3r}
		}
	}
}
