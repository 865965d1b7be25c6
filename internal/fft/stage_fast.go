package fft

// fastStrategy32 serves power-of-two lengths. Each stage owns a packed run of
// twiddles (forward and conjugated) so the inner loop streams through them
// instead of striding across the full table.
type fastStrategy32 struct {
	n      int
	stages []Stage
	fwd    [][]complex64
	inv    [][]complex64
}

func newFastStrategy32(n int, tw []complex64, stages []Stage) *fastStrategy32 {
	s := &fastStrategy32{
		n:      n,
		stages: stages,
		fwd:    make([][]complex64, len(stages)),
		inv:    make([][]complex64, len(stages)),
	}

	for i, st := range stages {
		packed := packTwiddles(tw, st)
		conj := make([]complex64, len(packed))

		for k, w := range packed {
			conj[k] = conj64(w)
		}

		s.fwd[i] = packed
		s.inv[i] = conj
	}

	return s
}

func (s *fastStrategy32) Name() string { return "accelerated" }

func (s *fastStrategy32) Stage(dst, src []complex64, i int, inverse bool) {
	st := s.stages[i]

	tw := s.fwd[i]
	if inverse {
		tw = s.inv[i]
	}

	switch st.Radix {
	case 2:
		radix2Fast(dst, src, tw, st, s.n)
	case 4:
		radix4Fast(dst, src, tw, st, s.n, inverse)
	default:
		panic("fft: accelerated backend supports radix 2 and 4 only")
	}
}

func (s *fastStrategy32) Scale(x []complex64, f float32) {
	ScaleComplex64InPlace(x, f)
}

func radix2Fast(dst, src, tw []complex64, st Stage, n int) {
	step := n / 2
	m, f := st.M, st.F

	for fi := range f {
		in := src[fi*m : fi*m+m]
		in1 := src[fi*m+step : fi*m+step+m]
		out0 := dst[fi*2*m : fi*2*m+m]
		out1 := dst[fi*2*m+m : fi*2*m+2*m]

		if m == 1 {
			out0[0] = in[0] + in1[0]
			out1[0] = in[0] - in1[0]

			continue
		}

		for mi := range m {
			ar, ai := real(in[mi]), imag(in[mi])
			br, bi := real(in1[mi]), imag(in1[mi])

			if mi > 0 {
				w := tw[mi]
				wr, wi := real(w), imag(w)
				br, bi = br*wr-bi*wi, br*wi+bi*wr
			}

			out0[mi] = complex(ar+br, ai+bi)
			out1[mi] = complex(ar-br, ai-bi)
		}
	}
}

// radix4Fast runs a radix-4 stage with the twiddle multiply expanded into
// float32 arithmetic. The inverse uses conjugated twiddles and swaps the
// destinations of outputs 1 and 3.
func radix4Fast(dst, src, tw []complex64, st Stage, n int, inverse bool) {
	step := n / 4
	m, f := st.M, st.F

	o1, o3 := m, 3*m
	if inverse {
		o1, o3 = 3*m, m
	}

	for fi := range f {
		base := fi * m
		out := fi * 4 * m

		for mi := range m {
			in := base + mi

			a := src[in]
			b := src[in+step]
			c := src[in+2*step]
			d := src[in+3*step]

			ar, ai := real(a), imag(a)
			br, bi := real(b), imag(b)
			cr, ci := real(c), imag(c)
			dr, di := real(d), imag(d)

			if mi > 0 {
				w := tw[3*mi : 3*mi+3 : 3*mi+3]
				w1r, w1i := real(w[0]), imag(w[0])
				w2r, w2i := real(w[1]), imag(w[1])
				w3r, w3i := real(w[2]), imag(w[2])

				br, bi = br*w1r-bi*w1i, br*w1i+bi*w1r
				cr, ci = cr*w2r-ci*w2i, cr*w2i+ci*w2r
				dr, di = dr*w3r-di*w3i, dr*w3i+di*w3r
			}

			s0r, s0i := ar+cr, ai+ci
			s1r, s1i := ar-cr, ai-ci
			s2r, s2i := br+dr, bi+di
			s3r, s3i := br-dr, bi-di

			o := out + mi
			dst[o] = complex(s0r+s2r, s0i+s2i)
			dst[o+2*m] = complex(s0r-s2r, s0i-s2i)
			// s1 - i*s3 and s1 + i*s3
			dst[o+o1] = complex(s1r+s3i, s1i-s3r)
			dst[o+o3] = complex(s1r-s3i, s1i+s3r)
		}
	}
}
