package fft

// refStrategy32 runs every stage straight from the full N-entry twiddle
// table. It accepts radices 2, 3, 4 and 5.
type refStrategy32 struct {
	n      int
	tw     []complex64
	stages []Stage
}

func newRefStrategy32(n int, tw []complex64, stages []Stage) *refStrategy32 {
	return &refStrategy32{n: n, tw: tw, stages: stages}
}

func (s *refStrategy32) Name() string { return "reference" }

func (s *refStrategy32) Stage(dst, src []complex64, i int, inverse bool) {
	st := s.stages[i]

	switch st.Radix {
	case 2:
		radix2Ref(dst, src, s.tw, st, s.n, inverse)
	case 3:
		radix3Ref(dst, src, s.tw, st, s.n, inverse)
	case 4:
		radix4Ref(dst, src, s.tw, st, s.n, inverse)
	case 5:
		radix5Ref(dst, src, s.tw, st, s.n, inverse)
	default:
		panic("fft: unsupported radix")
	}
}

func (s *refStrategy32) Scale(x []complex64, f float32) {
	scale := complex(f, 0)
	for i := range x {
		x[i] *= scale
	}
}

// rotate multiplies v by W_N^k, or by its conjugate for the inverse.
func rotate(v complex64, tw []complex64, k int, inverse bool) complex64 {
	w := tw[k]
	if inverse {
		w = conj64(w)
	}

	return v * w
}

func radix2Ref(dst, src, tw []complex64, st Stage, n int, inverse bool) {
	step := n / 2
	m, f := st.M, st.F

	for fi := range f {
		for mi := range m {
			in := fi*m + mi
			out := fi*2*m + mi

			a := src[in]
			b := src[in+step]

			if mi > 0 {
				b = rotate(b, tw, mi*f, inverse)
			}

			dst[out], dst[out+m] = butterfly2(a, b)
		}
	}
}

func radix3Ref(dst, src, tw []complex64, st Stage, n int, inverse bool) {
	step := n / 3
	m, f := st.M, st.F

	dir := float32(-1)
	if inverse {
		dir = 1
	}

	for fi := range f {
		for mi := range m {
			in := fi*m + mi
			out := fi*3*m + mi

			a := src[in]
			b := src[in+step]
			c := src[in+2*step]

			if mi > 0 {
				b = rotate(b, tw, mi*f, inverse)
				c = rotate(c, tw, 2*mi*f, inverse)
			}

			dst[out], dst[out+m], dst[out+2*m] = butterfly3(a, b, c, dir)
		}
	}
}

func radix4Ref(dst, src, tw []complex64, st Stage, n int, inverse bool) {
	step := n / 4
	m, f := st.M, st.F

	for fi := range f {
		for mi := range m {
			in := fi*m + mi
			out := fi*4*m + mi

			a := src[in]
			b := src[in+step]
			c := src[in+2*step]
			d := src[in+3*step]

			if mi > 0 {
				b = rotate(b, tw, mi*f, inverse)
				c = rotate(c, tw, 2*mi*f, inverse)
				d = rotate(d, tw, 3*mi*f, inverse)
			}

			dst[out], dst[out+m], dst[out+2*m], dst[out+3*m] = butterfly4(a, b, c, d, inverse)
		}
	}
}

func radix5Ref(dst, src, tw []complex64, st Stage, n int, inverse bool) {
	step := n / 5
	m, f := st.M, st.F

	dir := float32(-1)
	if inverse {
		dir = 1
	}

	for fi := range f {
		for mi := range m {
			in := fi*m + mi
			out := fi*5*m + mi

			a := src[in]
			b := src[in+step]
			c := src[in+2*step]
			d := src[in+3*step]
			e := src[in+4*step]

			if mi > 0 {
				b = rotate(b, tw, mi*f, inverse)
				c = rotate(c, tw, 2*mi*f, inverse)
				d = rotate(d, tw, 3*mi*f, inverse)
				e = rotate(e, tw, 4*mi*f, inverse)
			}

			dst[out], dst[out+m], dst[out+2*m], dst[out+3*m], dst[out+4*m] = butterfly5(a, b, c, d, e, dir)
		}
	}
}
