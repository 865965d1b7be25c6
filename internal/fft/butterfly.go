package fft

// Radix-3 and radix-5 rotation constants.
const (
	sin60  = 0.86602540378443864676 // sin(pi/3)
	cos72  = 0.30901699437494742410 // cos(2*pi/5)
	cos144 = -0.80901699437494742410
	sin72  = 0.95105651629515357212
	sin144 = 0.58778525229247312917
)

// mulI returns i*a.
func mulI(a complex64) complex64 {
	return complex(-imag(a), real(a))
}

func conj64(a complex64) complex64 {
	return complex(real(a), -imag(a))
}

func butterfly2(a, b complex64) (complex64, complex64) {
	return a + b, a - b
}

// butterfly3 computes the 3-point DFT. dir is -1 forward, +1 inverse.
func butterfly3(a, b, c complex64, dir float32) (y0, y1, y2 complex64) {
	t := b + c
	d := mulI(b - c)
	m := a - t*0.5
	s := complex(dir*float32(sin60), 0)

	return a + t, m + s*d, m - s*d
}

// butterfly4 computes the 4-point DFT. The inverse swaps outputs 1 and 3.
func butterfly4(a, b, c, d complex64, inverse bool) (y0, y1, y2, y3 complex64) {
	s0 := a + c
	s1 := a - c
	s2 := b + d
	s3 := mulI(b - d)

	y0 = s0 + s2
	y2 = s0 - s2

	if inverse {
		return y0, s1 + s3, y2, s1 - s3
	}

	return y0, s1 - s3, y2, s1 + s3
}

// butterfly5 computes the 5-point DFT. dir is -1 forward, +1 inverse.
func butterfly5(a, b, c, d, e complex64, dir float32) (y0, y1, y2, y3, y4 complex64) {
	t1 := b + e
	t2 := c + d
	d1 := mulI(b - e)
	d2 := mulI(c - d)

	m1 := a + t1*complex(float32(cos72), 0) + t2*complex(float32(cos144), 0)
	m2 := a + t1*complex(float32(cos144), 0) + t2*complex(float32(cos72), 0)

	r1 := d1*complex(dir*float32(sin72), 0) + d2*complex(dir*float32(sin144), 0)
	r2 := d1*complex(dir*float32(sin144), 0) - d2*complex(dir*float32(sin72), 0)

	return a + t1 + t2, m1 + r1, m2 + r2, m2 - r2, m1 - r1
}
