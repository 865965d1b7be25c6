// Package fixed implements the Q31 and Q15 sample formats used by the
// fixed-point FFT paths.
package fixed

import "math"

// Int is the set of storage types for fixed-point samples.
type Int interface {
	~int16 | ~int32
}

// Complex is an interleaved fixed-point complex sample.
type Complex[T Int] struct {
	Re T
	Im T
}

// FracBits returns the number of fractional bits of T: 31 for int32, 15 for int16.
func FracBits[T Int]() uint {
	var zero T
	switch any(zero).(type) {
	case int16:
		return 15
	default:
		return 31
	}
}

// Max returns the largest representable value of T as an int64.
func Max[T Int]() int64 {
	return 1<<FracBits[T]() - 1
}

// Min returns the smallest representable value of T as an int64.
func Min[T Int]() int64 {
	return -(1 << FracBits[T]())
}

// Round shifts v right by FracBits[T] rounding half up, and truncates to T.
func Round[T Int](v int64) T {
	s := FracBits[T]()
	return T((v + 1<<(s-1)) >> s)
}

// Mul returns a*b in the format of T, rounded half up.
func Mul[T Int](a, b T) T {
	return Round[T](int64(a) * int64(b))
}

// CMul returns a*b. Each component is rounded once from its exact int64 sum.
func CMul[T Int](a, b Complex[T]) Complex[T] {
	ar, ai := int64(a.Re), int64(a.Im)
	br, bi := int64(b.Re), int64(b.Im)

	return Complex[T]{
		Re: Round[T](ar*br - ai*bi),
		Im: Round[T](ar*bi + ai*br),
	}
}

// CMulConj returns a*conj(b).
func CMulConj[T Int](a, b Complex[T]) Complex[T] {
	ar, ai := int64(a.Re), int64(a.Im)
	br, bi := int64(b.Re), int64(b.Im)

	return Complex[T]{
		Re: Round[T](ar*br + ai*bi),
		Im: Round[T](ai*br - ar*bi),
	}
}

// Add returns a+b, wrapping on overflow.
func Add[T Int](a, b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a-b, wrapping on overflow.
func Sub[T Int](a, b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Shr arithmetically shifts both components right by s.
func Shr[T Int](a Complex[T], s uint) Complex[T] {
	return Complex[T]{Re: a.Re >> s, Im: a.Im >> s}
}

// Conj returns the complex conjugate of a.
func Conj[T Int](a Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re, Im: -a.Im}
}

// FromFloat quantizes v (nominally in [-1, 1)) to T with round-half-up and
// saturation.
func FromFloat[T Int](v float64) T {
	scaled := math.Floor(0.5 + v*float64(Max[T]()+1))
	if math.IsNaN(scaled) {
		return 0
	}

	if scaled >= float64(Max[T]()) {
		return T(Max[T]())
	}

	if scaled <= float64(Min[T]()) {
		return T(Min[T]())
	}

	return T(int64(scaled))
}

// ToFloat converts a fixed-point value to its nominal real value.
func ToFloat[T Int](v T) float64 {
	return float64(v) / float64(Max[T]()+1)
}

// Coef quantizes a coefficient in [-1, 1] the way twiddle tables are built:
// floor(0.5 + MAX*v), clamped to [-MAX, MAX].
func Coef[T Int](v float64) T {
	hi := Max[T]()
	q := int64(math.Floor(0.5 + float64(hi)*v))

	if q > hi {
		q = hi
	}

	if q < -hi {
		q = -hi
	}

	return T(q)
}
