package fft

import "errors"

// MaxLength is the largest transform length a plan accepts.
const MaxLength = 1 << 22

// ErrFactor is returned when a length cannot be decomposed into the radix set
// of the requested path.
var ErrFactor = errors.New("fft: length cannot be factored")

// Path selects which radix set a RadixPlan may use.
type Path int

const (
	// PathGeneric allows radices 2, 3, 4 and 5 and serves the reference float backend.
	PathGeneric Path = iota

	// PathPow2 allows only radix 4 plus a single radix 2. It serves the
	// accelerated float backend and every fixed-point backend.
	PathPow2
)

func (p Path) String() string {
	switch p {
	case PathGeneric:
		return "generic"
	case PathPow2:
		return "pow2"
	default:
		return "unknown"
	}
}

// Factorize decomposes n into the radix plan used by the butterfly engine.
//
// Factors of 4 are extracted greedily first, then (generic path only) 2, 3
// and 5 in that order. The returned plan lists radices in execution order,
// innermost stage first, which is the reverse of extraction order. n == 1
// yields an empty plan.
func Factorize(n int, path Path) ([]int, error) {
	if n < 1 || n > MaxLength {
		return nil, ErrFactor
	}

	var extracted []int

	rest := n
	for rest%4 == 0 {
		extracted = append(extracted, 4)
		rest /= 4
	}

	switch path {
	case PathPow2:
		if rest == 2 {
			extracted = append(extracted, 2)
			rest = 1
		}
	case PathGeneric:
		if rest > 1 && n%2 != 0 {
			// Odd lengths other than 1 are outside the 2^a*3^b*5^c, a>0 domain.
			return nil, ErrFactor
		}

		for _, r := range [...]int{2, 3, 5} {
			for rest%r == 0 {
				extracted = append(extracted, r)
				rest /= r
			}
		}
	default:
		return nil, ErrFactor
	}

	if rest != 1 {
		return nil, ErrFactor
	}

	plan := make([]int, len(extracted))
	for i, r := range extracted {
		plan[len(plan)-1-i] = r
	}

	return plan, nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Stage describes one butterfly pass.
//
// Stage s reads src[(f*M+m) + j*(N/Radix)] for j < Radix, multiplies input j
// by W_N^(j*m*F) and writes output k to dst[f*Radix*M + m + k*M].
type Stage struct {
	Radix int
	M     int // product of the radices of earlier stages
	F     int // N / (M*Radix)
}

// Stages expands a radix plan for length n into per-stage strides.
func Stages(n int, factors []int) []Stage {
	stages := make([]Stage, len(factors))

	m := 1
	for i, r := range factors {
		stages[i] = Stage{Radix: r, M: m, F: n / (m * r)}
		m *= r
	}

	return stages
}
