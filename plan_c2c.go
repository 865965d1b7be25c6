package mrfft

import (
	"slices"

	"github.com/cwbudde/algo-mrfft/internal/fft"
)

// PlanC2C32 is a complex float32 transform of one fixed length.
//
// The plan owns its twiddle table, radix plan and scratch buffer. Transform
// calls perform no validation: dst and src must each hold Len() elements and
// must not overlap. A plan must not be used by more than one goroutine at a
// time because every call writes the shared scratch buffer; separate plans
// for the same length are independent.
type PlanC2C32 struct {
	n       int
	backend Backend
	engine  *fft.Engine32
	scratch []complex64
}

// NewPlanC2C32 builds a complex float32 plan for length n.
//
// On the reference backend n may be 1 or any 2^a*3^b*5^c with a >= 1. The
// accelerated backend needs a power of two.
func NewPlanC2C32(n int, opts ...Option) (*PlanC2C32, error) {
	if err := checkLength(n, 1, false); err != nil {
		return nil, err
	}

	backend, err := resolveBackend(n, opts)
	if err != nil {
		return nil, err
	}

	engine, err := fft.NewEngine32(n, backend == BackendAccelerated)
	if err != nil {
		return nil, lengthError(n, backend, err)
	}

	return &PlanC2C32{
		n:       n,
		backend: backend,
		engine:  engine,
		scratch: make([]complex64, n),
	}, nil
}

// Len returns the transform length.
func (p *PlanC2C32) Len() int { return p.n }

// Backend returns the backend bound at construction.
func (p *PlanC2C32) Backend() Backend { return p.backend }

// Factors returns a copy of the radix plan, innermost stage first.
func (p *PlanC2C32) Factors() []int { return slices.Clone(p.engine.Factors()) }

// Forward computes the unscaled DFT of src into dst.
func (p *PlanC2C32) Forward(dst, src []complex64) { p.Transform(dst, src, false) }

// Inverse computes the inverse DFT of src into dst, scaled by 1/N.
func (p *PlanC2C32) Inverse(dst, src []complex64) { p.Transform(dst, src, true) }

// Transform runs Forward or Inverse depending on inverse.
func (p *PlanC2C32) Transform(dst, src []complex64, inverse bool) {
	if fft.Debug {
		fft.CheckBuffers("PlanC2C32.Transform", dst, p.n, src, p.n)
	}

	p.engine.Transform(dst, src, p.scratch, inverse)
}

// Destroy releases the plan's tables and scratch. Using the plan afterwards
// panics.
func (p *PlanC2C32) Destroy() {
	p.engine = nil
	p.scratch = nil
}
