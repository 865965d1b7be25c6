package mrfft

import (
	"slices"

	"github.com/cwbudde/algo-mrfft/internal/fft"
	"github.com/cwbudde/algo-mrfft/internal/fixed"
)

// fixedC2C holds the state shared by the Q31 and Q15 complex plans.
type fixedC2C[T fixed.Int] struct {
	n       int
	backend Backend
	engine  *fft.EngineFixed[T]
	scratch []fixed.Complex[T]
}

func newFixedC2C[T fixed.Int](n int, opts []Option) (fixedC2C[T], error) {
	if err := checkLength(n, 1, true); err != nil {
		return fixedC2C[T]{}, err
	}

	backend, err := resolveBackend(n, opts)
	if err != nil {
		return fixedC2C[T]{}, err
	}

	engine, err := fft.NewEngineFixed[T](n, backend == BackendAccelerated)
	if err != nil {
		return fixedC2C[T]{}, lengthError(n, backend, err)
	}

	return fixedC2C[T]{
		n:       n,
		backend: backend,
		engine:  engine,
		scratch: make([]fixed.Complex[T], n),
	}, nil
}

func (p *fixedC2C[T]) transform(op string, dst, src []fixed.Complex[T], inverse, scaled bool) {
	if fft.Debug {
		fft.CheckBuffers(op, dst, p.n, src, p.n)
	}

	p.engine.Transform(dst, src, p.scratch, inverse, scaled)
}

func (p *fixedC2C[T]) destroy() {
	p.engine = nil
	p.scratch = nil
}

// PlanC2CQ31 is a complex Q31 transform of one power-of-two length.
//
// With scaled set each stage shifts its inputs right by log2 of its radix, so
// both directions carry an overall 1/N and cannot overflow. Unscaled
// transforms wrap on overflow; keeping inputs small enough is the caller's
// job. The concurrency and aliasing rules of PlanC2C32 apply.
type PlanC2CQ31 struct {
	p fixedC2C[int32]
}

// NewPlanC2CQ31 builds a Q31 complex plan. n must be a power of two.
func NewPlanC2CQ31(n int, opts ...Option) (*PlanC2CQ31, error) {
	p, err := newFixedC2C[int32](n, opts)
	if err != nil {
		return nil, err
	}

	return &PlanC2CQ31{p: p}, nil
}

// Len returns the transform length.
func (p *PlanC2CQ31) Len() int { return p.p.n }

// Backend returns the backend bound at construction.
func (p *PlanC2CQ31) Backend() Backend { return p.p.backend }

// Factors returns a copy of the radix plan, innermost stage first.
func (p *PlanC2CQ31) Factors() []int { return slices.Clone(p.p.engine.Factors()) }

// Forward computes the DFT of src into dst.
func (p *PlanC2CQ31) Forward(dst, src []ComplexQ31, scaled bool) {
	p.p.transform("PlanC2CQ31.Forward", dst, src, false, scaled)
}

// Inverse computes the unnormalized inverse DFT of src into dst; with scaled
// set the result is divided by N.
func (p *PlanC2CQ31) Inverse(dst, src []ComplexQ31, scaled bool) {
	p.p.transform("PlanC2CQ31.Inverse", dst, src, true, scaled)
}

// Transform runs Forward or Inverse depending on inverse.
func (p *PlanC2CQ31) Transform(dst, src []ComplexQ31, inverse, scaled bool) {
	p.p.transform("PlanC2CQ31.Transform", dst, src, inverse, scaled)
}

// Destroy releases the plan's tables and scratch.
func (p *PlanC2CQ31) Destroy() { p.p.destroy() }

// PlanC2CQ15 is the Q15 counterpart of PlanC2CQ31.
type PlanC2CQ15 struct {
	p fixedC2C[int16]
}

// NewPlanC2CQ15 builds a Q15 complex plan. n must be a power of two.
func NewPlanC2CQ15(n int, opts ...Option) (*PlanC2CQ15, error) {
	p, err := newFixedC2C[int16](n, opts)
	if err != nil {
		return nil, err
	}

	return &PlanC2CQ15{p: p}, nil
}

// Len returns the transform length.
func (p *PlanC2CQ15) Len() int { return p.p.n }

// Backend returns the backend bound at construction.
func (p *PlanC2CQ15) Backend() Backend { return p.p.backend }

// Factors returns a copy of the radix plan, innermost stage first.
func (p *PlanC2CQ15) Factors() []int { return slices.Clone(p.p.engine.Factors()) }

// Forward computes the DFT of src into dst.
func (p *PlanC2CQ15) Forward(dst, src []ComplexQ15, scaled bool) {
	p.p.transform("PlanC2CQ15.Forward", dst, src, false, scaled)
}

// Inverse computes the unnormalized inverse DFT of src into dst; with scaled
// set the result is divided by N.
func (p *PlanC2CQ15) Inverse(dst, src []ComplexQ15, scaled bool) {
	p.p.transform("PlanC2CQ15.Inverse", dst, src, true, scaled)
}

// Transform runs Forward or Inverse depending on inverse.
func (p *PlanC2CQ15) Transform(dst, src []ComplexQ15, inverse, scaled bool) {
	p.p.transform("PlanC2CQ15.Transform", dst, src, inverse, scaled)
}

// Destroy releases the plan's tables and scratch.
func (p *PlanC2CQ15) Destroy() { p.p.destroy() }
