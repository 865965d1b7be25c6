package mrfft

import (
	"slices"
	"unsafe"

	"github.com/cwbudde/algo-mrfft/internal/fft"
	"github.com/cwbudde/algo-mrfft/internal/fixed"
)

type fixedR2C[T fixed.Int] struct {
	n       int
	half    int
	backend Backend
	engine  *fft.EngineFixed[T]
	super   []fixed.Complex[T]
	work    []fixed.Complex[T]
}

func newFixedR2C[T fixed.Int](n int, opts []Option) (fixedR2C[T], error) {
	if err := checkLength(n, 2, true); err != nil {
		return fixedR2C[T]{}, err
	}

	backend, err := resolveBackend(n, opts)
	if err != nil {
		return fixedR2C[T]{}, err
	}

	half := n / 2

	engine, err := fft.NewEngineFixed[T](half, backend == BackendAccelerated)
	if err != nil {
		return fixedR2C[T]{}, lengthError(n, backend, err)
	}

	return fixedR2C[T]{
		n:       n,
		half:    half,
		backend: backend,
		engine:  engine,
		super:   fft.SuperTwiddlesFixed[T](n),
		work:    make([]fixed.Complex[T], n),
	}, nil
}

func (p *fixedR2C[T]) forward(op string, dst []fixed.Complex[T], src []T, scaled bool) {
	half := p.half

	if fft.Debug {
		fft.CheckBuffers(op, dst, half+1, src, p.n)
	}

	packed := unsafe.Slice((*fixed.Complex[T])(unsafe.Pointer(&src[0])), half)

	z := p.work[:half]
	p.engine.Transform(z, packed, p.work[half:], false, scaled)

	fft.SplitForwardFixed(dst[:half+1], z, p.super, scaled)
}

func (p *fixedR2C[T]) inverse(op string, dst []T, src []fixed.Complex[T], scaled bool) {
	half := p.half

	if fft.Debug {
		fft.CheckBuffers(op, dst, p.n, src, half+1)
	}

	z := p.work[half:]
	fft.SplitInverseFixed(z, src[:half+1], p.super, scaled)

	out := unsafe.Slice((*fixed.Complex[T])(unsafe.Pointer(&dst[0])), half)
	p.engine.Transform(out, z, p.work[:half], true, scaled)
}

func (p *fixedR2C[T]) destroy() {
	p.engine = nil
	p.super = nil
	p.work = nil
}

// PlanR2CQ31 is a real Q31 transform of one power-of-two length N >= 2.
//
// Forward with scaled set returns X/N; unscaled returns X and may wrap.
// Inverse with scaled set reconstructs x from X; unscaled returns N*x.
// A scaled Forward followed by an unscaled Inverse is therefore a round trip.
type PlanR2CQ31 struct {
	p fixedR2C[int32]
}

// NewPlanR2CQ31 builds a Q31 real plan. n must be a power of two, n >= 2.
func NewPlanR2CQ31(n int, opts ...Option) (*PlanR2CQ31, error) {
	p, err := newFixedR2C[int32](n, opts)
	if err != nil {
		return nil, err
	}

	return &PlanR2CQ31{p: p}, nil
}

// Len returns the number of real samples.
func (p *PlanR2CQ31) Len() int { return p.p.n }

// SpectrumLen returns the number of complex bins, N/2+1.
func (p *PlanR2CQ31) SpectrumLen() int { return p.p.half + 1 }

// Backend returns the backend bound at construction.
func (p *PlanR2CQ31) Backend() Backend { return p.p.backend }

// Factors returns a copy of the radix plan of the inner N/2 complex transform.
func (p *PlanR2CQ31) Factors() []int { return slices.Clone(p.p.engine.Factors()) }

// Forward computes the N/2+1 spectrum bins of src into dst.
func (p *PlanR2CQ31) Forward(dst []ComplexQ31, src []int32, scaled bool) {
	p.p.forward("PlanR2CQ31.Forward", dst, src, scaled)
}

// Inverse reconstructs N real samples from the N/2+1 bins in src.
func (p *PlanR2CQ31) Inverse(dst []int32, src []ComplexQ31, scaled bool) {
	p.p.inverse("PlanR2CQ31.Inverse", dst, src, scaled)
}

// Destroy releases the plan's tables and scratch.
func (p *PlanR2CQ31) Destroy() { p.p.destroy() }

// PlanR2CQ15 is the Q15 counterpart of PlanR2CQ31.
type PlanR2CQ15 struct {
	p fixedR2C[int16]
}

// NewPlanR2CQ15 builds a Q15 real plan. n must be a power of two, n >= 2.
func NewPlanR2CQ15(n int, opts ...Option) (*PlanR2CQ15, error) {
	p, err := newFixedR2C[int16](n, opts)
	if err != nil {
		return nil, err
	}

	return &PlanR2CQ15{p: p}, nil
}

// Len returns the number of real samples.
func (p *PlanR2CQ15) Len() int { return p.p.n }

// SpectrumLen returns the number of complex bins, N/2+1.
func (p *PlanR2CQ15) SpectrumLen() int { return p.p.half + 1 }

// Backend returns the backend bound at construction.
func (p *PlanR2CQ15) Backend() Backend { return p.p.backend }

// Factors returns a copy of the radix plan of the inner N/2 complex transform.
func (p *PlanR2CQ15) Factors() []int { return slices.Clone(p.p.engine.Factors()) }

// Forward computes the N/2+1 spectrum bins of src into dst.
func (p *PlanR2CQ15) Forward(dst []ComplexQ15, src []int16, scaled bool) {
	p.p.forward("PlanR2CQ15.Forward", dst, src, scaled)
}

// Inverse reconstructs N real samples from the N/2+1 bins in src.
func (p *PlanR2CQ15) Inverse(dst []int16, src []ComplexQ15, scaled bool) {
	p.p.inverse("PlanR2CQ15.Inverse", dst, src, scaled)
}

// Destroy releases the plan's tables and scratch.
func (p *PlanR2CQ15) Destroy() { p.p.destroy() }
