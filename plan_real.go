package mrfft

import (
	"slices"
	"unsafe"

	"github.com/cwbudde/algo-mrfft/internal/fft"
)

// PlanR2C32 is a real float32 transform of one power-of-two length N >= 2.
//
// Forward packs the N real samples as N/2 complex values, runs the N/2 complex
// engine and unfolds the result into the N/2+1 non-redundant bins. Bins 0 and
// N/2 always carry an imaginary part of exactly zero. Inverse folds the bins
// back, runs the inverse engine and scales by 1/N.
//
// The concurrency and aliasing rules of PlanC2C32 apply.
type PlanR2C32 struct {
	n       int
	half    int
	backend Backend
	engine  *fft.Engine32
	super   []complex64
	work    []complex64
}

// NewPlanR2C32 builds a real float32 plan. n must be a power of two, n >= 2.
func NewPlanR2C32(n int, opts ...Option) (*PlanR2C32, error) {
	if err := checkLength(n, 2, true); err != nil {
		return nil, err
	}

	backend, err := resolveBackend(n, opts)
	if err != nil {
		return nil, err
	}

	half := n / 2

	engine, err := fft.NewEngine32(half, backend == BackendAccelerated)
	if err != nil {
		return nil, lengthError(n, backend, err)
	}

	return &PlanR2C32{
		n:       n,
		half:    half,
		backend: backend,
		engine:  engine,
		super:   fft.SuperTwiddles32(n),
		work:    make([]complex64, n),
	}, nil
}

// Len returns the number of real samples.
func (p *PlanR2C32) Len() int { return p.n }

// SpectrumLen returns the number of complex bins, N/2+1.
func (p *PlanR2C32) SpectrumLen() int { return p.half + 1 }

// Backend returns the backend bound at construction.
func (p *PlanR2C32) Backend() Backend { return p.backend }

// Factors returns a copy of the radix plan of the inner N/2 complex transform.
func (p *PlanR2C32) Factors() []int { return slices.Clone(p.engine.Factors()) }

// Forward computes the N/2+1 spectrum bins of src into dst.
// Caller guarantees: len(dst) >= N/2+1, len(src) >= N, no overlap.
func (p *PlanR2C32) Forward(dst []complex64, src []float32) {
	half := p.half

	if fft.Debug {
		fft.CheckBuffers("PlanR2C32.Forward", dst, half+1, src, p.n)
	}

	// z[k] = src[2k] + i*src[2k+1]
	packed := unsafe.Slice((*complex64)(unsafe.Pointer(&src[0])), half)

	z := p.work[:half]
	p.engine.Transform(z, packed, p.work[half:], false)

	fft.SplitForward32(dst[:half+1], z, p.super)
}

// Inverse reconstructs N real samples from the N/2+1 bins in src, scaled by
// 1/N. The imaginary parts of bins 0 and N/2 are ignored.
// Caller guarantees: len(dst) >= N, len(src) >= N/2+1, no overlap.
func (p *PlanR2C32) Inverse(dst []float32, src []complex64) {
	half := p.half

	if fft.Debug {
		fft.CheckBuffers("PlanR2C32.Inverse", dst, p.n, src, half+1)
	}

	z := p.work[half:]
	fft.SplitInverse32(z, src[:half+1], p.super)

	out := unsafe.Slice((*complex64)(unsafe.Pointer(&dst[0])), half)
	p.engine.Transform(out, z, p.work[:half], true)
}

// Destroy releases the plan's tables and scratch. Using the plan afterwards
// panics.
func (p *PlanR2C32) Destroy() {
	p.engine = nil
	p.super = nil
	p.work = nil
}
