package fft

import (
	"fmt"

	"github.com/cwbudde/algo-mrfft/internal/fixed"
)

// Strategy32 runs the butterfly stages of a complex64 engine. An engine binds
// exactly one strategy when it is built.
type Strategy32 interface {
	Name() string
	// Stage runs stage i from src into dst. dst and src must not overlap.
	Stage(dst, src []complex64, i int, inverse bool)
	Scale(x []complex64, f float32)
}

// StrategyFixed runs the butterfly stages of a fixed-point engine.
type StrategyFixed[T fixed.Int] interface {
	Name() string
	Stage(dst, src []fixed.Complex[T], i int, inverse, scaled bool)
}

// Engine32 is a prepared complex64 mixed-radix transform of one length.
// It is immutable after construction; scratch is supplied per call.
type Engine32 struct {
	n        int
	factors  []int
	stages   []Stage
	strategy Strategy32
}

// NewEngine32 factors n for the requested backend and builds its tables.
func NewEngine32(n int, accelerated bool) (*Engine32, error) {
	path := PathGeneric
	if accelerated {
		path = PathPow2
	}

	factors, err := Factorize(n, path)
	if err != nil {
		return nil, fmt.Errorf("fft: n=%d path=%s: %w", n, path, err)
	}

	tw := Twiddles32(n)
	stages := Stages(n, factors)

	var strategy Strategy32
	if accelerated {
		strategy = newFastStrategy32(n, tw, stages)
	} else {
		strategy = newRefStrategy32(n, tw, stages)
	}

	return &Engine32{
		n:        n,
		factors:  factors,
		stages:   stages,
		strategy: strategy,
	}, nil
}

// Len returns the transform length.
func (e *Engine32) Len() int { return e.n }

// Factors returns the radix plan, innermost stage first.
func (e *Engine32) Factors() []int { return e.factors }

// Strategy returns the name of the bound strategy.
func (e *Engine32) Strategy() string { return e.strategy.Name() }

// Transform writes the DFT of src[:n] into dst[:n], or the inverse DFT scaled
// by 1/n. scratch must hold n elements. None of the three may overlap.
func (e *Engine32) Transform(dst, src, scratch []complex64, inverse bool) {
	n := e.n

	if len(e.stages) == 0 {
		copy(dst[:n], src[:n])
		return
	}

	var pp PingPong[complex64]
	pp.Reset(dst[:n], scratch[:n], len(e.stages))

	in := src[:n]
	for i := range e.stages {
		out := pp.Next()
		e.strategy.Stage(out, in, i, inverse)
		in = out
	}

	if Debug && !pp.Landed() {
		panic("fft: final stage did not land in the output buffer")
	}

	if inverse {
		e.strategy.Scale(dst[:n], 1/float32(n))
	}
}

// EngineFixed is a prepared power-of-two fixed-point transform.
type EngineFixed[T fixed.Int] struct {
	n        int
	factors  []int
	stages   []Stage
	strategy StrategyFixed[T]
}

// NewEngineFixed builds a fixed-point engine. Fixed-point lengths must be
// powers of two for both backends.
func NewEngineFixed[T fixed.Int](n int, accelerated bool) (*EngineFixed[T], error) {
	factors, err := Factorize(n, PathPow2)
	if err != nil {
		return nil, fmt.Errorf("fft: n=%d path=%s: %w", n, PathPow2, err)
	}

	tw := TwiddlesFixed[T](n)
	stages := Stages(n, factors)

	var strategy StrategyFixed[T]
	if accelerated {
		strategy = newFastStrategyFixed(n, tw, stages)
	} else {
		strategy = newRefStrategyFixed(n, tw, stages)
	}

	return &EngineFixed[T]{
		n:        n,
		factors:  factors,
		stages:   stages,
		strategy: strategy,
	}, nil
}

// Len returns the transform length.
func (e *EngineFixed[T]) Len() int { return e.n }

// Factors returns the radix plan, innermost stage first.
func (e *EngineFixed[T]) Factors() []int { return e.factors }

// Strategy returns the name of the bound strategy.
func (e *EngineFixed[T]) Strategy() string { return e.strategy.Name() }

// Transform writes the fixed-point DFT (or unnormalized inverse DFT) of
// src[:n] into dst[:n]. With scaled set every stage divides by its radix,
// so the result carries an overall 1/n.
func (e *EngineFixed[T]) Transform(dst, src, scratch []fixed.Complex[T], inverse, scaled bool) {
	n := e.n

	if len(e.stages) == 0 {
		copy(dst[:n], src[:n])
		return
	}

	var pp PingPong[fixed.Complex[T]]
	pp.Reset(dst[:n], scratch[:n], len(e.stages))

	in := src[:n]
	for i := range e.stages {
		out := pp.Next()
		e.strategy.Stage(out, in, i, inverse, scaled)
		in = out
	}

	if Debug && !pp.Landed() {
		panic("fft: final stage did not land in the output buffer")
	}
}
