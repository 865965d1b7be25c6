package mrfft

import "github.com/cwbudde/algo-mrfft/internal/fixed"

// ComplexQ31 is a complex sample with Q31 components (31 fractional bits).
// Slices of ComplexQ31 are laid out as interleaved re, im pairs.
type ComplexQ31 = fixed.Complex[int32]

// ComplexQ15 is a complex sample with Q15 components (15 fractional bits).
type ComplexQ15 = fixed.Complex[int16]

// MaxLength is the largest transform length any plan accepts.
const MaxLength = 1 << 22
