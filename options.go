package mrfft

import (
	"fmt"

	"github.com/cwbudde/algo-mrfft/internal/cpu"
	"github.com/cwbudde/algo-mrfft/internal/fft"
)

// Backend selects the butterfly implementation a plan binds at construction.
type Backend int

const (
	// BackendAuto picks BackendAccelerated when the CPU probe reports
	// support and the length is a power of two, and BackendReference otherwise.
	BackendAuto Backend = iota

	// BackendReference runs the portable radix-2/3/4/5 stages.
	BackendReference

	// BackendAccelerated runs the power-of-two radix-4/2 stages with packed
	// twiddles and vectorized scaling.
	BackendAccelerated
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendReference:
		return "reference"
	case BackendAccelerated:
		return "accelerated"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Option configures a plan constructor.
type Option func(*options)

type options struct {
	backend Backend
}

// WithBackend forces the backend instead of probing the CPU.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// resolveBackend applies opts and settles BackendAuto. The CPU probe is
// consulted here once per plan and never again.
func resolveBackend(n int, opts []Option) (Backend, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch o.backend {
	case BackendReference, BackendAccelerated:
		return o.backend, nil
	case BackendAuto:
		if fft.IsPowerOfTwo(n) && cpu.HasAccelerated() {
			return BackendAccelerated, nil
		}

		return BackendReference, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownBackend, int(o.backend))
	}
}

func checkLength(n, minLen int, pow2 bool) error {
	if n < minLen || n > MaxLength || (pow2 && !fft.IsPowerOfTwo(n)) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return nil
}

func lengthError(n int, b Backend, err error) error {
	return fmt.Errorf("%w: %d on %s backend: %w", ErrInvalidLength, n, b, err)
}
