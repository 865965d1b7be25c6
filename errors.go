package mrfft

import "errors"

// Sentinel errors returned by plan constructors.
var (
	// ErrInvalidLength is returned when a length is zero, negative, larger
	// than MaxLength, or cannot be factored for the requested plan family and
	// backend. Complex float32 plans on the reference backend accept
	// 2^a*3^b*5^c with a >= 1 (and 1); every other plan needs a power of two.
	ErrInvalidLength = errors.New("mrfft: invalid FFT length")

	// ErrUnknownBackend is returned when WithBackend is given a value outside
	// the defined Backend constants.
	ErrUnknownBackend = errors.New("mrfft: unknown backend")
)
