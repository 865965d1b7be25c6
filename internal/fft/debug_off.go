//go:build !mrfftdebug

package fft

// Debug enables precondition checks on every transform call.
const Debug = false
