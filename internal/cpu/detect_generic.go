//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no SIMD support; only the reference backend is used.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
