// Package cpu reports whether the current processor can run the accelerated
// FFT kernels.
//
// Detection runs lazily on the first call to DetectFeatures and is cached.
// Tests can pin a feature set with SetForcedFeatures.
package cpu

import "sync"

// Features describes CPU capabilities relevant to FFT backend selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2 bool
	HasAVX2 bool

	// ARM SIMD features
	HasNEON bool

	// ForceGeneric disables the accelerated backend regardless of hardware.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// Accelerated reports whether f allows the accelerated FFT backend.
func Accelerated(f Features) bool {
	if f.ForceGeneric {
		return false
	}

	return f.HasNEON || f.HasAVX2 || f.HasSSE2
}

// HasAccelerated is Accelerated(DetectFeatures()).
func HasAccelerated() bool {
	return Accelerated(DetectFeatures())
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()

	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
