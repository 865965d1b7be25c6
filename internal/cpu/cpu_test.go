package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if f.ForceGeneric {
		t.Fatal("ForceGeneric set by hardware detection")
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	a := DetectFeatures()
	b := DetectFeatures()

	if a != b {
		t.Fatalf("detection not stable: %+v vs %+v", a, b)
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	tests := []struct {
		name     string
		features Features
		want     bool
	}{
		{"none", Features{}, false},
		{"sse2", Features{HasSSE2: true}, true},
		{"avx2", Features{HasSSE2: true, HasAVX2: true}, true},
		{"neon", Features{HasNEON: true}, true},
		{"forced generic", Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, false},
	}

	for _, tt := range tests {
		SetForcedFeatures(tt.features)

		if got := DetectFeatures(); got != tt.features {
			t.Errorf("%s: DetectFeatures() = %+v, want %+v", tt.name, got, tt.features)
		}

		if got := HasAccelerated(); got != tt.want {
			t.Errorf("%s: HasAccelerated() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResetDetectionClearsOverride(t *testing.T) {
	SetForcedFeatures(Features{ForceGeneric: true, Architecture: "fake"})
	ResetDetection()

	if got := DetectFeatures().Architecture; got != runtime.GOARCH {
		t.Fatalf("Architecture after reset = %q, want %q", got, runtime.GOARCH)
	}
}
