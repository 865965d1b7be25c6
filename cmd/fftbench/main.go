// Command fftbench times every backend of every plan format and reports the
// forward-transform SNR against a float64 reference.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"strings"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"

	mrfft "github.com/cwbudde/algo-mrfft"
	"github.com/cwbudde/algo-mrfft/internal/cpu"
	"github.com/cwbudde/algo-mrfft/snr"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundTrip = "roundtrip"
)

var allFormats = []string{"c2c-f32", "r2c-f32", "c2c-q31", "c2c-q15", "r2c-q31", "r2c-q15"}

// benchCase binds one plan to its buffers. forward and inverse run a single
// transform; spectrum returns the last forward result as float bins scaled
// back to an unnormalized DFT.
type benchCase struct {
	forward  func()
	inverse  func()
	spectrum func() []complex64
}

type benchResult struct {
	backend mrfft.Backend
	nsPerOp float64
	snrDB   float64
}

func main() {
	var (
		sizeList   = flag.String("sizes", "240,1024,4096,16384", "comma-separated sizes")
		formatList = flag.String("formats", strings.Join(allFormats, ","), "comma-separated plan formats")
		iters      = flag.Int("iters", 50, "benchmark iterations")
		warmup     = flag.Int("warmup", 5, "warmup iterations")
		mode       = flag.String("mode", modeForward, "benchmark mode: forward, inverse, roundtrip, all")
		seed       = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	formats := parseFormats(*formatList)
	if len(formats) == 0 {
		fmt.Printf("no known formats in %q (known: %s)\n", *formatList, strings.Join(allFormats, ","))
		return
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s accelerated=%v iters=%d warmup=%d\n",
		features.Architecture, cpu.Accelerated(features), *iters, *warmup)
	fmt.Printf("%8s  %8s  %10s  %12s  %12s  %9s\n", "size", "format", "mode", "backend", "ns/op", "snr(dB)")

	rnd := rand.New(rand.NewSource(*seed))

	for _, n := range sizes {
		signal := make([]float64, 2*n)
		for i := range signal {
			signal[i] = rnd.Float64() - 0.5
		}

		for _, format := range formats {
			for _, m := range resolveModes(*mode) {
				results := benchmarkFormat(format, n, signal, *iters, *warmup, m)
				if len(results) == 0 {
					fmt.Printf("%8d  %8s  %10s  %12s\n", n, format, m, "unsupported")
					continue
				}

				slices.SortFunc(results, func(a, b benchResult) int {
					switch {
					case a.nsPerOp < b.nsPerOp:
						return -1
					case a.nsPerOp > b.nsPerOp:
						return 1
					default:
						return 0
					}
				})

				for _, res := range results {
					fmt.Printf("%8d  %8s  %10s  %12s  %12.1f  %9s\n",
						n, format, m, res.backend, res.nsPerOp, formatSNR(res.snrDB, m))
				}
			}
		}
	}
}

func benchmarkFormat(format string, n int, signal []float64, iters, warmup int, mode string) []benchResult {
	backends := []mrfft.Backend{mrfft.BackendReference, mrfft.BackendAccelerated}
	results := make([]benchResult, 0, len(backends))

	var want []complex64

	for _, backend := range backends {
		bc, err := newBenchCase(format, n, signal, backend)
		if err != nil {
			continue
		}

		// inverse mode needs a valid spectrum in the plan buffers.
		bc.forward()

		for range warmup {
			runMode(bc, mode)
		}

		runtime.GC()

		start := time.Now()

		for range iters {
			runMode(bc, mode)
		}

		elapsed := time.Since(start)

		res := benchResult{
			backend: backend,
			nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
		}

		if mode == modeForward {
			if want == nil {
				want = referenceSpectrum(format, n, signal)
			}

			bc.forward()
			got := bc.spectrum()
			res.snrDB = snr.Complex64(want[:len(got)], got)
		}

		results = append(results, res)
	}

	return results
}

func runMode(bc *benchCase, mode string) {
	switch mode {
	case modeInverse:
		bc.inverse()
	case modeRoundTrip:
		bc.forward()
		bc.inverse()
	default:
		bc.forward()
	}
}

func newBenchCase(format string, n int, signal []float64, backend mrfft.Backend) (*benchCase, error) {
	opt := mrfft.WithBackend(backend)
	scale := complex(float32(n), 0)

	switch format {
	case "c2c-f32":
		plan, err := mrfft.NewPlanC2C32(n, opt)
		if err != nil {
			return nil, err
		}

		src := complexSignal(n, signal)
		freq := make([]complex64, n)
		back := make([]complex64, n)

		return &benchCase{
			forward:  func() { plan.Forward(freq, src) },
			inverse:  func() { plan.Inverse(back, freq) },
			spectrum: func() []complex64 { return freq },
		}, nil

	case "r2c-f32":
		plan, err := mrfft.NewPlanR2C32(n, opt)
		if err != nil {
			return nil, err
		}

		src := realSignal(n, signal)
		freq := make([]complex64, plan.SpectrumLen())
		back := make([]float32, n)

		return &benchCase{
			forward:  func() { plan.Forward(freq, src) },
			inverse:  func() { plan.Inverse(back, freq) },
			spectrum: func() []complex64 { return freq },
		}, nil

	case "c2c-q31":
		plan, err := mrfft.NewPlanC2CQ31(n, opt)
		if err != nil {
			return nil, err
		}

		src := make([]mrfft.ComplexQ31, n)
		mrfft.Complex64ToQ31(src, complexSignal(n, signal))

		freq := make([]mrfft.ComplexQ31, n)
		back := make([]mrfft.ComplexQ31, n)
		out := make([]complex64, n)

		return &benchCase{
			forward: func() { plan.Forward(freq, src, true) },
			inverse: func() { plan.Inverse(back, freq, false) },
			spectrum: func() []complex64 {
				mrfft.Q31ToComplex64(out, freq)
				return scaleBins(out, scale)
			},
		}, nil

	case "c2c-q15":
		plan, err := mrfft.NewPlanC2CQ15(n, opt)
		if err != nil {
			return nil, err
		}

		src := make([]mrfft.ComplexQ15, n)
		mrfft.Complex64ToQ15(src, complexSignal(n, signal))

		freq := make([]mrfft.ComplexQ15, n)
		back := make([]mrfft.ComplexQ15, n)
		out := make([]complex64, n)

		return &benchCase{
			forward: func() { plan.Forward(freq, src, true) },
			inverse: func() { plan.Inverse(back, freq, false) },
			spectrum: func() []complex64 {
				mrfft.Q15ToComplex64(out, freq)
				return scaleBins(out, scale)
			},
		}, nil

	case "r2c-q31":
		plan, err := mrfft.NewPlanR2CQ31(n, opt)
		if err != nil {
			return nil, err
		}

		src := make([]int32, n)
		mrfft.Float32ToQ31(src, realSignal(n, signal))

		freq := make([]mrfft.ComplexQ31, plan.SpectrumLen())
		back := make([]int32, n)
		out := make([]complex64, plan.SpectrumLen())

		return &benchCase{
			forward: func() { plan.Forward(freq, src, true) },
			inverse: func() { plan.Inverse(back, freq, false) },
			spectrum: func() []complex64 {
				mrfft.Q31ToComplex64(out, freq)
				return scaleBins(out, scale)
			},
		}, nil

	case "r2c-q15":
		plan, err := mrfft.NewPlanR2CQ15(n, opt)
		if err != nil {
			return nil, err
		}

		src := make([]int16, n)
		mrfft.Float32ToQ15(src, realSignal(n, signal))

		freq := make([]mrfft.ComplexQ15, plan.SpectrumLen())
		back := make([]int16, n)
		out := make([]complex64, plan.SpectrumLen())

		return &benchCase{
			forward: func() { plan.Forward(freq, src, true) },
			inverse: func() { plan.Inverse(back, freq, false) },
			spectrum: func() []complex64 {
				mrfft.Q15ToComplex64(out, freq)
				return scaleBins(out, scale)
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown format %q", format)
}

// referenceSpectrum computes the unnormalized float64 DFT of the signal the
// format sees, after the same float32 rounding of the input.
func referenceSpectrum(format string, n int, signal []float64) []complex64 {
	var coeffs []complex128

	if strings.HasPrefix(format, "r2c") {
		seq := make([]float64, n)
		for i, v := range realSignal(n, signal) {
			seq[i] = float64(v)
		}

		coeffs = fourier.NewFFT(n).Coefficients(nil, seq)
	} else {
		seq := make([]complex128, n)
		for i, v := range complexSignal(n, signal) {
			seq[i] = complex128(v)
		}

		coeffs = fourier.NewCmplxFFT(n).Coefficients(nil, seq)
	}

	out := make([]complex64, len(coeffs))
	for i, v := range coeffs {
		out[i] = complex64(v)
	}

	return out
}

func complexSignal(n int, signal []float64) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(float32(signal[2*i]), float32(signal[2*i+1]))
	}

	return out
}

func realSignal(n int, signal []float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(signal[i])
	}

	return out
}

func scaleBins(x []complex64, s complex64) []complex64 {
	for i := range x {
		x[i] *= s
	}

	return x
}

func formatSNR(db float64, mode string) string {
	if mode != modeForward {
		return "-"
	}

	return fmt.Sprintf("%.1f", db)
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundTrip}
	case modeForward, modeInverse, modeRoundTrip:
		return []string{mode}
	default:
		return []string{modeForward}
	}
}

func parseFormats(list string) []string {
	var out []string

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if slices.Contains(allFormats, part) {
			out = append(out, part)
		}
	}

	return out
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
