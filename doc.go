// Package mrfft implements mixed-radix FFTs over float32, Q31 and Q15 data.
//
// A plan is built once per length and data format and then reused:
//
//	plan, err := mrfft.NewPlanC2C32(480)
//	if err != nil {
//		return err
//	}
//	defer plan.Destroy()
//
//	plan.Forward(freq, samples)
//	plan.Inverse(samples, freq) // scaled by 1/N
//
// Lengths are factored into radix 2, 3, 4 and 5 stages. Complex float32 plans
// on the reference backend accept any 2^a*3^b*5^c with a >= 1; the
// accelerated backend, the fixed-point plans and all real plans need a power
// of two.
//
// Forward transforms are never scaled. Float inverse transforms are scaled by
// 1/N. Fixed-point transforms take a scaled flag that divides by N over the
// stages instead (see PlanC2CQ31).
//
// The backend is chosen once when the plan is built, either from the CPU
// probe (BackendAuto) or explicitly with WithBackend. Transform methods do no
// validation; build with the mrfftdebug tag to check buffer lengths and
// aliasing on every call.
package mrfft
