package cpu

import vmcpu "github.com/cwbudde/algo-vecmath/cpu"

// HostVectorUnit names the general-purpose SIMD level of the host as seen by
// the vecmath kernels, for example "AVX2" or "NEON". It is informational
// only and never grants a capability bit.
func HostVectorUnit() string {
	f := vmcpu.DetectFeatures()
	switch {
	case f.ForceGeneric:
		return vmcpu.SIMDNone.String()
	case f.HasAVX2:
		return vmcpu.SIMDAVX2.String()
	case f.HasSSE2:
		return vmcpu.SIMDSSE2.String()
	case f.HasNEON:
		return vmcpu.SIMDNEON.String()
	default:
		return vmcpu.SIMDNone.String()
	}
}
