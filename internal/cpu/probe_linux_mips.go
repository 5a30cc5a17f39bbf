//go:build linux && (mips || mipsle || mips64 || mips64le)

package cpu

// runtimeProbe enables the /proc/cpuinfo scan. Older kernels do not expose
// MSA through HWCAP, so the text descriptor is the fallback.
const runtimeProbe = true
