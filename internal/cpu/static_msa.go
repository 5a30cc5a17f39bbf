//go:build (mips || mipsle || mips64 || mips64le) && jsimd_msa

package cpu

// staticMSA is set when the binary targets an MSA-capable core, so no
// runtime probing is needed.
const staticMSA = true
