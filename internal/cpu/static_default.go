//go:build !((mips || mipsle || mips64 || mips64le) && jsimd_msa)

package cpu

const staticMSA = false
