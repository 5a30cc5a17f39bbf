//go:build !(linux && (mips || mipsle || mips64 || mips64le))

package cpu

const runtimeProbe = false
