package cpu

import (
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvForceNone = "JSIMD_FORCENONE"
	EnvForceMSA  = "JSIMD_FORCEMSA"
	EnvNoHuffEnc = "JSIMD_NOHUFFENC"
	EnvCPUInfo   = "JSIMD_CPUINFO"
)

// Config holds the environment overrides that influence resolution and
// dispatch.
type Config struct {
	ForceNone   bool   // report no extensions at all
	ForceMSA    bool   // report MSA without probing
	NoHuffEnc   bool   // never accelerate Huffman block encoding
	CPUInfoPath string // descriptor scanned by the runtime probe
}

// LoadConfig reads the overrides from the environment.
func LoadConfig() Config {
	cfg := Config{
		ForceNone:   envBool(EnvForceNone),
		ForceMSA:    envBool(EnvForceMSA),
		NoHuffEnc:   envBool(EnvNoHuffEnc),
		CPUInfoPath: os.Getenv(EnvCPUInfo),
	}
	if cfg.CPUInfoPath == "" {
		cfg.CPUInfoPath = DefaultCPUInfoPath
	}
	return cfg
}

// Prober returns the descriptor prober for cfg.
func (c Config) Prober() Prober {
	path := c.CPUInfoPath
	if path == "" {
		path = DefaultCPUInfoPath
	}
	return NewProber(path, "msa")
}

// envBool reports whether the variable is set to a true value. Any
// non-empty value that does not parse as a bool also counts as true.
func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
