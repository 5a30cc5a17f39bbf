// Package msa registers the MIPS SIMD Architecture backend. Its kernels are
// written against the 128-bit primitives in internal/simd, lane for lane as
// the MSA instruction sequences execute them.
package msa

import (
	"github.com/cwbudde/algo-jsimd/internal/cpu"
	"github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "msa",
		Requires:  cpu.MSA,
		Priority:  10,
		IDCTIslow: idctIslow,
	})
}
