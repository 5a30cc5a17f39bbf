// Package generic registers the fallback backend. It accelerates nothing:
// every query answers false and callers use their scalar paths.
package generic

import "github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "generic",
		Requires: 0,
		Priority: 0,
	})
}
