package jsimd

import (
	_ "github.com/cwbudde/algo-jsimd/jsimd/internal/arch/generic"
	_ "github.com/cwbudde/algo-jsimd/jsimd/internal/arch/msa"
)
