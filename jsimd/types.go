package jsimd

import (
	"unsafe"

	"github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"
)

// Interface data types shared with the surrounding codec.
type (
	Dimension    = registry.Dimension
	Coef         = registry.Coef
	DCTElem      = registry.DCTElem
	IslowMult    = registry.IslowMult
	IfastMult    = registry.IfastMult
	Block        = registry.Block
	SampleRows   = registry.SampleRows
	SampleImage  = registry.SampleImage
	Component    = registry.Component
	ImageInfo    = registry.ImageInfo
	DerivedTable = registry.DerivedTable
)

// Params is the static configuration a kernel is specialised for. A query
// answers false when the caller's configuration differs from what the
// kernel was written against in any field the operation depends on.
type Params struct {
	SampleBits     int // bits per sample
	DCTSize        int // block edge length
	DimensionSize  int // bytes in Dimension
	CoefSize       int // bytes in Coef
	DCTElemSize    int // bytes in DCTElem
	IslowMultSize  int // bytes in IslowMult
	IfastMultSize  int // bytes in IfastMult
	IfastScaleBits int // fractional bits of the fast IDCT multipliers
	RGBPixelSize   int // bytes per interleaved RGB pixel
}

// DefaultParams returns the configuration of this package's own types:
// 8-bit samples, 8x8 blocks, 3-byte RGB pixels.
func DefaultParams() Params {
	return Params{
		SampleBits:     8,
		DCTSize:        8,
		DimensionSize:  int(unsafe.Sizeof(Dimension(0))),
		CoefSize:       int(unsafe.Sizeof(Coef(0))),
		DCTElemSize:    int(unsafe.Sizeof(DCTElem(0))),
		IslowMultSize:  int(unsafe.Sizeof(IslowMult(0))),
		IfastMultSize:  int(unsafe.Sizeof(IfastMult(0))),
		IfastScaleBits: 2,
		RGBPixelSize:   3,
	}
}
