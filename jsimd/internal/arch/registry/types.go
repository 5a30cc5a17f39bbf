package registry

// Dimension is an image coordinate or row index.
type Dimension uint32

// Coef is one quantized DCT coefficient.
type Coef int16

// DCTElem is a forward-DCT workspace element.
type DCTElem int16

// IslowMult is a dequantization multiplier for the accurate integer IDCTs.
type IslowMult int16

// IfastMult is a dequantization multiplier for the fast integer IDCT,
// pre-scaled by the AAN factors.
type IfastMult int16

// Block is one 8x8 coefficient block in natural (row-major) order.
type Block [64]Coef

// SampleRows is a list of sample rows of one component.
type SampleRows [][]byte

// SampleImage holds the sample rows of every component.
type SampleImage []SampleRows

// Component describes one image component as the block kernels see it.
type Component struct {
	// Dequantization tables, in natural order. Only the table matching the
	// chosen IDCT method needs to be set.
	QuantTable *[64]IslowMult
	IfastTable *[64]IfastMult
	FloatTable *[64]float32

	WidthInBlocks    Dimension
	DownsampledWidth Dimension
	HSampFactor      int
	VSampFactor      int
}

// ImageInfo carries the image-level state shared by colour conversion and
// resampling kernels.
type ImageInfo struct {
	Width          Dimension // input width, compression side
	OutputWidth    Dimension // scaled output width, decompression side
	NumComponents  int
	MaxHSampFactor int
	MaxVSampFactor int
}

// DerivedTable is a Huffman table expanded for encoding: Code[s] and
// Size[s] give the code word and its length for symbol s.
type DerivedTable struct {
	Code [256]uint32
	Size [256]int8
}
