package registry

import (
	"sync"

	"github.com/cwbudde/algo-jsimd/internal/cpu"
)

// Colour conversion.
type (
	// ColorConvertFn converts numRows pixel rows into per-component planes
	// starting at outRow.
	ColorConvertFn func(img *ImageInfo, in SampleRows, out SampleImage, outRow Dimension, numRows int)

	// ColorDeconvertFn converts numRows rows of component planes starting
	// at inRow into interleaved pixel rows.
	ColorDeconvertFn func(img *ImageInfo, in SampleImage, inRow Dimension, out SampleRows, numRows int)
)

// Resampling.
type (
	DownsampleFn     func(img *ImageInfo, comp *Component, in, out SampleRows)
	UpsampleFn       func(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows)
	MergedUpsampleFn func(img *ImageInfo, in SampleImage, inRowGroup Dimension, out SampleRows)
)

// Forward path.
type (
	ConvsampFn      func(samples SampleRows, startCol Dimension, ws *[64]DCTElem)
	ConvsampFloatFn func(samples SampleRows, startCol Dimension, ws *[64]float32)
	FDCTFn          func(data *[64]DCTElem)
	FDCTFloatFn     func(data *[64]float32)
	QuantizeFn      func(coef *Block, divisors []DCTElem, ws *[64]DCTElem)
	QuantizeFloatFn func(coef *Block, divisors []float32, ws *[64]float32)
)

// IDCTFn dequantizes coef with the tables in comp and writes the inverse
// transform into out[r][outCol:], one row per output line.
type IDCTFn func(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension)

// HuffEncodeFn emits one block into buf and returns the extended buffer,
// or nil when the block could not be encoded.
type HuffEncodeFn func(state any, buf []byte, block *Block, lastDC int, dc, ac *DerivedTable) []byte

// OpEntry is one registered backend. A nil kernel field means the backend
// does not accelerate that operation.
type OpEntry struct {
	Name     string
	Requires cpu.Capability
	Priority int

	RGBYCC      ColorConvertFn
	RGBGray     ColorConvertFn
	YCCRGB      ColorDeconvertFn
	YCCRGB565   ColorDeconvertFn
	NullConvert ColorConvertFn

	H2V2Downsample       DownsampleFn
	H2V2SmoothDownsample DownsampleFn
	H2V1Downsample       DownsampleFn

	H2V2Upsample       UpsampleFn
	H2V1Upsample       UpsampleFn
	IntUpsample        UpsampleFn
	H2V2FancyUpsample  UpsampleFn
	H2V1FancyUpsample  UpsampleFn
	H2V2MergedUpsample MergedUpsampleFn
	H2V1MergedUpsample MergedUpsampleFn

	Convsamp      ConvsampFn
	ConvsampFloat ConvsampFloatFn
	FDCTIslow     FDCTFn
	FDCTIfast     FDCTFn
	FDCTFloat     FDCTFloatFn
	Quantize      QuantizeFn
	QuantizeFloat QuantizeFloatFn

	IDCT2x2   IDCTFn
	IDCT4x4   IDCTFn
	IDCT6x6   IDCTFn
	IDCT12x12 IDCTFn
	IDCTIslow IDCTFn
	IDCTIfast IDCTFn
	IDCTFloat IDCTFn

	HuffEncodeOneBlock HuffEncodeFn
}

// OpRegistry stores available backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default backend registry. Backends add themselves from init.
var Global = &OpRegistry{}

// Register adds a backend entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features, or nil
// when none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.Requires) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
