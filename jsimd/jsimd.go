package jsimd

// CanRGBYCC reports whether RGBYCCConvert runs on a vector kernel.
func CanRGBYCC() bool { return Default().CanRGBYCC() }

// RGBYCCConvert converts interleaved RGB rows to YCbCr planes.
func RGBYCCConvert(img *ImageInfo, in SampleRows, out SampleImage, outRow Dimension, numRows int) {
	Default().RGBYCCConvert(img, in, out, outRow, numRows)
}

// CanRGBGray reports whether RGBGrayConvert runs on a vector kernel.
func CanRGBGray() bool { return Default().CanRGBGray() }

// RGBGrayConvert converts interleaved RGB rows to a grayscale plane.
func RGBGrayConvert(img *ImageInfo, in SampleRows, out SampleImage, outRow Dimension, numRows int) {
	Default().RGBGrayConvert(img, in, out, outRow, numRows)
}

// CanYCCRGB reports whether YCCRGBConvert runs on a vector kernel.
func CanYCCRGB() bool { return Default().CanYCCRGB() }

// YCCRGBConvert converts YCbCr planes to interleaved RGB rows.
func YCCRGBConvert(img *ImageInfo, in SampleImage, inRow Dimension, out SampleRows, numRows int) {
	Default().YCCRGBConvert(img, in, inRow, out, numRows)
}

// CanYCCRGB565 always reports false: there is no RGB565 kernel, so the
// capabilities are not even resolved.
func CanYCCRGB565() bool { return false }

// YCCRGB565Convert is a no-op; see CanYCCRGB565.
func YCCRGB565Convert(img *ImageInfo, in SampleImage, inRow Dimension, out SampleRows, numRows int) {}

// CanNullConvert reports whether NullConvert runs on a vector kernel.
func CanNullConvert() bool { return Default().CanNullConvert() }

// NullConvert splits interleaved rows into planes without colour conversion.
func NullConvert(img *ImageInfo, in SampleRows, out SampleImage, outRow Dimension, numRows int) {
	Default().NullConvert(img, in, out, outRow, numRows)
}

// CanH2V2Downsample reports whether H2V2Downsample runs on a vector kernel.
func CanH2V2Downsample() bool { return Default().CanH2V2Downsample() }

// H2V2Downsample halves a component horizontally and vertically.
func H2V2Downsample(img *ImageInfo, comp *Component, in, out SampleRows) {
	Default().H2V2Downsample(img, comp, in, out)
}

// CanH2V2SmoothDownsample reports whether H2V2SmoothDownsample runs on a vector kernel.
func CanH2V2SmoothDownsample() bool { return Default().CanH2V2SmoothDownsample() }

// H2V2SmoothDownsample halves a component in both directions with smoothing.
func H2V2SmoothDownsample(img *ImageInfo, comp *Component, in, out SampleRows) {
	Default().H2V2SmoothDownsample(img, comp, in, out)
}

// CanH2V1Downsample reports whether H2V1Downsample runs on a vector kernel.
func CanH2V1Downsample() bool { return Default().CanH2V1Downsample() }

// H2V1Downsample halves a component horizontally.
func H2V1Downsample(img *ImageInfo, comp *Component, in, out SampleRows) {
	Default().H2V1Downsample(img, comp, in, out)
}

// CanH2V2Upsample reports whether H2V2Upsample runs on a vector kernel.
func CanH2V2Upsample() bool { return Default().CanH2V2Upsample() }

// H2V2Upsample doubles a component in both directions by replication.
func H2V2Upsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	Default().H2V2Upsample(img, comp, in, out)
}

// CanH2V1Upsample reports whether H2V1Upsample runs on a vector kernel.
func CanH2V1Upsample() bool { return Default().CanH2V1Upsample() }

// H2V1Upsample doubles a component horizontally by replication.
func H2V1Upsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	Default().H2V1Upsample(img, comp, in, out)
}

// CanIntUpsample reports whether IntUpsample runs on a vector kernel.
func CanIntUpsample() bool { return Default().CanIntUpsample() }

// IntUpsample upsamples a component by integral factors.
func IntUpsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	Default().IntUpsample(img, comp, in, out)
}

// CanH2V2FancyUpsample reports whether H2V2FancyUpsample runs on a vector kernel.
func CanH2V2FancyUpsample() bool { return Default().CanH2V2FancyUpsample() }

// H2V2FancyUpsample doubles a component in both directions by triangle interpolation.
func H2V2FancyUpsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	Default().H2V2FancyUpsample(img, comp, in, out)
}

// CanH2V1FancyUpsample reports whether H2V1FancyUpsample runs on a vector kernel.
func CanH2V1FancyUpsample() bool { return Default().CanH2V1FancyUpsample() }

// H2V1FancyUpsample doubles a component horizontally by triangle interpolation.
func H2V1FancyUpsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	Default().H2V1FancyUpsample(img, comp, in, out)
}

// CanH2V2MergedUpsample reports whether H2V2MergedUpsample runs on a vector kernel.
func CanH2V2MergedUpsample() bool { return Default().CanH2V2MergedUpsample() }

// H2V2MergedUpsample upsamples 2x2 chroma and converts to RGB in one step.
func H2V2MergedUpsample(img *ImageInfo, in SampleImage, inRowGroup Dimension, out SampleRows) {
	Default().H2V2MergedUpsample(img, in, inRowGroup, out)
}

// CanH2V1MergedUpsample reports whether H2V1MergedUpsample runs on a vector kernel.
func CanH2V1MergedUpsample() bool { return Default().CanH2V1MergedUpsample() }

// H2V1MergedUpsample upsamples 2x1 chroma and converts to RGB in one step.
func H2V1MergedUpsample(img *ImageInfo, in SampleImage, inRowGroup Dimension, out SampleRows) {
	Default().H2V1MergedUpsample(img, in, inRowGroup, out)
}

// CanConvsamp reports whether Convsamp runs on a vector kernel.
func CanConvsamp() bool { return Default().CanConvsamp() }

// Convsamp loads an 8x8 sample block into the forward DCT workspace, level shifted.
func Convsamp(samples SampleRows, startCol Dimension, ws *[64]DCTElem) {
	Default().Convsamp(samples, startCol, ws)
}

// CanConvsampFloat reports whether ConvsampFloat runs on a vector kernel.
func CanConvsampFloat() bool { return Default().CanConvsampFloat() }

// ConvsampFloat is the float workspace form of Convsamp.
func ConvsampFloat(samples SampleRows, startCol Dimension, ws *[64]float32) {
	Default().ConvsampFloat(samples, startCol, ws)
}

// CanFDCTIslow reports whether FDCTIslow runs on a vector kernel.
func CanFDCTIslow() bool { return Default().CanFDCTIslow() }

// FDCTIslow runs the accurate integer forward DCT in place.
func FDCTIslow(data *[64]DCTElem) {
	Default().FDCTIslow(data)
}

// CanFDCTIfast reports whether FDCTIfast runs on a vector kernel.
func CanFDCTIfast() bool { return Default().CanFDCTIfast() }

// FDCTIfast runs the fast integer forward DCT in place.
func FDCTIfast(data *[64]DCTElem) {
	Default().FDCTIfast(data)
}

// CanFDCTFloat reports whether FDCTFloat runs on a vector kernel.
func CanFDCTFloat() bool { return Default().CanFDCTFloat() }

// FDCTFloat runs the float forward DCT in place.
func FDCTFloat(data *[64]float32) {
	Default().FDCTFloat(data)
}

// CanQuantize reports whether Quantize runs on a vector kernel.
func CanQuantize() bool { return Default().CanQuantize() }

// Quantize quantizes the workspace into coef.
func Quantize(coef *Block, divisors []DCTElem, ws *[64]DCTElem) {
	Default().Quantize(coef, divisors, ws)
}

// CanQuantizeFloat reports whether QuantizeFloat runs on a vector kernel.
func CanQuantizeFloat() bool { return Default().CanQuantizeFloat() }

// QuantizeFloat quantizes the float workspace into coef.
func QuantizeFloat(coef *Block, divisors []float32, ws *[64]float32) {
	Default().QuantizeFloat(coef, divisors, ws)
}

// CanIDCT2x2 reports whether IDCT2x2 runs on a vector kernel.
func CanIDCT2x2() bool { return Default().CanIDCT2x2() }

// IDCT2x2 decodes a block scaled down to 2x2 samples.
func IDCT2x2(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	Default().IDCT2x2(img, comp, coef, out, outCol)
}

// CanIDCT4x4 reports whether IDCT4x4 runs on a vector kernel.
func CanIDCT4x4() bool { return Default().CanIDCT4x4() }

// IDCT4x4 decodes a block scaled down to 4x4 samples.
func IDCT4x4(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	Default().IDCT4x4(img, comp, coef, out, outCol)
}

// CanIDCT6x6 reports whether IDCT6x6 runs on a vector kernel.
func CanIDCT6x6() bool { return Default().CanIDCT6x6() }

// IDCT6x6 decodes a block scaled to 6x6 samples.
func IDCT6x6(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	Default().IDCT6x6(img, comp, coef, out, outCol)
}

// CanIDCT12x12 reports whether IDCT12x12 runs on a vector kernel.
func CanIDCT12x12() bool { return Default().CanIDCT12x12() }

// IDCT12x12 decodes a block scaled up to 12x12 samples.
func IDCT12x12(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	Default().IDCT12x12(img, comp, coef, out, outCol)
}

// CanIDCTIslow reports whether IDCTIslow runs on a vector kernel.
func CanIDCTIslow() bool { return Default().CanIDCTIslow() }

// IDCTIslow decodes a block with the accurate integer inverse DCT, using
// comp.QuantTable, into out[r][outCol:outCol+8].
func IDCTIslow(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	Default().IDCTIslow(img, comp, coef, out, outCol)
}

// CanIDCTIfast reports whether IDCTIfast runs on a vector kernel.
func CanIDCTIfast() bool { return Default().CanIDCTIfast() }

// IDCTIfast decodes a block with the fast integer inverse DCT.
func IDCTIfast(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	Default().IDCTIfast(img, comp, coef, out, outCol)
}

// CanIDCTFloat reports whether IDCTFloat runs on a vector kernel.
func CanIDCTFloat() bool { return Default().CanIDCTFloat() }

// IDCTFloat decodes a block with the float inverse DCT.
func IDCTFloat(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	Default().IDCTFloat(img, comp, coef, out, outCol)
}

// CanHuffEncodeOneBlock always reports false: there is no Huffman kernel,
// so the capabilities are not even resolved.
func CanHuffEncodeOneBlock() bool { return false }

// HuffEncodeOneBlock returns nil; see CanHuffEncodeOneBlock.
func HuffEncodeOneBlock(state any, buf []byte, block *Block, lastDC int, dc, ac *DerivedTable) []byte {
	return nil
}
