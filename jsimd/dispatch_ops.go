package jsimd

// CanRGBYCC reports whether RGBYCCConvert runs on a vector kernel.
func (d *Dispatcher) CanRGBYCC() bool { return d.enabled[OpRGBYCC] }

// RGBYCCConvert converts interleaved RGB rows to YCbCr planes.
// It does nothing unless CanRGBYCC is true.
func (d *Dispatcher) RGBYCCConvert(img *ImageInfo, in SampleRows, out SampleImage, outRow Dimension, numRows int) {
	if d.enabled[OpRGBYCC] {
		d.entry.RGBYCC(img, in, out, outRow, numRows)
	}
}

// CanRGBGray reports whether RGBGrayConvert runs on a vector kernel.
func (d *Dispatcher) CanRGBGray() bool { return d.enabled[OpRGBGray] }

// RGBGrayConvert converts interleaved RGB rows to a grayscale plane.
// It does nothing unless CanRGBGray is true.
func (d *Dispatcher) RGBGrayConvert(img *ImageInfo, in SampleRows, out SampleImage, outRow Dimension, numRows int) {
	if d.enabled[OpRGBGray] {
		d.entry.RGBGray(img, in, out, outRow, numRows)
	}
}

// CanYCCRGB reports whether YCCRGBConvert runs on a vector kernel.
func (d *Dispatcher) CanYCCRGB() bool { return d.enabled[OpYCCRGB] }

// YCCRGBConvert converts YCbCr planes to interleaved RGB rows.
// It does nothing unless CanYCCRGB is true.
func (d *Dispatcher) YCCRGBConvert(img *ImageInfo, in SampleImage, inRow Dimension, out SampleRows, numRows int) {
	if d.enabled[OpYCCRGB] {
		d.entry.YCCRGB(img, in, inRow, out, numRows)
	}
}

// CanYCCRGB565 reports whether YCCRGB565Convert runs on a vector kernel.
func (d *Dispatcher) CanYCCRGB565() bool { return d.enabled[OpYCCRGB565] }

// YCCRGB565Convert converts YCbCr planes to packed RGB565 rows.
// It does nothing unless CanYCCRGB565 is true.
func (d *Dispatcher) YCCRGB565Convert(img *ImageInfo, in SampleImage, inRow Dimension, out SampleRows, numRows int) {
	if d.enabled[OpYCCRGB565] {
		d.entry.YCCRGB565(img, in, inRow, out, numRows)
	}
}

// CanNullConvert reports whether NullConvert runs on a vector kernel.
func (d *Dispatcher) CanNullConvert() bool { return d.enabled[OpNullConvert] }

// NullConvert splits interleaved rows into planes without colour conversion.
// It does nothing unless CanNullConvert is true.
func (d *Dispatcher) NullConvert(img *ImageInfo, in SampleRows, out SampleImage, outRow Dimension, numRows int) {
	if d.enabled[OpNullConvert] {
		d.entry.NullConvert(img, in, out, outRow, numRows)
	}
}

// CanH2V2Downsample reports whether H2V2Downsample runs on a vector kernel.
func (d *Dispatcher) CanH2V2Downsample() bool { return d.enabled[OpH2V2Downsample] }

// H2V2Downsample halves a component horizontally and vertically.
// It does nothing unless CanH2V2Downsample is true.
func (d *Dispatcher) H2V2Downsample(img *ImageInfo, comp *Component, in, out SampleRows) {
	if d.enabled[OpH2V2Downsample] {
		d.entry.H2V2Downsample(img, comp, in, out)
	}
}

// CanH2V2SmoothDownsample reports whether H2V2SmoothDownsample runs on a vector kernel.
func (d *Dispatcher) CanH2V2SmoothDownsample() bool { return d.enabled[OpH2V2SmoothDownsample] }

// H2V2SmoothDownsample halves a component in both directions with smoothing.
// It does nothing unless CanH2V2SmoothDownsample is true.
func (d *Dispatcher) H2V2SmoothDownsample(img *ImageInfo, comp *Component, in, out SampleRows) {
	if d.enabled[OpH2V2SmoothDownsample] {
		d.entry.H2V2SmoothDownsample(img, comp, in, out)
	}
}

// CanH2V1Downsample reports whether H2V1Downsample runs on a vector kernel.
func (d *Dispatcher) CanH2V1Downsample() bool { return d.enabled[OpH2V1Downsample] }

// H2V1Downsample halves a component horizontally.
// It does nothing unless CanH2V1Downsample is true.
func (d *Dispatcher) H2V1Downsample(img *ImageInfo, comp *Component, in, out SampleRows) {
	if d.enabled[OpH2V1Downsample] {
		d.entry.H2V1Downsample(img, comp, in, out)
	}
}

// CanH2V2Upsample reports whether H2V2Upsample runs on a vector kernel.
func (d *Dispatcher) CanH2V2Upsample() bool { return d.enabled[OpH2V2Upsample] }

// H2V2Upsample doubles a component in both directions by replication.
// It does nothing unless CanH2V2Upsample is true.
func (d *Dispatcher) H2V2Upsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	if d.enabled[OpH2V2Upsample] {
		d.entry.H2V2Upsample(img, comp, in, out)
	}
}

// CanH2V1Upsample reports whether H2V1Upsample runs on a vector kernel.
func (d *Dispatcher) CanH2V1Upsample() bool { return d.enabled[OpH2V1Upsample] }

// H2V1Upsample doubles a component horizontally by replication.
// It does nothing unless CanH2V1Upsample is true.
func (d *Dispatcher) H2V1Upsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	if d.enabled[OpH2V1Upsample] {
		d.entry.H2V1Upsample(img, comp, in, out)
	}
}

// CanIntUpsample reports whether IntUpsample runs on a vector kernel.
func (d *Dispatcher) CanIntUpsample() bool { return d.enabled[OpIntUpsample] }

// IntUpsample upsamples a component by integral factors.
// It does nothing unless CanIntUpsample is true.
func (d *Dispatcher) IntUpsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	if d.enabled[OpIntUpsample] {
		d.entry.IntUpsample(img, comp, in, out)
	}
}

// CanH2V2FancyUpsample reports whether H2V2FancyUpsample runs on a vector kernel.
func (d *Dispatcher) CanH2V2FancyUpsample() bool { return d.enabled[OpH2V2FancyUpsample] }

// H2V2FancyUpsample doubles a component in both directions by triangle interpolation.
// It does nothing unless CanH2V2FancyUpsample is true.
func (d *Dispatcher) H2V2FancyUpsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	if d.enabled[OpH2V2FancyUpsample] {
		d.entry.H2V2FancyUpsample(img, comp, in, out)
	}
}

// CanH2V1FancyUpsample reports whether H2V1FancyUpsample runs on a vector kernel.
func (d *Dispatcher) CanH2V1FancyUpsample() bool { return d.enabled[OpH2V1FancyUpsample] }

// H2V1FancyUpsample doubles a component horizontally by triangle interpolation.
// It does nothing unless CanH2V1FancyUpsample is true.
func (d *Dispatcher) H2V1FancyUpsample(img *ImageInfo, comp *Component, in SampleRows, out *SampleRows) {
	if d.enabled[OpH2V1FancyUpsample] {
		d.entry.H2V1FancyUpsample(img, comp, in, out)
	}
}

// CanH2V2MergedUpsample reports whether H2V2MergedUpsample runs on a vector kernel.
func (d *Dispatcher) CanH2V2MergedUpsample() bool { return d.enabled[OpH2V2MergedUpsample] }

// H2V2MergedUpsample upsamples 2x2 chroma and converts to RGB in one step.
// It does nothing unless CanH2V2MergedUpsample is true.
func (d *Dispatcher) H2V2MergedUpsample(img *ImageInfo, in SampleImage, inRowGroup Dimension, out SampleRows) {
	if d.enabled[OpH2V2MergedUpsample] {
		d.entry.H2V2MergedUpsample(img, in, inRowGroup, out)
	}
}

// CanH2V1MergedUpsample reports whether H2V1MergedUpsample runs on a vector kernel.
func (d *Dispatcher) CanH2V1MergedUpsample() bool { return d.enabled[OpH2V1MergedUpsample] }

// H2V1MergedUpsample upsamples 2x1 chroma and converts to RGB in one step.
// It does nothing unless CanH2V1MergedUpsample is true.
func (d *Dispatcher) H2V1MergedUpsample(img *ImageInfo, in SampleImage, inRowGroup Dimension, out SampleRows) {
	if d.enabled[OpH2V1MergedUpsample] {
		d.entry.H2V1MergedUpsample(img, in, inRowGroup, out)
	}
}

// CanConvsamp reports whether Convsamp runs on a vector kernel.
func (d *Dispatcher) CanConvsamp() bool { return d.enabled[OpConvsamp] }

// Convsamp loads an 8x8 sample block into the forward DCT workspace, level shifted.
// It does nothing unless CanConvsamp is true.
func (d *Dispatcher) Convsamp(samples SampleRows, startCol Dimension, ws *[64]DCTElem) {
	if d.enabled[OpConvsamp] {
		d.entry.Convsamp(samples, startCol, ws)
	}
}

// CanConvsampFloat reports whether ConvsampFloat runs on a vector kernel.
func (d *Dispatcher) CanConvsampFloat() bool { return d.enabled[OpConvsampFloat] }

// ConvsampFloat is the float workspace form of Convsamp.
// It does nothing unless CanConvsampFloat is true.
func (d *Dispatcher) ConvsampFloat(samples SampleRows, startCol Dimension, ws *[64]float32) {
	if d.enabled[OpConvsampFloat] {
		d.entry.ConvsampFloat(samples, startCol, ws)
	}
}

// CanFDCTIslow reports whether FDCTIslow runs on a vector kernel.
func (d *Dispatcher) CanFDCTIslow() bool { return d.enabled[OpFDCTIslow] }

// FDCTIslow runs the accurate integer forward DCT in place.
// It does nothing unless CanFDCTIslow is true.
func (d *Dispatcher) FDCTIslow(data *[64]DCTElem) {
	if d.enabled[OpFDCTIslow] {
		d.entry.FDCTIslow(data)
	}
}

// CanFDCTIfast reports whether FDCTIfast runs on a vector kernel.
func (d *Dispatcher) CanFDCTIfast() bool { return d.enabled[OpFDCTIfast] }

// FDCTIfast runs the fast integer forward DCT in place.
// It does nothing unless CanFDCTIfast is true.
func (d *Dispatcher) FDCTIfast(data *[64]DCTElem) {
	if d.enabled[OpFDCTIfast] {
		d.entry.FDCTIfast(data)
	}
}

// CanFDCTFloat reports whether FDCTFloat runs on a vector kernel.
func (d *Dispatcher) CanFDCTFloat() bool { return d.enabled[OpFDCTFloat] }

// FDCTFloat runs the float forward DCT in place.
// It does nothing unless CanFDCTFloat is true.
func (d *Dispatcher) FDCTFloat(data *[64]float32) {
	if d.enabled[OpFDCTFloat] {
		d.entry.FDCTFloat(data)
	}
}

// CanQuantize reports whether Quantize runs on a vector kernel.
func (d *Dispatcher) CanQuantize() bool { return d.enabled[OpQuantize] }

// Quantize quantizes the workspace into coef.
// It does nothing unless CanQuantize is true.
func (d *Dispatcher) Quantize(coef *Block, divisors []DCTElem, ws *[64]DCTElem) {
	if d.enabled[OpQuantize] {
		d.entry.Quantize(coef, divisors, ws)
	}
}

// CanQuantizeFloat reports whether QuantizeFloat runs on a vector kernel.
func (d *Dispatcher) CanQuantizeFloat() bool { return d.enabled[OpQuantizeFloat] }

// QuantizeFloat quantizes the float workspace into coef.
// It does nothing unless CanQuantizeFloat is true.
func (d *Dispatcher) QuantizeFloat(coef *Block, divisors []float32, ws *[64]float32) {
	if d.enabled[OpQuantizeFloat] {
		d.entry.QuantizeFloat(coef, divisors, ws)
	}
}

// CanIDCT2x2 reports whether IDCT2x2 runs on a vector kernel.
func (d *Dispatcher) CanIDCT2x2() bool { return d.enabled[OpIDCT2x2] }

// IDCT2x2 decodes a block scaled down to 2x2 samples.
// It does nothing unless CanIDCT2x2 is true.
func (d *Dispatcher) IDCT2x2(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	if d.enabled[OpIDCT2x2] {
		d.entry.IDCT2x2(img, comp, coef, out, outCol)
	}
}

// CanIDCT4x4 reports whether IDCT4x4 runs on a vector kernel.
func (d *Dispatcher) CanIDCT4x4() bool { return d.enabled[OpIDCT4x4] }

// IDCT4x4 decodes a block scaled down to 4x4 samples.
// It does nothing unless CanIDCT4x4 is true.
func (d *Dispatcher) IDCT4x4(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	if d.enabled[OpIDCT4x4] {
		d.entry.IDCT4x4(img, comp, coef, out, outCol)
	}
}

// CanIDCT6x6 reports whether IDCT6x6 runs on a vector kernel.
func (d *Dispatcher) CanIDCT6x6() bool { return d.enabled[OpIDCT6x6] }

// IDCT6x6 decodes a block scaled to 6x6 samples.
// It does nothing unless CanIDCT6x6 is true.
func (d *Dispatcher) IDCT6x6(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	if d.enabled[OpIDCT6x6] {
		d.entry.IDCT6x6(img, comp, coef, out, outCol)
	}
}

// CanIDCT12x12 reports whether IDCT12x12 runs on a vector kernel.
func (d *Dispatcher) CanIDCT12x12() bool { return d.enabled[OpIDCT12x12] }

// IDCT12x12 decodes a block scaled up to 12x12 samples.
// It does nothing unless CanIDCT12x12 is true.
func (d *Dispatcher) IDCT12x12(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	if d.enabled[OpIDCT12x12] {
		d.entry.IDCT12x12(img, comp, coef, out, outCol)
	}
}

// CanIDCTIslow reports whether IDCTIslow runs on a vector kernel.
func (d *Dispatcher) CanIDCTIslow() bool { return d.enabled[OpIDCTIslow] }

// IDCTIslow decodes a block with the accurate integer inverse DCT, using
// comp.QuantTable, into out[r][outCol:outCol+8].
// It does nothing unless CanIDCTIslow is true.
func (d *Dispatcher) IDCTIslow(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	if d.enabled[OpIDCTIslow] {
		d.entry.IDCTIslow(img, comp, coef, out, outCol)
	}
}

// CanIDCTIfast reports whether IDCTIfast runs on a vector kernel.
func (d *Dispatcher) CanIDCTIfast() bool { return d.enabled[OpIDCTIfast] }

// IDCTIfast decodes a block with the fast integer inverse DCT.
// It does nothing unless CanIDCTIfast is true.
func (d *Dispatcher) IDCTIfast(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	if d.enabled[OpIDCTIfast] {
		d.entry.IDCTIfast(img, comp, coef, out, outCol)
	}
}

// CanIDCTFloat reports whether IDCTFloat runs on a vector kernel.
func (d *Dispatcher) CanIDCTFloat() bool { return d.enabled[OpIDCTFloat] }

// IDCTFloat decodes a block with the float inverse DCT.
// It does nothing unless CanIDCTFloat is true.
func (d *Dispatcher) IDCTFloat(img *ImageInfo, comp *Component, coef *Block, out SampleRows, outCol Dimension) {
	if d.enabled[OpIDCTFloat] {
		d.entry.IDCTFloat(img, comp, coef, out, outCol)
	}
}

// CanHuffEncodeOneBlock reports whether HuffEncodeOneBlock runs on a
// vector kernel.
func (d *Dispatcher) CanHuffEncodeOneBlock() bool { return d.enabled[OpHuffEncodeOneBlock] }

// HuffEncodeOneBlock emits one block's Huffman codes into buf and returns
// the extended buffer. It returns nil when no kernel is bound.
func (d *Dispatcher) HuffEncodeOneBlock(state any, buf []byte, block *Block, lastDC int, dc, ac *DerivedTable) []byte {
	if !d.enabled[OpHuffEncodeOneBlock] {
		return nil
	}
	return d.entry.HuffEncodeOneBlock(state, buf, block, lastDC, dc, ac)
}
