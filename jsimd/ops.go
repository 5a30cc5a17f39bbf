package jsimd

import "github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"

// Op identifies one accelerable operation.
type Op int

const (
	OpRGBYCC Op = iota
	OpRGBGray
	OpYCCRGB
	OpYCCRGB565
	OpNullConvert
	OpH2V2Downsample
	OpH2V2SmoothDownsample
	OpH2V1Downsample
	OpH2V2Upsample
	OpH2V1Upsample
	OpIntUpsample
	OpH2V2FancyUpsample
	OpH2V1FancyUpsample
	OpH2V2MergedUpsample
	OpH2V1MergedUpsample
	OpConvsamp
	OpConvsampFloat
	OpFDCTIslow
	OpFDCTIfast
	OpFDCTFloat
	OpQuantize
	OpQuantizeFloat
	OpIDCT2x2
	OpIDCT4x4
	OpIDCT6x6
	OpIDCT12x12
	OpIDCTIslow
	OpIDCTIfast
	OpIDCTFloat
	OpHuffEncodeOneBlock

	numOps
)

// precondition is a set of static parameter checks.
type precondition uint16

const (
	needSample8 precondition = 1 << iota
	needDimension4
	needRGBPixel
	needDCT8
	needCoef2
	needDCTElem2
	needIslowMult2
	needIfastMult2
	needIfastScale2

	// neverAccelerated marks operations that answer false without
	// resolving capabilities.
	neverAccelerated
)

const (
	colorPre  = needSample8 | needDimension4 | needRGBPixel
	samplePre = needSample8 | needDimension4
	idctPre   = needDCT8 | needCoef2 | needSample8 | needDimension4 | needIslowMult2
)

type opInfo struct {
	name string
	pre  precondition
	has  func(e *registry.OpEntry) bool
}

var opTable = [numOps]opInfo{
	OpRGBYCC:               {"rgb_ycc", colorPre, func(e *registry.OpEntry) bool { return e.RGBYCC != nil }},
	OpRGBGray:              {"rgb_gray", colorPre, func(e *registry.OpEntry) bool { return e.RGBGray != nil }},
	OpYCCRGB:               {"ycc_rgb", colorPre, func(e *registry.OpEntry) bool { return e.YCCRGB != nil }},
	OpYCCRGB565:            {"ycc_rgb565", neverAccelerated, func(e *registry.OpEntry) bool { return e.YCCRGB565 != nil }},
	OpNullConvert:          {"c_null_convert", samplePre, func(e *registry.OpEntry) bool { return e.NullConvert != nil }},
	OpH2V2Downsample:       {"h2v2_downsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V2Downsample != nil }},
	OpH2V2SmoothDownsample: {"h2v2_smooth_downsample", samplePre | needDCT8, func(e *registry.OpEntry) bool { return e.H2V2SmoothDownsample != nil }},
	OpH2V1Downsample:       {"h2v1_downsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V1Downsample != nil }},
	OpH2V2Upsample:         {"h2v2_upsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V2Upsample != nil }},
	OpH2V1Upsample:         {"h2v1_upsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V1Upsample != nil }},
	OpIntUpsample:          {"int_upsample", samplePre, func(e *registry.OpEntry) bool { return e.IntUpsample != nil }},
	OpH2V2FancyUpsample:    {"h2v2_fancy_upsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V2FancyUpsample != nil }},
	OpH2V1FancyUpsample:    {"h2v1_fancy_upsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V1FancyUpsample != nil }},
	OpH2V2MergedUpsample:   {"h2v2_merged_upsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V2MergedUpsample != nil }},
	OpH2V1MergedUpsample:   {"h2v1_merged_upsample", samplePre, func(e *registry.OpEntry) bool { return e.H2V1MergedUpsample != nil }},
	OpConvsamp:             {"convsamp", needDCT8 | samplePre | needDCTElem2, func(e *registry.OpEntry) bool { return e.Convsamp != nil }},
	OpConvsampFloat:        {"convsamp_float", idctPre, func(e *registry.OpEntry) bool { return e.ConvsampFloat != nil }},
	OpFDCTIslow:            {"fdct_islow", needDCT8 | needDCTElem2, func(e *registry.OpEntry) bool { return e.FDCTIslow != nil }},
	OpFDCTIfast:            {"fdct_ifast", needDCT8 | needDCTElem2, func(e *registry.OpEntry) bool { return e.FDCTIfast != nil }},
	OpFDCTFloat:            {"fdct_float", 0, func(e *registry.OpEntry) bool { return e.FDCTFloat != nil }},
	OpQuantize:             {"quantize", needDCT8 | needCoef2 | needDCTElem2, func(e *registry.OpEntry) bool { return e.Quantize != nil }},
	OpQuantizeFloat:        {"quantize_float", idctPre, func(e *registry.OpEntry) bool { return e.QuantizeFloat != nil }},
	OpIDCT2x2:              {"idct_2x2", idctPre, func(e *registry.OpEntry) bool { return e.IDCT2x2 != nil }},
	OpIDCT4x4:              {"idct_4x4", idctPre, func(e *registry.OpEntry) bool { return e.IDCT4x4 != nil }},
	OpIDCT6x6:              {"idct_6x6", idctPre, func(e *registry.OpEntry) bool { return e.IDCT6x6 != nil }},
	OpIDCT12x12:            {"idct_12x12", idctPre, func(e *registry.OpEntry) bool { return e.IDCT12x12 != nil }},
	OpIDCTIslow:            {"idct_islow", idctPre, func(e *registry.OpEntry) bool { return e.IDCTIslow != nil }},
	OpIDCTIfast:            {"idct_ifast", idctPre | needIfastMult2 | needIfastScale2, func(e *registry.OpEntry) bool { return e.IDCTIfast != nil }},
	OpIDCTFloat:            {"idct_float", 0, func(e *registry.OpEntry) bool { return e.IDCTFloat != nil }},
	OpHuffEncodeOneBlock:   {"huff_encode_one_block", neverAccelerated, func(e *registry.OpEntry) bool { return e.HuffEncodeOneBlock != nil }},
}

// String returns the operation's short name, for example "idct_islow".
func (op Op) String() string {
	if op < 0 || op >= numOps {
		return "unknown"
	}
	return opTable[op].name
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// satisfies reports whether p meets every check in pre.
func (p Params) satisfies(pre precondition) bool {
	checks := []struct {
		flag precondition
		ok   bool
	}{
		{needSample8, p.SampleBits == 8},
		{needDimension4, p.DimensionSize == 4},
		{needRGBPixel, p.RGBPixelSize == 3 || p.RGBPixelSize == 4},
		{needDCT8, p.DCTSize == 8},
		{needCoef2, p.CoefSize == 2},
		{needDCTElem2, p.DCTElemSize == 2},
		{needIslowMult2, p.IslowMultSize == 2},
		{needIfastMult2, p.IfastMultSize == 2},
		{needIfastScale2, p.IfastScaleBits == 2},
		{neverAccelerated, false},
	}
	for _, c := range checks {
		if pre&c.flag != 0 && !c.ok {
			return false
		}
	}
	return true
}
