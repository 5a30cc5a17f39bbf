package jsimd

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/cwbudde/algo-jsimd/internal/cpu"
	"github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"
)

func resetDefaultForTest() {
	defaultDispatcher = nil
	defaultOnce = sync.Once{}
}

// fakeCap is a capability bit no real host reports. The fake backend
// registered under it provides every kernel and counts calls.
const fakeCap cpu.Capability = 1 << 7

var (
	fakeOnce  sync.Once
	fakeCalls [numOps]int
)

func registerFakeBackend() {
	fakeOnce.Do(func() {
		hit := func(op Op) { fakeCalls[op]++ }
		registry.Global.Register(registry.OpEntry{
			Name:     "fake",
			Requires: fakeCap,
			Priority: 100,

			RGBYCC:    func(*ImageInfo, SampleRows, SampleImage, Dimension, int) { hit(OpRGBYCC) },
			RGBGray:   func(*ImageInfo, SampleRows, SampleImage, Dimension, int) { hit(OpRGBGray) },
			YCCRGB:    func(*ImageInfo, SampleImage, Dimension, SampleRows, int) { hit(OpYCCRGB) },
			YCCRGB565: func(*ImageInfo, SampleImage, Dimension, SampleRows, int) { hit(OpYCCRGB565) },
			NullConvert: func(*ImageInfo, SampleRows, SampleImage, Dimension, int) {
				hit(OpNullConvert)
			},

			H2V2Downsample:       func(*ImageInfo, *Component, SampleRows, SampleRows) { hit(OpH2V2Downsample) },
			H2V2SmoothDownsample: func(*ImageInfo, *Component, SampleRows, SampleRows) { hit(OpH2V2SmoothDownsample) },
			H2V1Downsample:       func(*ImageInfo, *Component, SampleRows, SampleRows) { hit(OpH2V1Downsample) },

			H2V2Upsample:       func(*ImageInfo, *Component, SampleRows, *SampleRows) { hit(OpH2V2Upsample) },
			H2V1Upsample:       func(*ImageInfo, *Component, SampleRows, *SampleRows) { hit(OpH2V1Upsample) },
			IntUpsample:        func(*ImageInfo, *Component, SampleRows, *SampleRows) { hit(OpIntUpsample) },
			H2V2FancyUpsample:  func(*ImageInfo, *Component, SampleRows, *SampleRows) { hit(OpH2V2FancyUpsample) },
			H2V1FancyUpsample:  func(*ImageInfo, *Component, SampleRows, *SampleRows) { hit(OpH2V1FancyUpsample) },
			H2V2MergedUpsample: func(*ImageInfo, SampleImage, Dimension, SampleRows) { hit(OpH2V2MergedUpsample) },
			H2V1MergedUpsample: func(*ImageInfo, SampleImage, Dimension, SampleRows) { hit(OpH2V1MergedUpsample) },

			Convsamp:      func(SampleRows, Dimension, *[64]DCTElem) { hit(OpConvsamp) },
			ConvsampFloat: func(SampleRows, Dimension, *[64]float32) { hit(OpConvsampFloat) },
			FDCTIslow:     func(*[64]DCTElem) { hit(OpFDCTIslow) },
			FDCTIfast:     func(*[64]DCTElem) { hit(OpFDCTIfast) },
			FDCTFloat:     func(*[64]float32) { hit(OpFDCTFloat) },
			Quantize:      func(*Block, []DCTElem, *[64]DCTElem) { hit(OpQuantize) },
			QuantizeFloat: func(*Block, []float32, *[64]float32) { hit(OpQuantizeFloat) },

			IDCT2x2:   func(*ImageInfo, *Component, *Block, SampleRows, Dimension) { hit(OpIDCT2x2) },
			IDCT4x4:   func(*ImageInfo, *Component, *Block, SampleRows, Dimension) { hit(OpIDCT4x4) },
			IDCT6x6:   func(*ImageInfo, *Component, *Block, SampleRows, Dimension) { hit(OpIDCT6x6) },
			IDCT12x12: func(*ImageInfo, *Component, *Block, SampleRows, Dimension) { hit(OpIDCT12x12) },
			IDCTIslow: func(*ImageInfo, *Component, *Block, SampleRows, Dimension) { hit(OpIDCTIslow) },
			IDCTIfast: func(*ImageInfo, *Component, *Block, SampleRows, Dimension) { hit(OpIDCTIfast) },
			IDCTFloat: func(*ImageInfo, *Component, *Block, SampleRows, Dimension) { hit(OpIDCTFloat) },

			HuffEncodeOneBlock: func(_ any, buf []byte, _ *Block, _ int, _, _ *DerivedTable) []byte {
				hit(OpHuffEncodeOneBlock)
				return append(buf, 0xff)
			},
		})
	})
}

// perform calls the perform of op with empty arguments.
func perform(d *Dispatcher, op Op) {
	switch op {
	case OpRGBYCC:
		d.RGBYCCConvert(nil, nil, nil, 0, 0)
	case OpRGBGray:
		d.RGBGrayConvert(nil, nil, nil, 0, 0)
	case OpYCCRGB:
		d.YCCRGBConvert(nil, nil, 0, nil, 0)
	case OpYCCRGB565:
		d.YCCRGB565Convert(nil, nil, 0, nil, 0)
	case OpNullConvert:
		d.NullConvert(nil, nil, nil, 0, 0)
	case OpH2V2Downsample:
		d.H2V2Downsample(nil, nil, nil, nil)
	case OpH2V2SmoothDownsample:
		d.H2V2SmoothDownsample(nil, nil, nil, nil)
	case OpH2V1Downsample:
		d.H2V1Downsample(nil, nil, nil, nil)
	case OpH2V2Upsample:
		d.H2V2Upsample(nil, nil, nil, nil)
	case OpH2V1Upsample:
		d.H2V1Upsample(nil, nil, nil, nil)
	case OpIntUpsample:
		d.IntUpsample(nil, nil, nil, nil)
	case OpH2V2FancyUpsample:
		d.H2V2FancyUpsample(nil, nil, nil, nil)
	case OpH2V1FancyUpsample:
		d.H2V1FancyUpsample(nil, nil, nil, nil)
	case OpH2V2MergedUpsample:
		d.H2V2MergedUpsample(nil, nil, 0, nil)
	case OpH2V1MergedUpsample:
		d.H2V1MergedUpsample(nil, nil, 0, nil)
	case OpConvsamp:
		d.Convsamp(nil, 0, nil)
	case OpConvsampFloat:
		d.ConvsampFloat(nil, 0, nil)
	case OpFDCTIslow:
		d.FDCTIslow(nil)
	case OpFDCTIfast:
		d.FDCTIfast(nil)
	case OpFDCTFloat:
		d.FDCTFloat(nil)
	case OpQuantize:
		d.Quantize(nil, nil, nil)
	case OpQuantizeFloat:
		d.QuantizeFloat(nil, nil, nil)
	case OpIDCT2x2:
		d.IDCT2x2(nil, nil, nil, nil, 0)
	case OpIDCT4x4:
		d.IDCT4x4(nil, nil, nil, nil, 0)
	case OpIDCT6x6:
		d.IDCT6x6(nil, nil, nil, nil, 0)
	case OpIDCT12x12:
		d.IDCT12x12(nil, nil, nil, nil, 0)
	case OpIDCTIslow:
		d.IDCTIslow(nil, nil, nil, nil, 0)
	case OpIDCTIfast:
		d.IDCTIfast(nil, nil, nil, nil, 0)
	case OpIDCTFloat:
		d.IDCTFloat(nil, nil, nil, nil, 0)
	case OpHuffEncodeOneBlock:
		d.HuffEncodeOneBlock(nil, nil, nil, 0, nil, nil)
	}
}

func enabledOps(d *Dispatcher) map[Op]bool {
	set := make(map[Op]bool)
	for _, op := range Ops() {
		if d.Can(op) {
			set[op] = true
		}
	}
	return set
}

func opSet(ops ...Op) map[Op]bool {
	set := make(map[Op]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	return set
}

func requireOpSet(t *testing.T, got, want map[Op]bool) {
	t.Helper()
	for _, op := range Ops() {
		if got[op] != want[op] {
			t.Errorf("%v: enabled = %v, want %v", op, got[op], want[op])
		}
	}
}

func TestOps(t *testing.T) {
	ops := Ops()
	if len(ops) != 30 {
		t.Fatalf("len(Ops()) = %d, want 30", len(ops))
	}
	seen := make(map[string]bool)
	for _, op := range ops {
		name := op.String()
		if name == "" || name == "unknown" || seen[name] {
			t.Fatalf("op %d has bad or duplicate name %q", int(op), name)
		}
		seen[name] = true
	}
	if Op(-1).String() != "unknown" || numOps.String() != "unknown" {
		t.Fatal("out-of-range ops should be unknown")
	}
}

func TestDispatcherBackendSelection(t *testing.T) {
	tests := []struct {
		name        string
		features    cpu.Features
		wantBackend string
		wantOps     map[Op]bool
	}{
		{
			name:        "no extensions",
			features:    cpu.Features{Architecture: "amd64"},
			wantBackend: "generic",
			wantOps:     opSet(),
		},
		{
			name:        "msa",
			features:    cpu.Features{Caps: cpu.MSA, Architecture: "mips64le"},
			wantBackend: "msa",
			wantOps:     opSet(OpIDCTIslow),
		},
		{
			name:        "msa forced generic",
			features:    cpu.Features{Caps: cpu.MSA, ForceGeneric: true, Architecture: "mips64le"},
			wantBackend: "generic",
			wantOps:     opSet(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.features, DefaultParams())
			if d.Backend() != tt.wantBackend {
				t.Fatalf("Backend = %q, want %q", d.Backend(), tt.wantBackend)
			}
			requireOpSet(t, enabledOps(d), tt.wantOps)

			if d.CanIDCTIslow() != tt.wantOps[OpIDCTIslow] {
				t.Fatalf("CanIDCTIslow = %v, want %v", d.CanIDCTIslow(), tt.wantOps[OpIDCTIslow])
			}
		})
	}
}

func TestParamMismatchDisablesExactlyDependentOps(t *testing.T) {
	registerFakeBackend()
	features := cpu.Features{Caps: fakeCap}

	idct := []Op{OpIDCT2x2, OpIDCT4x4, OpIDCT6x6, OpIDCT12x12, OpIDCTIslow, OpIDCTIfast}
	resample := []Op{
		OpH2V2Downsample, OpH2V2SmoothDownsample, OpH2V1Downsample,
		OpH2V2Upsample, OpH2V1Upsample, OpIntUpsample,
		OpH2V2FancyUpsample, OpH2V1FancyUpsample,
		OpH2V2MergedUpsample, OpH2V1MergedUpsample,
	}
	color := []Op{OpRGBYCC, OpRGBGray, OpYCCRGB}

	tests := []struct {
		name     string
		mutate   func(p *Params)
		disabled []Op
	}{
		{
			name:   "sample bits",
			mutate: func(p *Params) { p.SampleBits = 12 },
			disabled: append(append(append(append([]Op{}, color...), resample...), idct...),
				OpNullConvert, OpConvsamp, OpConvsampFloat, OpQuantizeFloat),
		},
		{
			name:   "dimension size",
			mutate: func(p *Params) { p.DimensionSize = 8 },
			disabled: append(append(append(append([]Op{}, color...), resample...), idct...),
				OpNullConvert, OpConvsamp, OpConvsampFloat, OpQuantizeFloat),
		},
		{
			name:     "rgb pixel size",
			mutate:   func(p *Params) { p.RGBPixelSize = 2 },
			disabled: color,
		},
		{
			name:   "dct size",
			mutate: func(p *Params) { p.DCTSize = 4 },
			disabled: append(append([]Op{}, idct...),
				OpH2V2SmoothDownsample, OpConvsamp, OpConvsampFloat,
				OpFDCTIslow, OpFDCTIfast, OpQuantize, OpQuantizeFloat),
		},
		{
			name:     "coef size",
			mutate:   func(p *Params) { p.CoefSize = 4 },
			disabled: append(append([]Op{}, idct...), OpConvsampFloat, OpQuantize, OpQuantizeFloat),
		},
		{
			name:     "dct element size",
			mutate:   func(p *Params) { p.DCTElemSize = 4 },
			disabled: []Op{OpConvsamp, OpFDCTIslow, OpFDCTIfast, OpQuantize},
		},
		{
			name:     "islow mult size",
			mutate:   func(p *Params) { p.IslowMultSize = 4 },
			disabled: append(append([]Op{}, idct...), OpConvsampFloat, OpQuantizeFloat),
		},
		{
			name:     "ifast mult size",
			mutate:   func(p *Params) { p.IfastMultSize = 4 },
			disabled: []Op{OpIDCTIfast},
		},
		{
			name:     "ifast scale bits",
			mutate:   func(p *Params) { p.IfastScaleBits = 1 },
			disabled: []Op{OpIDCTIfast},
		},
	}

	// Everything but the two never-accelerated operations is on with
	// matching parameters.
	base := New(features, DefaultParams())
	if base.Backend() != "fake" {
		t.Fatalf("Backend = %q, want fake", base.Backend())
	}
	all := enabledOps(base)
	requireOpSet(t, all, func() map[Op]bool {
		set := opSet(Ops()...)
		delete(set, OpYCCRGB565)
		delete(set, OpHuffEncodeOneBlock)
		return set
	}())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			want := make(map[Op]bool, len(all))
			for op := range all {
				want[op] = true
			}
			for _, op := range tt.disabled {
				delete(want, op)
			}
			requireOpSet(t, enabledOps(New(features, p)), want)
		})
	}
}

func TestPerformRunsKernelOnlyWhenQueryTrue(t *testing.T) {
	registerFakeBackend()

	p := DefaultParams()
	p.SampleBits = 12
	d := New(cpu.Features{Caps: fakeCap}, p)

	for _, op := range Ops() {
		before := fakeCalls[op]
		perform(d, op)
		ran := fakeCalls[op] != before
		if ran != d.Can(op) {
			t.Errorf("%v: kernel ran = %v, query = %v", op, ran, d.Can(op))
		}
	}
}

func TestWithoutHuffEnc(t *testing.T) {
	registerFakeBackend()

	d := New(cpu.Features{Caps: fakeCap}, DefaultParams(), WithoutHuffEnc())
	if d.CanHuffEncodeOneBlock() {
		t.Fatal("CanHuffEncodeOneBlock = true with WithoutHuffEnc")
	}
	if got := d.HuffEncodeOneBlock(nil, []byte{1}, nil, 0, nil, nil); got != nil {
		t.Fatalf("HuffEncodeOneBlock = %v, want nil", got)
	}
	if !d.CanIDCTIslow() {
		t.Fatal("WithoutHuffEnc must not affect other operations")
	}
}

func TestNewPanicsWithoutFallback(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when no backend matches")
		}
	}()

	saved := registry.Global.ListEntries()
	registry.Global.Reset()
	defer func() {
		for _, e := range saved {
			registry.Global.Register(e)
		}
	}()

	New(cpu.Features{}, DefaultParams())
}

func TestDispatcherLogsBinding(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	New(cpu.Features{Caps: cpu.MSA}, DefaultParams())

	out := buf.String()
	if !strings.Contains(out, "dispatcher bound") || !strings.Contains(out, "backend=msa") ||
		!strings.Contains(out, "accelerated=1") {
		t.Fatalf("log output %q missing binding record", out)
	}

	SetLogger(nil)
	buf.Reset()
	New(cpu.Features{}, DefaultParams())
	if buf.Len() != 0 {
		t.Fatalf("silent logger wrote %q", buf.String())
	}
}
