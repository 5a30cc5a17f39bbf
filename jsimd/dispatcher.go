package jsimd

import (
	"log/slog"
	"sync"

	"github.com/cwbudde/algo-jsimd/internal/cpu"
	"github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"
)

// Dispatcher binds every operation to the kernel of one backend, or to
// nothing. The binding is fixed at construction and a Dispatcher is safe
// for concurrent use.
type Dispatcher struct {
	features cpu.Features
	params   Params
	entry    *registry.OpEntry
	enabled  [numOps]bool
}

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	noHuffEnc bool
}

// WithoutHuffEnc keeps Huffman block encoding on the scalar path even when
// a backend provides a kernel for it.
func WithoutHuffEnc() Option {
	return func(o *options) { o.noHuffEnc = true }
}

// New selects the highest-priority registered backend that features
// support and enables each of its kernels whose preconditions params meets.
//
// New panics if no backend at all is registered for features, which means
// the generic fallback was not linked in.
func New(features cpu.Features, params Params, opts ...Option) *Dispatcher {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("jsimd: no backend registered (missing generic fallback?)")
	}

	d := &Dispatcher{
		features: features,
		params:   params,
		entry:    entry,
	}

	accelerated := 0
	for op := range numOps {
		info := opTable[op]
		ok := cpu.Supports(features, entry.Requires) &&
			info.has(entry) &&
			params.satisfies(info.pre)
		if op == OpHuffEncodeOneBlock && o.noHuffEnc {
			ok = false
		}
		d.enabled[op] = ok
		if ok {
			accelerated++
		}
	}

	cpu.Logger().Debug("jsimd: dispatcher bound",
		"backend", entry.Name,
		"caps", features.Caps.String(),
		"accelerated", accelerated)

	return d
}

// Backend returns the name of the bound backend.
func (d *Dispatcher) Backend() string { return d.entry.Name }

// Features returns the capabilities the dispatcher was built for.
func (d *Dispatcher) Features() cpu.Features { return d.features }

// Params returns the configuration the dispatcher was built for.
func (d *Dispatcher) Params() Params { return d.params }

// Can reports whether op runs on a vector kernel.
func (d *Dispatcher) Can(op Op) bool {
	if op < 0 || op >= numOps {
		return false
	}
	return d.enabled[op]
}

var (
	defaultDispatcher *Dispatcher
	defaultOnce       sync.Once
)

// Default returns the process-wide dispatcher. The first call resolves the
// CPU capabilities, reads the environment overrides and binds a backend.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		var opts []Option
		if cpu.LoadConfig().NoHuffEnc {
			opts = append(opts, WithoutHuffEnc())
		}
		defaultDispatcher = New(cpu.DetectFeatures(), DefaultParams(), opts...)
	})
	return defaultDispatcher
}

// Can reports whether op runs on a vector kernel in the default dispatcher.
func Can(op Op) bool {
	switch op {
	case OpYCCRGB565, OpHuffEncodeOneBlock:
		return false
	}
	return Default().Can(op)
}

// SetLogger sets the logger used for capability resolution and dispatcher
// binding. Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) { cpu.SetLogger(l) }

// Logger returns the current logger.
func Logger() *slog.Logger { return cpu.Logger() }
