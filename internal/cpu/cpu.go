// Package cpu resolves which vector extensions the accelerated JPEG kernels
// may use on the current process.
//
// Resolution runs lazily on the first query and its result is cached for the
// lifetime of the process. The order of evidence is:
//
//  1. JSIMD_FORCENONE in the environment disables every extension.
//  2. JSIMD_FORCEMSA in the environment enables MSA unconditionally.
//  3. A build for a MIPS target with the jsimd_msa tag asserts MSA without
//     probing.
//  4. The kernel's hardware capability bits, as exposed by golang.org/x/sys/cpu.
//  5. On Linux MIPS, a line scan of /proc/cpuinfo for the "msa" token.
//
// A failed probe means "not available". It is logged at debug level and never
// surfaced to callers.
package cpu

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Capability is a bitmask of vector extensions usable by the accelerated
// kernels.
type Capability uint32

const (
	// MSA is the MIPS SIMD Architecture, 128-bit vectors.
	MSA Capability = 1 << 0

	// Unresolved marks a capability mask that has not been probed yet. It is
	// distinct from 0, which means probed and nothing found.
	Unresolved = ^Capability(0)
)

// Has reports whether every bit of want is present in c.
func (c Capability) Has(want Capability) bool {
	return c != Unresolved && c&want == want
}

// String returns a human-readable list of the bits in c.
func (c Capability) String() string {
	switch {
	case c == Unresolved:
		return "unresolved"
	case c == 0:
		return "none"
	}

	var names []string
	if c&MSA != 0 {
		names = append(names, "msa")
	}
	if rest := c &^ MSA; rest != 0 {
		names = append(names, "unknown")
	}
	return strings.Join(names, ",")
}

// Source records which piece of evidence produced a capability mask.
type Source int

const (
	// SourceNone means no evidence was found; the mask is 0.
	SourceNone Source = iota

	// SourceBuild means the binary was built for an MSA target.
	SourceBuild

	// SourceHWCap means the kernel's hardware capability bits reported MSA.
	SourceHWCap

	// SourceProbe means the cpuinfo scan found the feature token.
	SourceProbe

	// SourceEnv means an environment override decided the mask.
	SourceEnv

	// SourceForced means SetForcedFeatures decided the mask.
	SourceForced
)

// String returns the lower-case name of the source.
func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceBuild:
		return "build"
	case SourceHWCap:
		return "hwcap"
	case SourceProbe:
		return "probe"
	case SourceEnv:
		return "env"
	case SourceForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Features describes the resolved vector capabilities of this process.
type Features struct {
	Caps   Capability // resolved mask, never Unresolved
	HasMSA bool       // Caps has MSA

	// Control flags
	ForceGeneric bool // Disable all vector kernels (JSIMD_FORCENONE)

	// Provenance
	Source       Source // evidence that decided Caps
	Architecture string // runtime.GOARCH
}

// Resolver caches the outcome of a detection function. The first call to
// Capabilities or Features runs detect exactly once, even when many
// goroutines ask at the same time; later calls only read the cached state.
type Resolver struct {
	state    atomic.Uint32
	once     sync.Once
	detect   func() Features
	features Features
}

// NewResolver returns a resolver in the unresolved state.
func NewResolver(detect func() Features) *Resolver {
	r := &Resolver{detect: detect}
	r.state.Store(uint32(Unresolved))
	return r
}

func (r *Resolver) resolve() {
	r.once.Do(func() {
		f := r.detect()
		f.HasMSA = f.Caps&MSA != 0
		r.features = f
		r.state.Store(uint32(f.Caps))

		Logger().Debug("jsimd: capabilities resolved",
			"caps", f.Caps.String(),
			"source", f.Source.String(),
			"arch", f.Architecture)
	})
}

// Peek returns the cached mask without triggering resolution. It returns
// Unresolved until the first query has completed.
func (r *Resolver) Peek() Capability {
	return Capability(r.state.Load())
}

// Capabilities returns the resolved mask, resolving on first use.
func (r *Resolver) Capabilities() Capability {
	if c := r.Peek(); c != Unresolved {
		return c
	}
	r.resolve()
	return r.Peek()
}

// Features returns the resolved features, resolving on first use.
func (r *Resolver) Features() Features {
	r.resolve()
	return r.features
}

var (
	// resolver holds the process-wide detection cache.
	resolver = NewResolver(detectFeaturesImpl)

	// resolverMutex serializes replacement of resolver by ResetDetection.
	resolverMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

func currentResolver() *Resolver {
	resolverMutex.Lock()
	defer resolverMutex.Unlock()
	return resolver
}

func forced() *Features {
	forcedMutex.RLock()
	defer forcedMutex.RUnlock()
	return forcedFeatures
}

// DetectFeatures returns the vector features available to this process.
//
// Detection is performed once on the first call and cached for subsequent
// calls. This function is safe for concurrent use.
func DetectFeatures() Features {
	if f := forced(); f != nil {
		return *f
	}
	return currentResolver().Features()
}

// ResolveCapabilities returns the resolved capability mask.
func ResolveCapabilities() Capability {
	if f := forced(); f != nil {
		return f.Caps
	}
	return currentResolver().Capabilities()
}

// PeekCapabilities returns the cached mask without resolving it, or
// Unresolved if no query has run yet.
func PeekCapabilities() Capability {
	if f := forced(); f != nil {
		return f.Caps
	}
	return currentResolver().Peek()
}

// HasMSA reports whether MSA kernels may be used.
func HasMSA() bool {
	return ResolveCapabilities().Has(MSA)
}

// SetForcedFeatures overrides detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	f.HasMSA = f.Caps&MSA != 0
	f.Source = SourceForced
	forcedFeatures = &f
}

// ResetDetection clears any forced features and the detection cache, so the
// next query probes again. This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	resolverMutex.Lock()
	resolver = NewResolver(detectFeaturesImpl)
	resolverMutex.Unlock()
}

// Supports reports whether features allow a kernel that needs the required
// capability bits. A kernel with no requirement is always supported.
func Supports(features Features, required Capability) bool {
	if required == 0 {
		return true
	}
	if features.ForceGeneric {
		return false
	}
	return features.Caps.Has(required)
}
