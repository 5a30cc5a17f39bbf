// Package jsimd decides, once per process, whether the block operations of
// a JPEG codec can run on vector kernels, and routes them there.
//
// Every operation comes as a pair: a query such as [CanIDCTIslow] and a
// perform such as [IDCTIslow]. A query answers true only when the resolved
// CPU capabilities include what the selected backend's kernel needs, the
// backend actually provides a kernel for that operation, and every static
// parameter the kernel is specialised for (sample width, coefficient width,
// block size and so on) matches [Params]. A perform whose query is false
// leaves its destination untouched; callers must use their scalar path
// instead.
//
// Only the accurate integer inverse DCT has a vector kernel today. All other
// queries answer false on every host.
//
// The package-level functions use the process-wide [Default] dispatcher. Use
// [New] to build a dispatcher for explicit features and parameters, for
// example in tests.
//
// Logging is silent by default. Call [SetLogger] to see which backend was
// bound and how the capability mask was resolved.
package jsimd
