// Package fingerprint: sentinel errors and construction options.
package fingerprint

import "errors"

// Sentinel errors returned by the fingerprint package.
var (
	// ErrNilSpace indicates a nil *metric.Space input.
	ErrNilSpace = errors.New("fingerprint: space is nil")

	// ErrNilClass indicates a nil *ghspace.Class input.
	ErrNilClass = errors.New("fingerprint: class is nil")

	// ErrBadResolution indicates a non-positive resolution ε.
	ErrBadResolution = errors.New("fingerprint: resolution must be positive")

	// ErrNetTooLarge indicates the greedy ε-net exceeded the configured
	// cardinality cap, i.e. the covering bound the caller assumed fails
	// for this space at this resolution.
	ErrNetTooLarge = errors.New("fingerprint: epsilon-net exceeds cardinality cap")

	// ErrBadBound indicates a non-positive diameter bound passed to the
	// compactness criterion.
	ErrBadBound = errors.New("fingerprint: diameter bound must be positive")

	// ErrCapTooSmall indicates an explicit quantization cap whose range
	// Cap·ε does not cover the space diameter. Saturated cells would void
	// the soundness bound, so such fingerprints are never built.
	ErrCapTooSmall = errors.New("fingerprint: quantization cap below diameter")

	// ErrBadDepth indicates a non-positive schedule depth.
	ErrBadDepth = errors.New("fingerprint: schedule depth must be positive")

	// ErrCorruptPayload indicates an encoded fingerprint that failed
	// structural validation on Decode.
	ErrCorruptPayload = errors.New("fingerprint: corrupt payload")
)

// DefaultMaxNet caps the ε-net cardinality when no option overrides it.
const DefaultMaxNet = 64

// Options configures fingerprint construction.
//
// MaxNet – cardinality cap K on the ε-net; nets larger than this fail
//          with ErrNetTooLarge.
// Cap    – quantization cap M; matrix cells store min(⌊d/ε⌋, Cap).
//          Zero derives the cap from the space diameter (⌈diam/ε⌉). Set
//          it explicitly when fingerprints from a family with a shared
//          diameter bound C must be comparable (M = ⌈C/ε⌉); the cap must
//          satisfy Cap·ε ≥ diameter (ErrCapTooSmall otherwise), which
//          keeps cells saturation-free and the soundness bound valid.
type Options struct {
	MaxNet int // net cardinality cap K, > 0
	Cap    int // quantization cap M, > 0, or 0 to derive from the diameter
}

// Option is a functional option for fingerprint construction.
type Option func(*Options)

// WithMaxNet overrides the ε-net cardinality cap. Non-positive values
// panic immediately (programmer error).
func WithMaxNet(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic("fingerprint: MaxNet must be positive")
		}
		o.MaxNet = k
	}
}

// WithCap fixes the quantization cap M. Non-positive values panic
// immediately (programmer error).
func WithCap(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			panic("fingerprint: Cap must be positive")
		}
		o.Cap = m
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: net cap DefaultMaxNet, quantization cap derived from the
// space diameter.
func DefaultOptions() Options {
	return Options{
		MaxNet: DefaultMaxNet,
		Cap:    0,
	}
}
