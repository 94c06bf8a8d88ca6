// Package linf realizes the sup-metric embedding target used to carry
// canonical compact representatives of isometry classes.
//
// Overview:
//
//   - On a finite carrier the Kuratowski embedding is exact and finite
//     dimensional: point x of an n-point space maps to the vector
//     (d(x,x₀), …, d(x,x_{n-1})) in ℝⁿ, and the sup metric on these
//     vectors reproduces the original distances. No infinite-dimensional
//     sequence space is needed operationally; ℝⁿ under the Chebyshev
//     (ℓ∞) distance plays its role.
//   - CompactSet wraps a nonempty finite set of equal-dimension vectors —
//     the canonical compact representative of an isometry class inside
//     the embedding target. It is immutable once built.
//   - The package provides the sup-distance kernel, the Hausdorff distance
//     between two compact sets in a common target, and recovery of the
//     induced metric space from a set.
//
// Key invariants:
//
//   - Embed is distance-preserving; the constructor verifies this against
//     the source space and refuses to return a non-isometric embedding.
//   - A CompactSet is nonempty and dimensionally homogeneous; distances
//     between sets are only defined inside one target dimension.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilSpace          — nil *metric.Space input.
//   - ErrEmptySet          — empty vector set (nonemptiness invariant).
//   - ErrDimensionMismatch — ragged vectors or sets from different targets.
//   - ErrNaNInf            — non-finite coordinate.
//   - ErrNotIsometric      — embedding verification failed (programming
//     error in the caller-supplied data, surfaced loudly).
//
// The Chebyshev kernel runs on contiguous buffers through viterin/vek.
package linf
