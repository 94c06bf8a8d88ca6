// Package metric provides the finite metric-space value type shared by
// every other package of the module.
//
// Overview:
//
//   - Space is an immutable finite metric space: n points indexed 0..n-1
//     and a row-major flat distance buffer, validated once at construction.
//   - Construction enforces the full metric axioms (zero diagonal, symmetry,
//     non-negativity, strict positivity off the diagonal, triangle
//     inequality) with strict sentinel errors, so downstream algorithms may
//     assume all invariants hold unconditionally.
//   - On top of the value type, the package offers the small geometric
//     toolkit the rest of the module builds on: diameter, greedy ε-nets,
//     covering numbers, subspace restriction, and the Hausdorff distance
//     between index subsets of one space.
//
// When to use:
//
//   - As the carrier representation for any finitely presented compact
//     metric space: distance matrices from data, glued spaces, coupling
//     ambients, fingerprint nets.
//   - As the validation boundary: reject non-metric input here, once,
//     instead of guarding every algorithm.
//
// Key design points:
//
//   - Immutability: a *Space never changes after New returns; restriction
//     and other derivations allocate fresh spaces.
//   - Flat storage: distances live in a single []float64 of length n², so
//     hot loops index w[i*n+j] with no per-call allocation.
//   - Numeric policy: structural checks (symmetry, diagonal) use a fixed
//     1e-12 tolerance; every distance returned by a query is stabilized to
//     1e-9 via Round9 to keep results identical across platforms.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrEmptySpace        — nil or zero-point input (nonemptiness is an
//     invariant of the whole module).
//   - ErrNonSquare         — ragged or non-square distance matrix.
//   - ErrNaNInf            — NaN or ±Inf entry.
//   - ErrNonZeroDiagonal   — d(i,i) differs from 0 beyond tolerance.
//   - ErrAsymmetry         — d(i,j) ≠ d(j,i) beyond tolerance.
//   - ErrNegativeDistance  — negative entry.
//   - ErrZeroDistance      — d(i,j)=0 for i≠j without WithPseudo.
//   - ErrTriangleViolation — d(i,k) > d(i,j)+d(j,k) beyond tolerance.
//   - ErrBadIDs            — ID slice of wrong length, empty or duplicate.
//   - ErrBadBasepoint      — basepoint index out of range.
//   - ErrBadEpsilon        — non-positive ε passed to a net query.
//   - ErrBadSubset         — empty, duplicated or out-of-range index subset.
//
// Complexity:
//
//   - New: O(n³) time (triangle scan dominates), O(n²) space.
//   - Dist/At: O(1). Diameter: O(1) (cached). EpsNet: O(k·n) for a net of
//     size k. Hausdorff: O(|a|·|b|). Restrict: O(k³) (re-validation).
package metric
