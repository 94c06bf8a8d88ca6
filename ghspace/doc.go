// Package ghspace implements the points of Gromov–Hausdorff space:
// isometry classes of nonempty finite compact metric spaces, the exact
// GH metric between them, and an arena registry for repeated comparisons.
//
// Overview:
//
//   - A Class is one point of GH space. It is represented by a canonical
//     compact representative obtained by pushing the input space through
//     the sup-metric embedding target (linf) — the choice of
//     representative is a pure implementation detail and is not
//     observable through the API: any two inputs of the same isometry
//     type yield Equal classes (ToClass is idempotent on isometry types).
//   - No literal equivalence-class objects exist. Each Class carries an
//     isometry-invariant digest (xxhash over the size and the sorted,
//     stabilized distance multiset) that gates the expensive decision
//     procedures: unequal digests settle inequality immediately, equal
//     digests fall through to an exact isometry search.
//   - Dist delegates to the optimal-coupling search, so the returned
//     value is the exact GH distance and the metric axioms hold on
//     classes: Dist(p,p)=0, symmetry, triangle inequality, and
//     Dist(p,q)=0 ⟹ Equal(p,q) (the realizing coupling's copies
//     coincide, exhibiting the isometry).
//   - Registry is the arena suggested for workloads that compare many
//     spaces: Add dedupes via digest + isometry search and returns a
//     stable handle; Find/Union expose the union-find canonicalization
//     so externally discovered identifications (a zero distance from a
//     coupling run) can be recorded.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilSpace  — nil *metric.Space input.
//   - ErrNilClass  — nil *Class operand.
//   - ErrBadHandle — registry handle out of range.
//
// Complexity: digesting is O(n² log n); the isometry search is worst-case
// factorial but prunes on partial distance rows, which settles all
// non-pathological instances quickly. Dist inherits the coupling search
// cost.
package ghspace
