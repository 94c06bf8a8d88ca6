// Package coupling computes exact Gromov–Hausdorff distances between
// finite metric spaces and realizes them by explicit optimal couplings.
//
// Overview:
//
//   - The Gromov–Hausdorff distance is the infimum of Hausdorff distances
//     between isometric copies of two spaces over all joint embeddings.
//     For finite spaces that infimum reduces to a finite combinatorial
//     minimum: GH(X,Y) = ½·min distortion over correspondences R ⊆ X×Y
//     (relations covering both factors), and it suffices to search
//     relations of the form graph(f) ∪ graph(g)ᵀ for maps f: X→Y and
//     g: Y→X — any correspondence contains such a sub-relation of no
//     larger distortion. The search is therefore exact, not a relaxation
//     of the infinite-dimensional candidate family.
//
//   - Optimal runs a deterministic depth-first branch-and-bound over the
//     (f,g) assignments: incumbent upper bound from a greedy warm start,
//     running maximal distortion as the admissible per-branch lower
//     bound, |diam X − diam Y| as the root bound, candidate values tried
//     in ascending incremental-distortion order (index tiebreak), and an
//     optional node budget. A trivial correspondence always exists, so
//     the minimum is finite and the function is total on valid inputs.
//
//   - The minimizing correspondence is then *realized*: its pairs become
//     the seam of a slack glue at eps = distortion/2 (an exact-seam glue
//     when the distortion vanishes), producing an ambient space in which
//     the Hausdorff distance between the two copies equals the GH
//     distance exactly. Attainment is constructed, not approximated, and
//     verified before the coupling is returned.
//
// Base cases:
//
//   - If either factor is a single point the optimum degenerates to
//     ½·diam of the other factor and is produced directly, skipping the
//     general search.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilSpace          — nil input space.
//   - ErrToleranceNotMet   — the node budget was exhausted before the
//     certified gap shrank below Options.Tolerance. The returned result
//     still carries the best incumbent and certified Lower/Upper bounds;
//     callers may retry with a larger budget.
//   - ErrCouplingInvariant — the realized ambient failed its Hausdorff
//     verification (programming error; fail loudly).
//
// Complexity:
//
//   - Worst case exponential in |X|+|Y| (the problem is NP-hard in
//     general); pruning keeps small instances fast. Per search node the
//     incremental distortion costs O(depth).
//
// Concurrency: Optimal is pure; WithParallel splits the root assignments
// across an errgroup with a deterministic merge, so results are
// bit-identical to the sequential search.
package coupling
