// Package completion builds limits of Cauchy sequences in GH space by
// repeated gluing, the constructive witness that the space of isometry
// classes is complete.
//
// Input is a Sequence u_0, u_1, … of isometry classes assumed contractive:
// Dist(u_n, u_{n+1}) < 2^{-n}. The precondition is checked on demand while
// gluing (ErrNotContractive names the offending index); no speculative
// distance computations happen up front.
//
// The Builder is a small state machine:
//
//	Seed ──Extend──▶ Glued(n) ──Extend──▶ Glued(n+1) ──Limit──▶
//	InductiveLimit ──▶ UniformCompletion
//
//   - Seed: nothing built yet. The first Extend fetches u_0 and makes its
//     representative the arena.
//   - Glued(n): the arena is a single metric space containing compatible
//     isometric copies of u_0 … u_n. Extend couples rep(u_n) with
//     rep(u_{n+1}) (coupling.Optimal, attainment exact), then glues the
//     coupling's ambient space onto the arena along the u_n copy with an
//     exact seam. The arena is append-only: existing carrier indices
//     never move, so earlier copies stay valid across extensions.
//   - InductiveLimit: the finished arena at the requested depth. Every
//     stage embeds isometrically and compatibly in it, and the copies
//     form a Cauchy chain: Hausdorff(copy_n, copy_N) < 2^{1-n}.
//   - UniformCompletion: the limit witness. The deepest copy, restricted
//     out of the arena and pushed through ToClass, is within 2^{1-N} of
//     the true limit; Result carries that certified precision together
//     with the per-stage Hausdorff certificates.
//
// Limit may be called repeatedly at increasing precision; the builder
// extends the existing arena instead of rebuilding.
//
// Error handling follows the module convention: package-level sentinel
// errors matched via errors.Is; construction bugs in the glue chain
// surface as the glue and coupling invariant sentinels.
package completion
