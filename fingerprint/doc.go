// Package fingerprint maps a finite compact metric space to a bounded
// combinatorial object: the quantized distance matrix of a deterministic
// ε-net. Fingerprints are the module's one serializable artifact and the
// computational witness for the two classical facts about GH space that
// reduce to counting:
//
//   - Total boundedness (Gromov compactness criterion): under a uniform
//     diameter bound C and a uniform covering bound K(ε), at most
//     K·(M+1)^(K²) distinct fingerprints exist at resolution ε, so the
//     family of spaces is covered by finitely many balls of computable
//     radius. TotallyBounded returns that bound.
//   - Second countability: the resolutions ε_k = 2^{-k} form a countable
//     schedule (Schedule) along which fingerprints separate points of GH
//     space arbitrarily finely.
//
// Construction (New):
//
//  1. Take the deterministic greedy ε-net of the space (metric.EpsNet);
//     reject nets larger than the configured cap with ErrNetTooLarge.
//  2. Quantize the net's pairwise distances to ⌊d/ε⌋, capped at M. The
//     cap's range M·ε must cover the diameter (ErrCapTooSmall
//     otherwise), so no cell ever saturates and every cell faithfully
//     buckets its distance.
//  3. Record ε, the net size, the cap and the diameter bound as metadata.
//
// Soundness: two spaces with identical fingerprints at resolution ε are
// within Bound() = 5·ε/2 of each other in Gromov–Hausdorff distance.
// The cap check in step 2 is the premise that makes this unconditional:
// a saturated cell would equate arbitrarily distant nets.
// The converse is NOT claimed: isometric spaces presented in different
// point orders may produce different fingerprints, because the greedy net
// depends on point order. Fingerprints gate and bound, they do not decide
// isometry (ghspace.Equal does).
//
// Wire format: msgpack (Encode/Decode). Decode re-validates every field
// and returns ErrCorruptPayload on malformed input. Key returns an
// xxhash digest of the canonical encoding for use as a map or store key.
//
// Error handling follows the module convention: package-level sentinel
// errors matched via errors.Is, panics only for programmer errors in
// functional-option constructors.
package fingerprint
