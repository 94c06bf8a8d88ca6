// Package glue amalgamates two finite metric spaces into one space
// containing isometric copies of both.
//
// Two modes are provided:
//
//   - Exact seam: the seam pairs describe an isometry between a subset of
//     X and a subset of Y. The glued carrier identifies the two copies of
//     the seam (the Y-side seam points collapse onto their X-side
//     partners) and the cross distance is
//
//     d(x, y) = min over seam s of d_X(x, s.X) + d_Y(s.Y, y).
//
//     Restricting the glued metric to either factor reproduces the
//     original distances exactly.
//
//   - Slack seam: the seam pairs only almost match — their distortion is
//     bounded by 2·eps for a caller-supplied eps > 0. The carrier is the
//     full disjoint union and the cross distance gains an eps slack:
//
//     d(x, y) = min over seam s of d_X(x, s.X) + eps + d_Y(s.Y, y).
//
//     The slack keeps the result a genuine metric (cross distances are
//     strictly positive) and the triangle inequality holds precisely
//     because the distortion bound caps how far the two seam copies
//     disagree. This is the mode the completeness construction and the
//     optimal-coupling realization rely on.
//
// Both constructors re-validate the assembled matrix through metric.New,
// so a symmetry or triangle failure — which would indicate a construction
// bug, not bad user input — surfaces loudly as ErrGlueInvariant instead
// of leaking a corrupt space downstream.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilSpace         — nil factor space.
//   - ErrEmptySeam        — no seam pairs.
//   - ErrSeamRange        — seam index outside its factor.
//   - ErrSeamNotInjective — exact mode: a carrier point appears in two
//     seam pairs.
//   - ErrSeamNotIsometric — exact mode: seam pairs distort distances.
//   - ErrSeamDistortion   — slack mode: seam distortion exceeds 2·eps.
//   - ErrNonPositiveSlack — slack mode: eps ≤ 0.
//   - ErrGlueInvariant    — assembled matrix failed metric validation
//     (programming error; fail loudly).
//
// Complexity: both constructors are O(m²·k) for m = |X|+|Y| carrier
// points and k seam pairs, plus the O(m³) metric re-validation.
package glue
