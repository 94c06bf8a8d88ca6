// Package gromov computes exact Gromov–Hausdorff geometry for finite
// compact metric spaces: distances, optimal couplings, metric gluing,
// completion by gluing, and discretization fingerprints.
//
// 🚀 What is gromov?
//
//	A deterministic, pure-Go library that brings together:
//		• Validated finite metric spaces: staged construction checks, ε-nets,
//		  Hausdorff distance, subspace restriction
//		• Sup-metric embeddings: distance-matrix rows as exact isometric
//		  coordinates, vectorized Chebyshev kernels
//		• Metric gluing: exact isometric seams and slack seams for
//		  almost-matching subsets
//		• Optimal couplings: branch-and-bound over correspondences with
//		  certified bounds, warm starts and a deterministic parallel mode —
//		  the Hausdorff distance of the realized coupling EQUALS the
//		  Gromov–Hausdorff distance
//		• Isometry classes: canonical representatives, digest-gated exact
//		  isometry decision, an arena registry with union-find
//		• Completion by gluing: Cauchy sequences of classes glued onto an
//		  append-only arena, limit witnesses at certified precision
//		• Fingerprints: quantized ε-net matrices with a msgpack wire form,
//		  soundness bounds, and the counting witnesses for compactness and
//		  second countability
//
// ✨ Why choose gromov?
//
//   - Exact, not approximate – attainment is verified, bounds are certified
//   - Deterministic – stable nets, stable digests, reproducible searches
//   - Loud failures – every invariant is asserted at construction time
//   - Explicit configuration – resolutions, caps and budgets are options,
//     never hidden constants
//
// Everything is organized under seven subpackages:
//
//	metric/      — validated finite metric spaces, ε-nets, Hausdorff queries
//	linf/        — sup-metric vector sets and the exact finite embedding
//	glue/        — exact-seam and slack-seam amalgam constructors
//	coupling/    — the optimal-coupling branch-and-bound search
//	ghspace/     — isometry classes, the GH metric, the class registry
//	completion/  — Cauchy-sequence completion via an append-only glue arena
//	fingerprint/ — quantized ε-net fingerprints, codec and compactness bounds
//
// Quick ASCII example:
//
//	  a───b        p
//	  d(a,b)=1    ╱ ╲      GH distance = 1/2:
//	             q───r     any map of {a,b} into the unit triangle
//	  (unit equilateral)   leaves one vertex at distance 1/2
//
// Dive into the per-package docs for contracts, error taxonomies and
// runnable examples.
//
//	go get github.com/metriclab/gromov
package gromov
