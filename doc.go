// Package crsmat is the matrix engine behind coordinate-referencing work:
// it builds, combines, and inverts the small affine transforms that move
// coordinates between axis orders, units, and projected representations.
//
// 🚀 What is crsmat?
//
//	A pure-Go linear-algebra core tuned for transform matrices:
//		• Extended precision: every cell is a double-double (hi/lo) value
//		• Exact zeros: absent cells are structural zeros, so 0 × NaN = 0
//		• LU solver: partial pivoting, with "unknown entry" (NaN) repair
//		  for affine matrices
//		• Factory algorithms: envelope-to-envelope transforms, axis
//		  reordering/flipping, dimension selection, pass-through embedding
//		• Affine editing: resize, uniform-scale forcing, per-dimension
//		  convert-before/after shortcuts
//
// ✨ Why choose crsmat?
//
//   - Decimal-aware – ingested constants carry the error of their decimal
//     literal, so π/180 round-trips through an inverse without drift
//   - Rock-solid contracts – sentinel errors, no panics in the public API
//   - Pure Go – no cgo, no BLAS, no hidden deps
//   - Small on purpose – transform matrices are ≤10×10; clarity wins
//
// Under the hood, everything is organized under two subpackages:
//
//	xprec/  — DoubleDouble arithmetic & Term cells (zero-as-absence)
//	matrix/ — Dense storage, solver, factory, views, box-drawing formatter
//
// Quick ASCII example:
//
//	┌          ┐
//	│ 0  -1  0 │
//	│ 1   0  0 │
//	│ 0   0  1 │
//	└          ┘
//
//	maps (north, west) axes onto (east, north).
//
// Dive into the package docs of matrix/ for the full operation surface and
// into examples/ for end-to-end envelope remapping scenarios.
//
//	go get github.com/katalvlaran/crsmat
package crsmat
