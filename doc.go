// SPDX-License-Identifier: MIT

// Package gridpart splits a 2D point set into a uniform grid of square
// cells so that downstream geometry can work on spatially bounded subsets
// instead of the whole set.
//
// 🚀 What is gridpart?
//
//	A small, pure, in-memory library:
//		• Bounding boxes: compute the minimal box, pad it about its center
//		• Grid partitioning: P×P square cells, per-cell boxes + index lists
//		• Validation: find cells whose points fail the containment test
//		• Subsampling: reduce each cell to a (first, middle, last) triple
//
// ✨ Why gridpart?
//
//   - Indices, not copies – cells reference the caller's slice by index
//   - Deterministic – no randomness, no global state, stable ordering
//   - Fail fast – empty input, bad resolution and stray points are errors
//   - Safe for concurrent use on independent inputs, no locks involved
//
// Packages:
//
//	geom/      — Point, BBox, BoundingBox, Pad (gonum r2 interop)
//	partition/ — Partition, FindBadCells, RepresentativeSample, SamplePerCell
//	examples/  — runnable end-to-end demo
//
// Quick ASCII example (P = 2, box 10×10):
//
//	  10 ┌─────┬─────┐
//	     │  2  │  3  │ ← (10,10) clamped into cell 3
//	   5 ├─────┼─────┤
//	     │  0  │  1  │
//	   0 └─────┴─────┘
//	     0     5    10
//
//	go get github.com/katalvlaran/gridpart
package gridpart
