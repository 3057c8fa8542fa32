// SPDX-License-Identifier: MIT

// Package partition buckets a 2D point set into a uniform grid of square
// cells and offers two consumers of the result: a boundary validator and a
// deterministic per-cell subsampler.
//
// What:
//
//   - Partition assigns every point index to one cell of a P×P grid laid
//     over a bounding box, and returns per-cell boxes plus index lists.
//   - FindBadCells re-runs Partition and reports only the cells holding a
//     point that fails the closed containment test against the cell box.
//   - RepresentativeSample / SamplePerCell reduce each cell to the
//     (first, middle, last) triple of its indices, or to nothing when the
//     cell holds fewer than three points.
//   - PaddedPartition and SampledPartition compose the above.
//
// Grid layout:
//
//	step = max(box.Width, box.Height) / P
//
//	Both axes use the same step, so cells are square and the grid may
//	overhang the box on its shorter axis. Cells are numbered row-major
//	with x varying fastest:
//
//	  y ▲
//	    │ 2 │ 3 │
//	    │───┼───│
//	    │ 0 │ 1 │
//	    └────────▶ x
//
//	A point exactly on the far edge of the box (raw cell index == P) is
//	clamped into the last cell of that axis; nothing else is clamped.
//
// Indices, not copies:
//
//	Partitions.Grouped[k] holds indices into the caller's point slice.
//	Use Partitions.Points to materialise a cell's points.
//
// Complexity:
//
//   - Partition:      O(n + P²) time, O(n + P²) memory.
//   - FindBadCells:   O(n + P²) time.
//   - SamplePerCell:  O(P²) time.
//
// Options:
//
//   - WithLogger: route debug events (grid layout, rejections, bad cells)
//     to a *slog.Logger. Silent by default.
//
// Errors:
//
//   - ErrInvalidPartitions: partitionsPerAxis < 1, or P² overflows int.
//   - ErrOutOfBounds (as *OutOfBoundsError): a point maps outside the grid,
//     i.e. it lies outside the supplied box.
//   - geom.ErrEmptyInput: surfaced by callers that derive the box with
//     geom.BoundingBox.
//
// Every function is pure and safe for concurrent use on independent inputs.
package partition
