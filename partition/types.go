// SPDX-License-Identifier: MIT

package partition

import "github.com/katalvlaran/gridpart/geom"

// Shape is the grid resolution as (columns, rows).
type Shape struct {
	Cols, Rows int
}

// Partitions is the result of bucketing points into a grid.
//
// Fields:
//   - Shape   — requested grid resolution.
//   - BBoxes  — one box per cell, row-major with x varying fastest.
//   - Grouped — per cell, indices into the original point slice in input order.
//
// For grids returned by Partition and SamplePerCell,
// len(BBoxes) == len(Grouped) == Shape.Cols*Shape.Rows. Reports returned by
// FindBadCells keep Shape but list only the failing cells.
type Partitions struct {
	Shape   Shape
	BBoxes  []geom.BBox
	Grouped [][]int
}

// Len returns the number of cells listed.
func (p Partitions) Len() int { return len(p.Grouped) }

// Count returns the total number of indices across all cells.
func (p Partitions) Count() int {
	total := 0
	for _, g := range p.Grouped {
		total += len(g)
	}
	return total
}

// Index returns the linear cell index of (col, row): row*Cols + col.
func (p Partitions) Index(col, row int) int {
	return row*p.Shape.Cols + col
}

// Points returns the points of cell k, looked up in points by index and in
// group order. points must be the slice the partition was built from.
func (p Partitions) Points(points []geom.Point, k int) []geom.Point {
	group := p.Grouped[k]
	out := make([]geom.Point, len(group))
	for i, idx := range group {
		out[i] = points[idx]
	}
	return out
}
