// SPDX-License-Identifier: MIT

package partition

import "github.com/katalvlaran/gridpart/geom"

// FindBadCells partitions points like Partition and returns only the cells
// holding at least one point that the closed test geom.BBox.Contains
// rejects for that cell's box.
//
// The report is a flat list, not a sub-grid: Shape still carries the
// requested resolution while BBoxes and Grouped list the failing cells in
// encounter order. An empty report has zero-length, non-nil slices.
//
// Failures can only come from floating-point rounding at cell edges, e.g. a
// point on the far edge of box clamped into a last cell whose computed
// upper edge rounds just below it.
//
// Errors from Partition are returned unchanged.
//
// Time: O(n + P²).
func FindBadCells(points []geom.Point, box geom.BBox, partitionsPerAxis int, opts ...Option) (Partitions, error) {
	o := gatherOptions(opts...)
	grid, err := Partition(points, box, partitionsPerAxis, opts...)
	if err != nil {
		return Partitions{}, err
	}

	report := Partitions{
		Shape:   grid.Shape,
		BBoxes:  []geom.BBox{},
		Grouped: [][]int{},
	}
	for k, cell := range grid.BBoxes {
		group := grid.Grouped[k]
		bad := misplaced(points, cell, group)
		if bad < 0 {
			continue
		}
		o.logger.Debug("point outside its cell",
			"cell", k, "col", k%grid.Shape.Cols, "row", k/grid.Shape.Cols,
			"index", bad, "x", points[bad].X, "y", points[bad].Y, "cellBox", cell)
		report.BBoxes = append(report.BBoxes, cell)
		report.Grouped = append(report.Grouped, group)
	}
	return report, nil
}

// misplaced returns the first index in group whose point lies outside
// cell, or -1 if every point is contained.
func misplaced(points []geom.Point, cell geom.BBox, group []int) int {
	for _, idx := range group {
		if !cell.Contains(points[idx]) {
			return idx
		}
	}
	return -1
}
