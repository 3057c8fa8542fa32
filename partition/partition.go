// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpart/geom"
)

// Partition buckets the indices of points into a partitionsPerAxis ×
// partitionsPerAxis grid of square cells laid over box.
//
// Behavior:
//  1. Reject partitionsPerAxis < 1, or a value whose square overflows int,
//     with ErrInvalidPartitions.
//  2. partitionsPerAxis == 1: one cell equal to box holding every index
//     in input order. No cell coordinates are computed.
//  3. Otherwise step = max(box.Width, box.Height) / partitionsPerAxis.
//     For point i:
//     cellX = floor((x - box.X) / step), cellY = floor((y - box.Y) / step),
//     a coordinate equal to partitionsPerAxis is clamped to the last cell,
//     and i is appended to group cellY*partitionsPerAxis + cellX.
//  4. A coordinate outside [0, partitionsPerAxis] returns *OutOfBoundsError
//     for the first offending point. No partial result is returned.
//  5. Cell boxes are emitted row-major, x fastest, each step × step.
//
// If every point lies inside box, each index appears in exactly one group.
//
// Time: O(n + P²). Memory: O(n + P²).
func Partition(points []geom.Point, box geom.BBox, partitionsPerAxis int, opts ...Option) (Partitions, error) {
	o := gatherOptions(opts...)
	if partitionsPerAxis < 1 || partitionsPerAxis > math.MaxInt/partitionsPerAxis {
		return Partitions{}, fmt.Errorf("%w: got %d", ErrInvalidPartitions, partitionsPerAxis)
	}
	if partitionsPerAxis == 1 {
		return singleCell(points, box), nil
	}

	per := partitionsPerAxis
	step := math.Max(box.Width, box.Height) / float64(per)
	o.logger.Debug("partitioning points",
		"points", len(points), "partitionsPerAxis", per, "step", step)

	grouped := make([][]int, per*per)
	for k := range grouped {
		grouped[k] = make([]int, 0)
	}

	for i, p := range points {
		cx, okX := cellCoord(p.X-box.X, step, per)
		cy, okY := cellCoord(p.Y-box.Y, step, per)
		if !okX || !okY {
			err := &OutOfBoundsError{Index: i, Point: p, CellX: cx, CellY: cy, PerAxis: per}
			o.logger.Debug("point outside grid",
				"index", i, "x", p.X, "y", p.Y, "cellX", cx, "cellY", cy, "box", box)
			return Partitions{}, err
		}
		k := cy*per + cx
		grouped[k] = append(grouped[k], i)
	}

	return Partitions{
		Shape:   Shape{Cols: per, Rows: per},
		BBoxes:  cellBoxes(box, step, per),
		Grouped: grouped,
	}, nil
}

// singleCell is the partitionsPerAxis == 1 layout.
func singleCell(points []geom.Point, box geom.BBox) Partitions {
	all := make([]int, len(points))
	for i := range all {
		all[i] = i
	}
	return Partitions{
		Shape:   Shape{Cols: 1, Rows: 1},
		BBoxes:  []geom.BBox{box},
		Grouped: [][]int{all},
	}
}

// cellCoord maps an offset from the box origin to a cell coordinate on one
// axis. ok is false when the coordinate falls outside [0, per); the far
// edge (raw == per) is clamped to per-1.
//
// With step == 0 every point of the box coincides with its origin, so only
// a zero offset is in range.
func cellCoord(offset, step float64, per int) (cell int, ok bool) {
	if math.IsNaN(offset) {
		return -1, false
	}

	var raw float64
	switch {
	case step != 0:
		raw = math.Floor(offset / step)
	case offset == 0:
		raw = 0
	default:
		raw = math.Copysign(math.Inf(1), offset)
	}

	switch {
	case math.IsNaN(raw):
		return -1, false
	case raw == float64(per):
		return per - 1, true
	case raw < 0, raw > float64(per):
		return saturate(raw), false
	}
	return int(raw), true
}

// saturate converts f to int, pinned to the int32 range.
func saturate(f float64) int {
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// cellBoxes lays out per² square cells of side step, row-major with x
// varying fastest, anchored at the box origin.
func cellBoxes(box geom.BBox, step float64, per int) []geom.BBox {
	boxes := make([]geom.BBox, per*per)
	for k := range boxes {
		col, row := k%per, k/per
		// conversions round each product before the add (no FMA fusion)
		boxes[k] = geom.BBox{
			X:      float64(float64(col)*step) + box.X,
			Y:      float64(float64(row)*step) + box.Y,
			Width:  step,
			Height: step,
		}
	}
	return boxes
}
