// SPDX-License-Identifier: MIT

package partition

import "github.com/katalvlaran/gridpart/geom"

// PaddedPartition grows box by (paddingX, paddingY) with geom.Pad, keeping
// the points centred, and partitions points over the padded box.
// Non-negative paddings keep every point of box inside the grid.
func PaddedPartition(points []geom.Point, box geom.BBox, paddingX, paddingY float64, partitionsPerAxis int, opts ...Option) (Partitions, error) {
	return Partition(points, geom.Pad(box, paddingX, paddingY), partitionsPerAxis, opts...)
}

// SampledPartition partitions points and reduces every cell to its
// representative triple (see SamplePerCell).
func SampledPartition(points []geom.Point, box geom.BBox, partitionsPerAxis int, opts ...Option) (Partitions, error) {
	grid, err := Partition(points, box, partitionsPerAxis, opts...)
	if err != nil {
		return Partitions{}, err
	}
	return SamplePerCell(grid), nil
}
