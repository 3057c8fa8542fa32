// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpart/geom"
	"github.com/katalvlaran/gridpart/partition"
)

// TestRepresentativeSample covers sparse and populated lists.
func TestRepresentativeSample(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"nil", nil, []int{}},
		{"one", []int{4}, []int{}},
		{"two", []int{4, 9}, []int{}},
		{"three", []int{4, 9, 11}, []int{4, 9, 11}},
		{"four picks upper middle", []int{1, 2, 3, 4}, []int{1, 3, 4}},
		{"five", []int{10, 20, 30, 40, 50}, []int{10, 30, 50}},
		{"unsorted keeps positions", []int{7, 2, 9, 0, 5, 3}, []int{7, 0, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := partition.RepresentativeSample(tc.in)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRepresentativeSample_NoAlias: the result never shares storage with
// the input.
func TestRepresentativeSample_NoAlias(t *testing.T) {
	in := []int{1, 2, 3}
	out := partition.RepresentativeSample(in)
	out[0] = 99
	assert.Equal(t, []int{1, 2, 3}, in)
}

// TestSamplePerCell preserves shape and boxes and samples each group.
func TestSamplePerCell(t *testing.T) {
	p := partition.Partitions{
		Shape: partition.Shape{Cols: 2, Rows: 1},
		BBoxes: []geom.BBox{
			{X: 0, Y: 0, Width: 1, Height: 1},
			{X: 1, Y: 0, Width: 1, Height: 1},
		},
		Grouped: [][]int{{0, 2, 4, 6}, {1, 3}},
	}

	got := partition.SamplePerCell(p)
	assert.Equal(t, p.Shape, got.Shape)
	assert.Equal(t, p.BBoxes, got.BBoxes)
	assert.Equal(t, [][]int{{0, 4, 6}, {}}, got.Grouped)

	got.BBoxes[0].X = 42
	assert.Equal(t, 0.0, p.BBoxes[0].X, "boxes must be copied")
	assert.Equal(t, []int{0, 2, 4, 6}, p.Grouped[0], "input untouched")
}

// TestSampledPartition composes Partition and SamplePerCell.
func TestSampledPartition(t *testing.T) {
	pts := make([]geom.Point, 7)
	for i := range pts {
		pts[i] = geom.Point{X: float64(i), Y: 0}
	}
	box, err := geom.BoundingBox(pts)
	require.NoError(t, err)

	got, err := partition.SampledPartition(pts, box, 2)
	require.NoError(t, err)
	assert.Equal(t, partition.Shape{Cols: 2, Rows: 2}, got.Shape)
	assert.Len(t, got.BBoxes, 4)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 5, 6}, {}, {}}, got.Grouped)

	_, err = partition.SampledPartition(pts, box, 0)
	assert.ErrorIs(t, err, partition.ErrInvalidPartitions)
}

// TestPaddedPartition keeps the points centred in a grown grid.
func TestPaddedPartition(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}}
	box, err := geom.BoundingBox(pts)
	require.NoError(t, err)

	got, err := partition.PaddedPartition(pts, box, 2, 2, 3)
	require.NoError(t, err)
	// padded box is (-1,-1,6,6), step 2: corners fall in cells 0 and 8
	assert.Equal(t, geom.BBox{X: -1, Y: -1, Width: 2, Height: 2}, got.BBoxes[0])
	assert.Equal(t, []int{0}, got.Grouped[0])
	assert.Equal(t, []int{2}, got.Grouped[4])
	assert.Equal(t, []int{1}, got.Grouped[8])
	assert.Equal(t, len(pts), got.Count())

	_, err = partition.PaddedPartition(pts, box, -2, -2, 3)
	assert.ErrorIs(t, err, partition.ErrOutOfBounds, "shrinking the box drops the corners")
}
