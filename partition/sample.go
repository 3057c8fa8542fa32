// SPDX-License-Identifier: MIT

package partition

import "slices"

// sampleSize is the number of indices kept per populated cell.
const sampleSize = 3

// RepresentativeSample reduces a cell's index list to (first, middle, last),
// where middle is indices[len/2]. Lists shorter than three yield an empty,
// non-nil slice. The input is not modified.
func RepresentativeSample(indices []int) []int {
	n := len(indices)
	if n < sampleSize {
		return []int{}
	}
	return []int{indices[0], indices[n/2], indices[n-1]}
}

// SamplePerCell applies RepresentativeSample to every group of p. Shape and
// cell boxes are preserved; the result shares no slices with p.
func SamplePerCell(p Partitions) Partitions {
	grouped := make([][]int, len(p.Grouped))
	for k, g := range p.Grouped {
		grouped[k] = RepresentativeSample(g)
	}
	return Partitions{
		Shape:   p.Shape,
		BBoxes:  slices.Clone(p.BBoxes),
		Grouped: grouped,
	}
}
