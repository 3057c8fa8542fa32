// SPDX-License-Identifier: MIT

package geom

import "math"

// BoundingBox computes the minimal axis-aligned box enclosing points.
//
// Behavior:
//  1. Reject an empty slice with ErrEmptyInput.
//  2. Seed min/max with the first point, then widen them in one pass.
//  3. Return (minX, minY, maxX-minX, maxY-minY), widening each extent by
//     ulps until X+Width ≥ maxX and Y+Height ≥ maxY.
//
// The returned box never has negative extent and contains every point
// under BBox.Contains.
//
// Time: O(n). Memory: O(1).
func BoundingBox(points []Point) (BBox, error) {
	if len(points) == 0 {
		return BBox{}, ErrEmptyInput
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return BBox{
		X:      minX,
		Y:      minY,
		Width:  reach(minX, maxX),
		Height: reach(minY, maxY),
	}, nil
}

// reach returns hi-lo, rounded up so that lo+extent is not below hi.
func reach(lo, hi float64) float64 {
	extent := hi - lo
	for lo+extent < hi {
		extent = math.Nextafter(extent, math.Inf(1))
	}
	return extent
}

// Pad grows box by paddingX horizontally and paddingY vertically, split
// evenly on both sides so the center does not move.
//
// For non-negative paddings the result contains box. Negative paddings
// shrink the box and are passed through unchecked.
func Pad(box BBox, paddingX, paddingY float64) BBox {
	return BBox{
		X:      box.X - paddingX*0.5,
		Y:      box.Y - paddingY*0.5,
		Width:  box.Width + paddingX,
		Height: box.Height + paddingY,
	}
}
