// SPDX-License-Identifier: MIT

// Package geom provides the planar primitives shared by gridpart: points,
// axis-aligned bounding boxes, and the two operations that produce boxes
// from data.
//
// What:
//
//   - Point is an immutable (X, Y) pair.
//   - BBox is an axis-aligned rectangle anchored at its minimum corner.
//   - BoundingBox computes the minimal box enclosing a point set.
//   - Pad grows a box symmetrically about its center.
//
// Containment:
//
//	BBox.Contains uses closed intervals on both axes:
//	  X ≤ p.X ≤ X+Width  and  Y ≤ p.Y ≤ Y+Height
//	so points on any edge are inside.
//
// gonum interop:
//
//	Point.R2, BBox.R2 and FromR2 convert to and from gonum/spatial/r2 for
//	callers that already hold gonum geometry; BBox.Center is computed
//	through r2.Box.
//
// Complexity:
//
//   - BoundingBox: O(n) time, O(1) memory.
//   - Pad, Contains, Center: O(1).
//
// Errors:
//
//   - ErrEmptyInput: BoundingBox was given no points.
package geom
