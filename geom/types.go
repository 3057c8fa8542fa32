// SPDX-License-Identifier: MIT

package geom

import "gonum.org/v1/gonum/spatial/r2"

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// R2 returns p as a gonum r2.Vec. Part of the public gonum interop API
// together with BBox.R2 and FromR2.
func (p Point) R2() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// BBox is an axis-aligned bounding box anchored at its minimum corner.
//
// A box produced by BoundingBox always has Width ≥ 0 and Height ≥ 0;
// a single point yields a zero-area box.
type BBox struct {
	X, Y          float64
	Width, Height float64
}

// MaxX returns the right edge, X+Width.
func (b BBox) MaxX() float64 { return b.X + b.Width }

// MaxY returns the top edge, Y+Height.
func (b BBox) MaxY() float64 { return b.Y + b.Height }

// R2 returns b as a gonum r2.Box with Min at (X, Y) and Max at (MaxX, MaxY).
func (b BBox) R2() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: b.X, Y: b.Y},
		Max: r2.Vec{X: b.MaxX(), Y: b.MaxY()},
	}
}

// Center returns the midpoint of b.
func (b BBox) Center() Point {
	c := b.R2().Center()
	return Point{X: c.X, Y: c.Y}
}

// Contains reports whether p lies inside b, edges included.
//
// Unlike r2.Box.Contains, a zero-width or zero-height box still contains
// every point on its segment.
func (b BBox) Contains(p Point) bool {
	return b.X <= p.X && p.X <= b.MaxX() &&
		b.Y <= p.Y && p.Y <= b.MaxY()
}

// ContainsAll reports whether every point lies inside b.
// An empty slice is trivially contained.
func (b BBox) ContainsAll(points []Point) bool {
	for _, p := range points {
		if !b.Contains(p) {
			return false
		}
	}
	return true
}

// FromR2 converts a gonum r2.Box to a BBox. The box is canonicalised first,
// so Min and Max may be given in either order.
func FromR2(box r2.Box) BBox {
	c := box.Canon()
	return BBox{
		X:      c.Min.X,
		Y:      c.Min.Y,
		Width:  c.Max.X - c.Min.X,
		Height: c.Max.Y - c.Min.Y,
	}
}
