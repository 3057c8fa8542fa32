// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpart/geom"
)

var (
	// ErrInvalidPartitions indicates partitionsPerAxis < 1 or a grid whose
	// cell count overflows int.
	ErrInvalidPartitions = errors.New("partition: partitionsPerAxis must be at least 1 and its square must fit in int")

	// ErrOutOfBounds indicates a point mapped to a cell outside the grid.
	ErrOutOfBounds = errors.New("partition: point outside bounding box")
)

// OutOfBoundsError reports the first point whose cell falls outside the
// P×P grid. CellX and CellY are the raw, unclamped cell coordinates; a NaN
// coordinate is reported as -1.
//
// errors.Is(err, ErrOutOfBounds) holds for every OutOfBoundsError.
type OutOfBoundsError struct {
	Index        int
	Point        geom.Point
	CellX, CellY int
	PerAxis      int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("partition: point %d at (%g, %g) maps to cell (%d, %d) outside %dx%d grid",
		e.Index, e.Point.X, e.Point.Y, e.CellX, e.CellY, e.PerAxis, e.PerAxis)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
