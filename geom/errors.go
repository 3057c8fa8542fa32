// SPDX-License-Identifier: MIT

package geom

import "errors"

var (
	// ErrEmptyInput indicates a bounding box was requested for zero points.
	ErrEmptyInput = errors.New("geom: point set must contain at least one point")
)
