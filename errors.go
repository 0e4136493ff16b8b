// seehuhn.de/go/heatmap - density heatmaps from point data
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package heatmap

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrEmptyInput is returned when a render is attempted without points.
	ErrEmptyInput = errors.New("heatmap: no input points")

	// ErrDegenerateExtent indicates that all points share the same
	// coordinate along one axis, so that the image has no scale in data
	// space along this axis.
	ErrDegenerateExtent = errors.New("heatmap: degenerate extent")
)

// InvalidConfigError is returned for rendering parameters which cannot
// produce an image.
type InvalidConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (err *InvalidConfigError) Error() string {
	return fmt.Sprintf("heatmap: invalid %s %d: %s", err.Field, err.Value, err.Reason)
}

// InvalidPointError is returned when an input point has a coordinate
// which is NaN or infinite.
type InvalidPointError struct {
	Index int // position in the input sequence
	Point vec.Vec2
}

func (err *InvalidPointError) Error() string {
	return fmt.Sprintf("heatmap: point %d (%g, %g) is not finite",
		err.Index, err.Point.X, err.Point.Y)
}
