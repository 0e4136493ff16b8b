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
	"image"

	"seehuhn.de/go/geom/vec"
)

// Background is the density value of pixels not touched by any dot.
const Background = 255

// Accumulator collects the dots of all points in a grayscale density
// buffer. Pixel values start at [Background] and only ever decrease:
// overlapping dots combine by taking the minimum, so that darker values
// indicate higher density.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	Density *image.Gray
}

// NewAccumulator allocates a density buffer of the given size, filled with
// the background value.
func NewAccumulator(width, height int) *Accumulator {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = Background
	}
	return &Accumulator{Density: img}
}

// Stamp paints the stencil with its top-left corner at the given pixel.
// Parts of the stencil outside the buffer are clipped.
func (a *Accumulator) Stamp(s *Stencil, at image.Point) {
	dst := a.Density
	r := image.Rect(at.X, at.Y, at.X+s.Size, at.Y+s.Size).Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	n := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := dst.PixOffset(r.Min.X, y)
		row := dst.Pix[off : off+n]
		sOff := (y-at.Y)*s.Size + (r.Min.X - at.X)
		sRow := s.Alpha[sOff : sOff+n]
		for i, alpha := range sRow {
			row[i] = min(row[i], 255-alpha)
		}
	}
}

// StampAll stamps the stencil once for every point, using m to find the
// pixel positions.
func (a *Accumulator) StampAll(s *Stencil, m *Mapper, points []vec.Vec2) {
	for _, p := range points {
		a.Stamp(s, m.ToPixel(p))
	}
}
