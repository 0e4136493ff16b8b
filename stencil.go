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

import "math"

// Stencil is the square dot stamped for every data point.
//
// Each cell holds an alpha value which falls off linearly with the distance
// from the centre of the square: cells near the centre have alpha 205,
// the corners approach alpha 5. A Stencil must not be modified after
// creation.
type Stencil struct {
	Size  int
	Alpha []uint8 // row-major, Size*Size entries
}

// NewStencil computes the stencil for dots of the given size.
// The size must be at least 1.
func NewStencil(size int) *Stencil {
	s := &Stencil{
		Size:  size,
		Alpha: make([]uint8, size*size),
	}

	c := float64(size) / 2
	maxDist := float64(size) / math.Sqrt2
	for y := range size {
		// distances are taken from the cell centres
		dy := float64(y) + 0.5 - c
		for x := range size {
			dx := float64(x) + 0.5 - c
			d := math.Hypot(dx, dy)
			value := math.Round(200*d/maxDist + 50)
			s.Alpha[y*size+x] = uint8(255 - value)
		}
	}
	return s
}

// AlphaAt returns the alpha value of cell (x, y).
func (s *Stencil) AlphaAt(x, y int) uint8 {
	return s.Alpha[y*s.Size+x]
}

// ValueAt returns the density value painted by cell (x, y), i.e. the result
// of stamping the cell onto an empty background.
func (s *Stencil) ValueAt(x, y int) uint8 {
	return 255 - s.Alpha[y*s.Size+x]
}
