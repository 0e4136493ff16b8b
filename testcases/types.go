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

// Package testcases defines the heatmap scenarios used by the tests,
// the benchmarks and the reference image generator.
package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single heatmap render.
type TestCase struct {
	Name    string     // lowercase a-z, 0-9 and _ only
	Points  []vec.Vec2 // the input data
	Width   int        // image width in pixels
	Height  int        // image height in pixels
	DotSize int        // side length of the dot stencil
	Opacity uint8      // alpha of painted pixels
	Scheme  string     // colour scheme, empty for the default
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// repeat returns n copies of p.
func repeat(p vec.Vec2, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		res[i] = p
	}
	return res
}
