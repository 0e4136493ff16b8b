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

package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is a colour at a position along a gradient.
type Stop struct {
	Color colorful.Color
	Pos   float64 // in [0, 1]
}

// Gradient is a piecewise colour ramp.
// Stops must be sorted by position and there must be at least one stop.
type Gradient []Stop

// MustParseHex parses a colour in "#rrggbb" notation.
// It panics if s is malformed.
func MustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("palette: invalid colour %q: %v", s, err))
	}
	return c
}

// At returns the colour at position t. Between stops, colours are
// interpolated in CIE L*a*b* space. Positions outside the range of the
// stops are clamped.
func (g Gradient) At(t float64) colorful.Color {
	if t <= g[0].Pos {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		hi := g[i]
		if t == hi.Pos {
			return hi.Color
		}
		if t < hi.Pos {
			lo := g[i-1]
			s := (t - lo.Pos) / (hi.Pos - lo.Pos)
			return lo.Color.BlendLab(hi.Color, s).Clamped()
		}
	}
	return g[len(g)-1].Color
}

// Palette samples the gradient at 256 equally spaced positions.
// Entry i is taken from position i/255.
func (g Gradient) Palette() *Palette {
	p := &Palette{}
	for i := range Size {
		r, gg, b := g.At(float64(i) / (Size - 1)).RGB255()
		p[i] = RGB{R: r, G: gg, B: b}
	}
	return p
}
