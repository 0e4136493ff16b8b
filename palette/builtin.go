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

// Builtin contains the standard colour schemes.
var Builtin = newBuiltin()

// DefaultScheme is the name of the scheme used when none is given.
const DefaultScheme = "classic"

// builtinGradients lists the keypoints of the standard schemes.
// Position 0 is the highest density.
var builtinGradients = map[string]Gradient{
	"classic": {
		{MustParseHex("#ffffff"), 0.00},
		{MustParseHex("#ff2000"), 0.20},
		{MustParseHex("#ffd700"), 0.40},
		{MustParseHex("#32cd32"), 0.60},
		{MustParseHex("#1e90ff"), 0.80},
		{MustParseHex("#000080"), 1.00},
	},
	"fire": {
		{MustParseHex("#ffffe0"), 0.00},
		{MustParseHex("#ffd000"), 0.30},
		{MustParseHex("#ff4000"), 0.60},
		{MustParseHex("#400000"), 1.00},
	},
	"omg": {
		{MustParseHex("#ffffff"), 0.00},
		{MustParseHex("#ff00ff"), 0.25},
		{MustParseHex("#8000ff"), 0.50},
		{MustParseHex("#0040ff"), 0.75},
		{MustParseHex("#002040"), 1.00},
	},
	"pbj": {
		{MustParseHex("#f4d79a"), 0.00},
		{MustParseHex("#d9a441"), 0.30},
		{MustParseHex("#a02050"), 0.65},
		{MustParseHex("#300030"), 1.00},
	},
	"pgaitch": {
		{MustParseHex("#ffffe0"), 0.00},
		{MustParseHex("#ff8c00"), 0.35},
		{MustParseHex("#b22222"), 0.70},
		{MustParseHex("#1a0000"), 1.00},
	},

	// ColorBrewer schemes
	"BuGn": {
		{MustParseHex("#00441B"), 0.000},
		{MustParseHex("#006D2C"), 0.125},
		{MustParseHex("#238B45"), 0.250},
		{MustParseHex("#41AE76"), 0.375},
		{MustParseHex("#66C2A4"), 0.500},
		{MustParseHex("#99D8C9"), 0.625},
		{MustParseHex("#CCECE6"), 0.750},
		{MustParseHex("#E5F5F9"), 0.875},
		{MustParseHex("#F7FCFD"), 1.000},
	},
	"BuPu": {
		{MustParseHex("#4D004B"), 0.000},
		{MustParseHex("#810F7C"), 0.125},
		{MustParseHex("#88419D"), 0.250},
		{MustParseHex("#8C6BB1"), 0.375},
		{MustParseHex("#8C96C6"), 0.500},
		{MustParseHex("#9EBCDA"), 0.625},
		{MustParseHex("#BFD3E6"), 0.750},
		{MustParseHex("#E0ECF4"), 0.875},
		{MustParseHex("#F7FCFD"), 1.000},
	},
	"RdYlBu": {
		{MustParseHex("#A50026"), 0.0},
		{MustParseHex("#D73027"), 0.1},
		{MustParseHex("#F46D43"), 0.2},
		{MustParseHex("#FDAE61"), 0.3},
		{MustParseHex("#FEE090"), 0.4},
		{MustParseHex("#FFFFBF"), 0.5},
		{MustParseHex("#E0F3F8"), 0.6},
		{MustParseHex("#ABD9E9"), 0.7},
		{MustParseHex("#74ADD1"), 0.8},
		{MustParseHex("#4575B4"), 0.9},
		{MustParseHex("#313695"), 1.0},
	},
	"Spectral": {
		{MustParseHex("#9e0142"), 0.0},
		{MustParseHex("#d53e4f"), 0.1},
		{MustParseHex("#f46d43"), 0.2},
		{MustParseHex("#fdae61"), 0.3},
		{MustParseHex("#fee090"), 0.4},
		{MustParseHex("#f1f3a7"), 0.5},
		{MustParseHex("#e6f598"), 0.6},
		{MustParseHex("#abdda4"), 0.7},
		{MustParseHex("#66c2a5"), 0.8},
		{MustParseHex("#3288bd"), 0.9},
		{MustParseHex("#5e4fa2"), 1.0},
	},
}

func newBuiltin() *Registry {
	r := NewRegistry()
	for name, g := range builtinGradients {
		r.Register(name, g.Palette())
	}
	return r
}
