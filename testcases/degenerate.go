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

package testcases

import "seehuhn.de/go/geom/vec"

// degenerateCases have an extent with zero width or height.
var degenerateCases = []TestCase{
	{
		Name:    "single_point",
		Points:  []vec.Vec2{pt(3, 4)},
		Width:   64,
		Height:  64,
		DotSize: 16,
		Opacity: 128,
	},
	{
		Name:    "vertical_line",
		Points:  []vec.Vec2{pt(1, 0), pt(1, 1), pt(1, 2), pt(1, 3)},
		Width:   64,
		Height:  64,
		DotSize: 16,
		Opacity: 128,
	},
	{
		Name:    "horizontal_line",
		Points:  []vec.Vec2{pt(0, -1), pt(1, -1), pt(2, -1), pt(3, -1)},
		Width:   64,
		Height:  64,
		DotSize: 16,
		Opacity: 128,
	},
}
