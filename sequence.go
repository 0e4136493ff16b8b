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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Frame is one step of an animated heatmap.
type Frame struct {
	// Begin and End label the time span covered by the frame,
	// for example as RFC 3339 timestamps.
	Begin, End string

	Points []vec.Vec2
}

// RenderSequence renders every frame as an independent heatmap.
// Each frame is scaled to the extent of its own points.
//
// If any frame fails, the error identifies the frame and no results
// are returned.
func RenderSequence(frames []Frame, cfg *Config) ([]*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.lookupPalette()
	if err != nil {
		return nil, err
	}

	res := make([]*Result, len(frames))
	for i := range frames {
		r, err := render(frames[i].Points, cfg, pal)
		if err != nil {
			return nil, fmt.Errorf("frame %d (%s - %s): %w",
				i, frames[i].Begin, frames[i].End, err)
		}
		res[i] = r
	}
	return res, nil
}
