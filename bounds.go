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

	"seehuhn.de/go/geom/rect"
)

// Bounds is the area in data space covered by a rendered image.
// When the data are longitude/latitude pairs, these are the edges of a
// map overlay.
type Bounds struct {
	North, South, East, West float64
}

// Rect returns the bounds as a rectangle.
func (b Bounds) Rect() rect.Rect {
	return rect.Rect{LLx: b.West, LLy: b.South, URx: b.East, URy: b.North}
}

// GeoBounds computes the data-space area covered by the full image canvas.
//
// The point extent is widened on each side by the data-space equivalent of
// half a dot, which is the margin reserved around the usable region.
// For an extent with zero width or height the result would be empty, and
// an error wrapping [ErrDegenerateExtent] is returned instead.
func GeoBounds(ext rect.Rect, cfg *Config) (Bounds, error) {
	if err := cfg.Validate(); err != nil {
		return Bounds{}, err
	}
	switch {
	case ext.URx == ext.LLx:
		return Bounds{}, fmt.Errorf("%w: all points have x = %g", ErrDegenerateExtent, ext.LLx)
	case ext.URy == ext.LLy:
		return Bounds{}, fmt.Errorf("%w: all points have y = %g", ErrDegenerateExtent, ext.LLy)
	}

	ux, uy := cfg.usable()
	half := float64(cfg.DotSize) / 2
	offsetX := half / float64(ux) * (ext.URx - ext.LLx)
	offsetY := half / float64(uy) * (ext.URy - ext.LLy)

	return Bounds{
		North: ext.URy + offsetY,
		South: ext.LLy - offsetY,
		East:  ext.URx + offsetX,
		West:  ext.LLx - offsetX,
	}, nil
}
