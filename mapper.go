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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ComputeExtent returns the axis-aligned bounding box of the points.
// LLx/LLy hold the minimum and URx/URy the maximum coordinates.
//
// Points with a NaN or infinite coordinate are rejected with an
// [*InvalidPointError].
func ComputeExtent(points []vec.Vec2) (rect.Rect, error) {
	if len(points) == 0 {
		return rect.Rect{}, ErrEmptyInput
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return rect.Rect{}, &InvalidPointError{Index: i, Point: p}
		}
	}

	ext := rect.Rect{
		LLx: points[0].X, LLy: points[0].Y,
		URx: points[0].X, URy: points[0].Y,
	}
	for _, p := range points[1:] {
		ext.LLx = min(ext.LLx, p.X)
		ext.LLy = min(ext.LLy, p.Y)
		ext.URx = max(ext.URx, p.X)
		ext.URy = max(ext.URy, p.Y)
	}
	return ext, nil
}

// Mapper converts between data coordinates and pixel coordinates.
//
// Data points inside the extent are mapped into the usable region
// [0, Width-DotSize] x [0, Height-DotSize], with the y axis flipped so that
// larger data y values appear nearer the top of the image.
//
// If the extent has zero width (or height), all points are placed on the
// vertical (or horizontal) centre line of the usable region.
type Mapper struct {
	Extent rect.Rect

	usableX, usableY float64

	// toData maps pixel coordinates back to data space.
	toData matrix.Matrix
}

// NewMapper returns a Mapper for the given extent and image configuration.
// The configuration must be valid.
func NewMapper(ext rect.Rect, cfg *Config) *Mapper {
	ux, uy := cfg.usable()
	m := &Mapper{
		Extent:  ext,
		usableX: float64(ux),
		usableY: float64(uy),
	}

	sx := (ext.URx - ext.LLx) / m.usableX
	sy := (ext.URy - ext.LLy) / m.usableY
	m.toData = matrix.Scale(sx, -sy).Mul(matrix.Translate(ext.LLx, ext.URy))
	return m
}

// Degenerate reports which axes of the extent have zero length.
func (m *Mapper) Degenerate() (x, y bool) {
	return m.Extent.URx == m.Extent.LLx, m.Extent.URy == m.Extent.LLy
}

// ToPixel maps a data point to the pixel where the top-left corner of its
// dot is placed.
func (m *Mapper) ToPixel(p vec.Vec2) image.Point {
	nx := normalize(p.X, m.Extent.LLx, m.Extent.URx)
	ny := normalize(p.Y, m.Extent.LLy, m.Extent.URy)
	return image.Point{
		X: int(math.Floor(nx * m.usableX)),
		Y: int(math.Floor((1 - ny) * m.usableY)),
	}
}

// ToPoint maps a pixel position back to data coordinates.
// This is the inverse of the continuous part of [Mapper.ToPixel]; on a
// degenerate axis the constant coordinate of the extent is returned.
func (m *Mapper) ToPoint(q image.Point) vec.Vec2 {
	M := m.toData
	x, y := float64(q.X), float64(q.Y)
	return vec.Vec2{
		X: M[0]*x + M[2]*y + M[4],
		Y: M[1]*x + M[3]*y + M[5],
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// normalize maps v from [lo, hi] to [0, 1].
// For an empty interval the midpoint 0.5 is returned.
func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}
