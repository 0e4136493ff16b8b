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
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestAccumulatorBackground(t *testing.T) {
	a := NewAccumulator(7, 3)
	if a.Density.Rect != image.Rect(0, 0, 7, 3) {
		t.Fatalf("bounds %v", a.Density.Rect)
	}
	for i, v := range a.Density.Pix {
		if v != Background {
			t.Fatalf("pixel %d: %d", i, v)
		}
	}
}

func TestStamp(t *testing.T) {
	s := NewStencil(5)
	a := NewAccumulator(20, 20)
	at := image.Pt(3, 7)
	a.Stamp(s, at)

	for y := range 20 {
		for x := range 20 {
			got := a.Density.GrayAt(x, y).Y
			want := uint8(Background)
			if p := image.Pt(x, y).Sub(at); p.In(image.Rect(0, 0, 5, 5)) {
				want = s.ValueAt(p.X, p.Y)
			}
			if got != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestStampIdempotent(t *testing.T) {
	s := NewStencil(9)
	a := NewAccumulator(30, 30)
	a.Stamp(s, image.Pt(4, 4))
	a.Stamp(s, image.Pt(10, 8))
	once := slices.Clone(a.Density.Pix)

	a.Stamp(s, image.Pt(4, 4))
	a.Stamp(s, image.Pt(10, 8))
	a.Stamp(s, image.Pt(4, 4))
	if !slices.Equal(once, a.Density.Pix) {
		t.Error("stamping twice changes the buffer")
	}
}

func TestStampMinimum(t *testing.T) {
	s := NewStencil(6)
	a := NewAccumulator(12, 6)
	a.Stamp(s, image.Pt(0, 0))
	a.Stamp(s, image.Pt(3, 0))

	for y := range 6 {
		for x := range 12 {
			want := uint8(Background)
			if x < 6 {
				want = s.ValueAt(x, y)
			}
			if x >= 3 && x < 9 {
				want = min(want, s.ValueAt(x-3, y))
			}
			if got := a.Density.GrayAt(x, y).Y; got != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestStampClipping(t *testing.T) {
	s := NewStencil(8)
	for _, at := range []image.Point{
		{-4, -4}, {6, -3}, {-5, 7}, {6, 6}, {-100, 0}, {0, 100}, {-8, -8}, {10, 10},
	} {
		a := NewAccumulator(10, 10)
		a.Stamp(s, at)
		for y := range 10 {
			for x := range 10 {
				want := uint8(Background)
				if p := image.Pt(x, y).Sub(at); p.In(image.Rect(0, 0, 8, 8)) {
					want = s.ValueAt(p.X, p.Y)
				}
				if got := a.Density.GrayAt(x, y).Y; got != want {
					t.Fatalf("stamp at %v, pixel (%d,%d): got %d, want %d", at, x, y, got, want)
				}
			}
		}
	}
}

func TestStampAll(t *testing.T) {
	cfg := &Config{DotSize: 4, Width: 24, Height: 24}
	points := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.25}}
	m := NewMapper(rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}, cfg)
	s := NewStencil(cfg.DotSize)

	all := NewAccumulator(cfg.Width, cfg.Height)
	all.StampAll(s, m, points)

	single := NewAccumulator(cfg.Width, cfg.Height)
	for _, p := range points {
		single.Stamp(s, m.ToPixel(p))
	}
	if !slices.Equal(all.Density.Pix, single.Density.Pix) {
		t.Error("StampAll differs from individual stamps")
	}
}
