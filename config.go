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

import "seehuhn.de/go/heatmap/palette"

// Default values for rendering parameters.
const (
	DefaultDotSize = 150
	DefaultOpacity = 128
	DefaultWidth   = 1024
	DefaultHeight  = 1024
)

// Config holds the parameters for a single render.
// A Config is not modified by the rendering functions and can be shared
// between concurrent renders.
type Config struct {
	// DotSize is the side length, in pixels, of the square dot stamped
	// for every input point. Must be at least 1 and smaller than both
	// image dimensions.
	DotSize int

	// Opacity is the alpha value of every painted pixel in the output.
	// Density is shown by colour only.
	Opacity uint8

	// Width and Height give the output image size in pixels.
	Width, Height int

	// Scheme is the name of the colour scheme. The empty string selects
	// [palette.DefaultScheme].
	Scheme string

	// Palettes is used to look up Scheme.
	// If this is nil, the built-in schemes are used.
	Palettes palette.Provider
}

// DefaultConfig returns a new Config with the default parameters.
func DefaultConfig() *Config {
	return &Config{
		DotSize: DefaultDotSize,
		Opacity: DefaultOpacity,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Scheme:  palette.DefaultScheme,
	}
}

// Validate checks that the configuration describes a renderable image.
// The returned error, if any, is of type [*InvalidConfigError].
func (c *Config) Validate() error {
	switch {
	case c.DotSize < 1:
		return &InvalidConfigError{Field: "dot size", Value: c.DotSize, Reason: "must be positive"}
	case c.Width < 1:
		return &InvalidConfigError{Field: "width", Value: c.Width, Reason: "must be positive"}
	case c.Height < 1:
		return &InvalidConfigError{Field: "height", Value: c.Height, Reason: "must be positive"}
	case c.DotSize >= min(c.Width, c.Height):
		return &InvalidConfigError{
			Field:  "dot size",
			Value:  c.DotSize,
			Reason: "must be smaller than the image dimensions",
		}
	}
	return nil
}

// usable returns the size of the region available for dot positions.
// A margin of half a dot on every side keeps the dots inside the image.
func (c *Config) usable() (x, y int) {
	return c.Width - c.DotSize, c.Height - c.DotSize
}

// lookupPalette resolves the colour scheme.
func (c *Config) lookupPalette() (*palette.Palette, error) {
	name := c.Scheme
	if name == "" {
		name = palette.DefaultScheme
	}
	p := c.Palettes
	if p == nil {
		p = palette.Builtin
	}
	return p.Lookup(name)
}
