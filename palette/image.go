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
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

var errEmptyImage = errors.New("palette: empty gradient image")

// FromImage builds a palette from a gradient strip.
//
// For images which are at least as tall as they are wide, the top row
// becomes index 0 and the bottom row index 255. Wider images are read from
// left to right. The strip is resampled to 256 entries using bilinear
// interpolation; the alpha channel is ignored.
func FromImage(src image.Image) (*Palette, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, errEmptyImage
	}

	vertical := b.Dy() >= b.Dx()
	var dst *image.NRGBA
	if vertical {
		dst = image.NewNRGBA(image.Rect(0, 0, 1, Size))
	} else {
		dst = image.NewNRGBA(image.Rect(0, 0, Size, 1))
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	p := &Palette{}
	for i := range Size {
		x, y := 0, i
		if !vertical {
			x, y = i, 0
		}
		c := dst.NRGBAAt(x, y)
		p[i] = RGB{R: c.R, G: c.G, B: c.B}
	}
	return p, nil
}

// Load decodes a gradient image in PNG, BMP or TIFF format and converts it
// using [FromImage].
func Load(r io.Reader) (*Palette, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return FromImage(img)
}

// LoadFile reads a gradient image from the named file.
func LoadFile(name string) (*Palette, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
