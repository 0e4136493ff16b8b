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
	"runtime"
	"sync"

	"seehuhn.de/go/heatmap/palette"
)

// minRowsPerWorker limits the number of goroutines used for small images.
const minRowsPerWorker = 32

// Colorize converts a density buffer into a colour image.
//
// Pixels with the background value become fully transparent white. All
// other pixels take their colour from the palette entry for their density
// value, with the given opacity.
func Colorize(density *image.Gray, pal *palette.Palette, opacity uint8) *image.NRGBA {
	workers := min(runtime.GOMAXPROCS(0), density.Rect.Dy()/minRowsPerWorker)
	return colorize(density, pal, opacity, max(workers, 1))
}

// colorize splits the image into horizontal bands, one per worker.
func colorize(density *image.Gray, pal *palette.Palette, opacity uint8, workers int) *image.NRGBA {
	b := density.Rect
	out := image.NewNRGBA(b)

	rowsPerWorker := (b.Dy() + workers - 1) / workers
	var wg sync.WaitGroup
	for w := range workers {
		y0 := b.Min.Y + w*rowsPerWorker
		y1 := min(y0+rowsPerWorker, b.Max.Y)
		if y0 >= y1 {
			continue
		}

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			colorizeRows(out, density, pal, opacity, y0, y1)
		}(y0, y1)
	}
	wg.Wait()

	return out
}

// colorizeRows processes the rows y0 <= y < y1.
func colorizeRows(out *image.NRGBA, density *image.Gray, pal *palette.Palette, opacity uint8, y0, y1 int) {
	b := density.Rect
	w := b.Dx()
	for y := y0; y < y1; y++ {
		src := density.Pix[density.PixOffset(b.Min.X, y):]
		dst := out.Pix[out.PixOffset(b.Min.X, y):]
		for x := range w {
			v := src[x]
			px := dst[4*x : 4*x+4 : 4*x+4]
			if v == Background {
				px[0], px[1], px[2], px[3] = 255, 255, 255, 0
				continue
			}
			c := pal[v]
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, opacity
		}
	}
}
