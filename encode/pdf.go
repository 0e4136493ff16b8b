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

package encode

import (
	"errors"
	"image"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// writePDF writes a single-page PDF file showing img at 72 dpi, so that
// one pixel corresponds to one PDF unit. Transparency is kept as a soft
// mask.
func writePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return errors.New("cannot write empty image to PDF")
	}
	width, height := float64(b.Dx()), float64(b.Dy())

	xObj, err := pdfimage.PNG(img, nil)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// images occupy the unit square
	page.PushGraphicsState()
	page.Transform(matrix.Scale(width, height))
	page.DrawXObject(xObj)
	page.PopGraphicsState()

	return page.Close()
}
