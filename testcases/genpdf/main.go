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

// Command genpdf writes one PDF file per test case for visual review.
// Each page shows the rendered heatmap on a grey background, with the
// input points marked by small black squares. With -png, the PDF files are
// also converted to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/testcases"
)

const outDir = "testdata/pdf"

// markerSize is the side length of the point markers, in PDF units.
const markerSize = 2

func main() {
	toPNG := flag.Bool("png", false, "convert the PDF files to PNG using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *toPNG {
				pngPath := filepath.Join(outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	cfg := &heatmap.Config{
		DotSize: tc.DotSize,
		Opacity: tc.Opacity,
		Width:   tc.Width,
		Height:  tc.Height,
		Scheme:  tc.Scheme,
	}
	res, err := heatmap.Render(tc.Points, cfg)
	if err != nil {
		return err
	}

	xObj, err := pdfimage.PNG(res.Image, nil)
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	w, h := float64(tc.Width), float64(tc.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Grey background, so that the transparent parts of the image show.
	page.SetFillColor(color.DeviceGray(0.8))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	page.PushGraphicsState()
	page.Transform(matrix.Scale(w, h))
	page.DrawXObject(xObj)
	page.PopGraphicsState()

	// PDF origin is bottom-left; pixel coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	// Mark the dot centres.
	m := heatmap.NewMapper(res.Extent, cfg)
	half := float64(tc.DotSize) / 2
	page.SetFillColor(color.DeviceGray(0))
	for _, p := range tc.Points {
		q := m.ToPixel(p)
		x := float64(q.X) + half - markerSize/2
		y := float64(q.Y) + half - markerSize/2
		page.Rectangle(x, y, markerSize, markerSize)
	}
	page.Fill()

	// Frame the usable region.
	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetLineWidth(0.5)
	page.Rectangle(half, half, w-float64(tc.DotSize), h-float64(tc.DotSize))
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pngalpha: RGBA output, so the transparency survives
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pngalpha",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
