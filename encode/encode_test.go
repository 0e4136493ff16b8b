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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// testImage returns a small image with transparent and translucent pixels,
// like the output of a heatmap render.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	for y := range 5 {
		for x := range 7 {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
			if (x+y)%3 == 0 {
				c = color.NRGBA{R: uint8(30 * x), G: uint8(50 * y), B: 200, A: 128}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"tif", TIFF},
		{"tiff", TIFF},
		{"bmp", BMP},
		{"pdf", PDF},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if got != c.want {
			t.Errorf("%q: got %s, want %s", c.in, got, c.want)
		}
	}

	if _, err := ParseFormat("gif"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestFormatFromName(t *testing.T) {
	f, err := FormatFromName("dir.v2/heat.tiff")
	if err != nil || f != TIFF {
		t.Errorf("got %s, %v", f, err)
	}
	if _, err := FormatFromName("heat"); err == nil {
		t.Error("name without extension accepted")
	}
}

func TestLossless(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(buf *bytes.Buffer) (image.Image, error) { return png.Decode(buf) },
		TIFF: func(buf *bytes.Buffer) (image.Image, error) { return tiff.Decode(buf) },
	}
	src := testImage()
	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(buf, src, f); err != nil {
				t.Fatal(err)
			}
			got, err := decode(buf)
			if err != nil {
				t.Fatal(err)
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("bounds %v, want %v", got.Bounds(), src.Bounds())
			}
			for y := range 5 {
				for x := range 7 {
					want := src.NRGBAAt(x, y)
					c := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
					if want.A == 0 {
						if c.A != 0 {
							t.Errorf("(%d,%d): alpha %d, want 0", x, y, c.A)
						}
						continue
					}
					if c != want {
						t.Errorf("(%d,%d): got %v, want %v", x, y, c, want)
					}
				}
			}
		})
	}
}

func TestBMP(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, testImage(), BMP); err != nil {
		t.Fatal(err)
	}
	cfg, err := bmp.DecodeConfig(buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 7 || cfg.Height != 5 {
		t.Errorf("size %dx%d, want 7x5", cfg.Width, cfg.Height)
	}
}

func TestPDF(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, testImage(), PDF); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 16)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}
}

func TestPDFEmpty(t *testing.T) {
	err := Encode(&bytes.Buffer{}, image.NewNRGBA(image.Rectangle{}), PDF)
	if err == nil {
		t.Error("empty image accepted")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{PNG, TIFF, BMP, PDF} {
		name := filepath.Join(dir, "heat"+f.Extension())
		if err := WriteFile(name, testImage()); err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		info, err := os.Stat(name)
		if err != nil {
			t.Errorf("%s: %v", f, err)
		} else if info.Size() == 0 {
			t.Errorf("%s: empty file", f)
		}
	}

	if err := WriteFile(filepath.Join(dir, "heat.gif"), testImage()); err == nil {
		t.Error("unsupported extension accepted")
	}
}
