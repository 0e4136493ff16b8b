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
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
)

func TestBuiltinNames(t *testing.T) {
	names := Names()
	for _, want := range []string{"classic", "fire", "omg", "pbj", "pgaitch"} {
		if !slices.Contains(names, want) {
			t.Errorf("built-in scheme %q missing from %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if _, err := Lookup(DefaultScheme); err != nil {
		t.Errorf("default scheme: %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-scheme")
	var unknown *UnknownPaletteError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPaletteError, got %v", err)
	}
	if unknown.Name != "no-such-scheme" {
		t.Errorf("wrong name %q", unknown.Name)
	}
	if d := cmp.Diff(Names(), unknown.Available); d != "" {
		t.Errorf("available schemes (-want +got):\n%s", d)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("red"); err == nil {
		t.Fatal("lookup in empty registry succeeded")
	}

	p := &Palette{}
	p[0] = RGB{R: 255}
	r.Register("red", p)

	got, err := r.Lookup("red")
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Error("Lookup returned a different palette")
	}
	if d := cmp.Diff([]string{"red"}, r.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
}

func TestGradientEndpoints(t *testing.T) {
	g := Gradient{
		{MustParseHex("#ff0000"), 0},
		{MustParseHex("#0000ff"), 1},
	}
	p := g.Palette()
	if p[0] != (RGB{R: 255}) {
		t.Errorf("p[0] = %v, want red", p[0])
	}
	if p[255] != (RGB{B: 255}) {
		t.Errorf("p[255] = %v, want blue", p[255])
	}
}

func TestGradientClamp(t *testing.T) {
	g := Gradient{
		{MustParseHex("#102030"), 0.25},
		{MustParseHex("#405060"), 0.75},
	}
	p := g.Palette()
	want0 := RGB{R: 0x10, G: 0x20, B: 0x30}
	want1 := RGB{R: 0x40, G: 0x50, B: 0x60}
	for i := range 64 {
		if p[i] != want0 {
			t.Fatalf("p[%d] = %v, want %v", i, p[i], want0)
		}
	}
	for i := 192; i < Size; i++ {
		if p[i] != want1 {
			t.Fatalf("p[%d] = %v, want %v", i, p[i], want1)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for malformed colour")
		}
	}()
	MustParseHex("not a colour")
}

func grayStrip(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y
			if w > h {
				i = x
			}
			v := uint8(i * 255 / (max(w, h) - 1))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: 255 - v, A: 255})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
	}{
		{"vertical", grayStrip(4, Size)},
		{"horizontal", grayStrip(Size, 3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := FromImage(c.img)
			if err != nil {
				t.Fatal(err)
			}
			for i, col := range p {
				if absDiff(col.R, uint8(i)) > 1 || absDiff(col.B, uint8(255-i)) > 1 {
					t.Fatalf("p[%d] = %v", i, col)
				}
			}
		})
	}
}

func TestFromImageUpscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 2))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(0, 1, color.Gray{Y: 255})

	p, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if p[0].R > 10 || p[255].R < 245 {
		t.Errorf("endpoints %v, %v", p[0], p[255])
	}
	for i := 1; i < Size; i++ {
		if p[i].R < p[i-1].R {
			t.Fatalf("not monotone at %d: %d < %d", i, p[i].R, p[i-1].R)
		}
	}
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewGray(image.Rectangle{}))
	if err == nil {
		t.Error("empty image accepted")
	}
}

func TestLoad(t *testing.T) {
	src := grayStrip(2, Size)
	want, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}

	encoders := map[string]func(*bytes.Buffer) error{
		"png": func(buf *bytes.Buffer) error { return png.Encode(buf, src) },
		"bmp": func(buf *bytes.Buffer) error { return bmp.Encode(buf, src) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := enc(buf); err != nil {
				t.Fatal(err)
			}
			got, err := Load(buf)
			if err != nil {
				t.Fatal(err)
			}
			for i := range want {
				w, g := want[i], got[i]
				if absDiff(w.R, g.R) > 1 || absDiff(w.G, g.G) > 1 || absDiff(w.B, g.B) > 1 {
					t.Fatalf("entry %d: got %v, want %v", i, g, w)
				}
			}
		})
	}
}

func TestLoadGarbage(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("this is not an image")))
	if err == nil {
		t.Error("garbage input accepted")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
