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

// Package encode writes heatmap images to files.
//
// Supported formats are PNG, TIFF, BMP and PDF. All formats except BMP
// preserve the alpha channel.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an output file format.
type Format int

// These are the supported output formats.
const (
	PNG Format = iota
	TIFF
	BMP
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the usual file name extension for the format,
// including the leading dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat converts a format name like "png" or "tif" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("unknown image format %q", s)
}

// FormatFromName determines the format from a file name extension.
func FormatFromName(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return 0, fmt.Errorf("%s: missing file name extension", name)
	}
	return ParseFormat(ext[1:])
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		enc := &png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case BMP:
		return bmp.Encode(w, img)
	case PDF:
		return writePDF(w, img)
	default:
		return fmt.Errorf("unsupported format %s", f)
	}
}

// WriteFile writes img to the named file, choosing the format from the
// file name extension.
func WriteFile(name string, img image.Image) error {
	f, err := FormatFromName(name)
	if err != nil {
		return err
	}

	out, err := os.Create(name)
	if err != nil {
		return err
	}
	err = Encode(out, img, f)
	err2 := out.Close()
	if err == nil {
		err = err2
	}
	return err
}
