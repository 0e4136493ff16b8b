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

// Command heatmap renders a density heatmap from a list of points.
//
// Points are read from a file, or from standard input, as comma-separated
// "x,y" records, one per line. With -animate, records have the form
// "begin,end,x,y" and one image is written for every time span.
//
// Usage:
//
//	heatmap [options] [input.csv]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/encode"
	"seehuhn.de/go/heatmap/kml"
	"seehuhn.de/go/heatmap/palette"
)

// options holds the command line settings.
type options struct {
	input   string
	output  string
	format  string
	kml     string
	density string
	palette string
	animate bool

	cfg heatmap.Config
}

func main() {
	opt := &options{}
	var opacity int
	var size string
	flag.IntVar(&opt.cfg.DotSize, "dotsize", heatmap.DefaultDotSize, "side length of the dot drawn for each point, in pixels")
	flag.IntVar(&opacity, "opacity", heatmap.DefaultOpacity, "opacity of painted pixels, 0-255")
	flag.StringVar(&size, "size", fmt.Sprintf("%dx%d", heatmap.DefaultWidth, heatmap.DefaultHeight), "image size `WxH`")
	flag.StringVar(&opt.cfg.Scheme, "scheme", palette.DefaultScheme, "colour scheme")
	flag.StringVar(&opt.palette, "palette", "", "read the colour scheme from a gradient image `file`")
	flag.StringVar(&opt.output, "o", "heatmap.png", "output `file`, or \"-\" for standard output; with -animate, a number is inserted before the extension")
	flag.StringVar(&opt.format, "format", "", "output format: png, tiff, bmp or pdf (default from the output file name)")
	flag.StringVar(&opt.kml, "kml", "", "write a KML `file` placing the image(s) on a map")
	flag.StringVar(&opt.density, "density", "", "write the grayscale density buffer to `file`")
	flag.BoolVar(&opt.animate, "animate", false, "read begin,end,x,y records and render one image per time span")
	verbose := flag.Bool("v", false, "log details of every render")
	listSchemes := flag.Bool("list-schemes", false, "list the built-in colour schemes and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	heatmap.SetLogger(logger)

	if *listSchemes {
		for _, name := range palette.Names() {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	opt.input = flag.Arg(0)

	if opacity < 0 || opacity > 255 {
		fmt.Fprintf(os.Stderr, "heatmap: invalid opacity %d, must be in the range 0-255\n", opacity)
		os.Exit(2)
	}
	opt.cfg.Opacity = uint8(opacity)

	var err error
	opt.cfg.Width, opt.cfg.Height, err = parseSize(size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "heatmap: %v\n", err)
		os.Exit(2)
	}

	if err := run(opt, logger); err != nil {
		fmt.Fprintf(os.Stderr, "heatmap: %v\n", err)
		os.Exit(1)
	}
}

func run(opt *options, logger *slog.Logger) error {
	if err := opt.cfg.Validate(); err != nil {
		return err
	}

	f, err := opt.outputFormat()
	if err != nil {
		return err
	}
	if opt.output == "-" {
		switch {
		case opt.animate:
			return errors.New("-animate cannot write to standard output")
		case opt.kml != "":
			return errors.New("-kml needs a named output file")
		case term.IsTerminal(int(os.Stdout.Fd())):
			return errors.New("refusing to write image data to a terminal")
		}
	}

	if opt.palette != "" {
		pal, err := palette.LoadFile(opt.palette)
		if err != nil {
			return err
		}
		reg := palette.NewRegistry()
		reg.Register(opt.palette, pal)
		opt.cfg.Scheme = opt.palette
		opt.cfg.Palettes = reg
	}

	in := io.Reader(os.Stdin)
	if opt.input != "" && opt.input != "-" {
		fd, err := os.Open(opt.input)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	p := message.NewPrinter(language.English)
	if opt.animate {
		return runAnimated(opt, in, f, logger, p)
	}

	points, err := readPoints(in)
	if err != nil {
		return err
	}
	res, err := heatmap.Render(points, &opt.cfg)
	if err != nil {
		return err
	}

	// All checks come before the first file is written.
	var ov kml.Overlay
	if opt.kml != "" {
		b, err := res.GeoBounds()
		if err != nil {
			return err
		}
		ov = kml.Overlay{Href: href(opt.kml, opt.output), Bounds: b}
	}

	if err := writeImage(opt.output, res.Image, f); err != nil {
		return err
	}
	logger.Info(p.Sprintf("rendered %d points", len(points)),
		"output", opt.output,
		"size", fmt.Sprintf("%dx%d", opt.cfg.Width, opt.cfg.Height))

	if opt.density != "" {
		if err := encode.WriteFile(opt.density, res.Density); err != nil {
			return err
		}
	}

	if opt.kml != "" {
		return kml.WriteFile(opt.kml, ov)
	}
	return nil
}

func runAnimated(opt *options, in io.Reader, f encode.Format, logger *slog.Logger, p *message.Printer) error {
	frames, err := readFrames(in)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return heatmap.ErrEmptyInput
	}

	results, err := heatmap.RenderSequence(frames, &opt.cfg)
	if err != nil {
		return err
	}

	prefix := strings.TrimSuffix(opt.output, filepath.Ext(opt.output))
	names := make([]string, len(results))
	overlays := make([]kml.Overlay, len(results))
	for i, res := range results {
		names[i] = prefix + strconv.Itoa(i) + f.Extension()
		if opt.kml == "" {
			continue
		}
		b, err := res.GeoBounds()
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		overlays[i] = kml.Overlay{
			Href:   href(opt.kml, names[i]),
			Bounds: b,
			Begin:  frames[i].Begin,
			End:    frames[i].End,
		}
	}

	total := 0
	for i, res := range results {
		if err := writeImage(names[i], res.Image, f); err != nil {
			return err
		}
		total += len(frames[i].Points)
	}
	logger.Info(p.Sprintf("rendered %d points in %d frames", total, len(frames)),
		"prefix", prefix)

	if opt.kml != "" {
		return kml.WriteFile(opt.kml, overlays...)
	}
	return nil
}

// outputFormat determines the image format from the -format flag or the
// output file name.
func (opt *options) outputFormat() (encode.Format, error) {
	switch {
	case opt.format != "":
		return encode.ParseFormat(opt.format)
	case opt.output == "-":
		return encode.PNG, nil
	default:
		return encode.FormatFromName(opt.output)
	}
}

// writeImage writes img to the named file, or to standard output if the
// name is "-".
func writeImage(name string, img image.Image, f encode.Format) error {
	if name == "-" {
		return encode.Encode(os.Stdout, img, f)
	}

	out, err := os.Create(name)
	if err != nil {
		return err
	}
	err = encode.Encode(out, img, f)
	err2 := out.Close()
	if err == nil {
		err = err2
	}
	return err
}

// href returns the location of the image file relative to the KML file.
func href(kmlFile, imageFile string) string {
	rel, err := filepath.Rel(filepath.Dir(kmlFile), imageFile)
	if err != nil {
		rel = filepath.Base(imageFile)
	}
	return filepath.ToSlash(rel)
}
