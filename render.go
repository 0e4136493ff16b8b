// Package heatmap renders density heatmaps from 2D point data.
//
// Points are scaled to fit the image, a soft square dot is stamped for every
// point into a grayscale density buffer, and the buffer is coloured using a
// 256-entry palette. The result is a translucent image which is transparent
// wherever no point contributed, suitable for overlaying onto a map or
// another image.
//
// Since coordinates are scaled to the extent of the data, outliers shrink
// the rest of the picture.
package heatmap

//go:generate go run ./testcases/export

import (
	"image"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/heatmap/palette"
)

// Result holds the output of a render.
type Result struct {
	// Image is the coloured heatmap.
	Image *image.NRGBA

	// Density is the grayscale density buffer the image was coloured from.
	// Lower values mean higher density, [Background] means no data.
	Density *image.Gray

	// Extent is the bounding box of the input points.
	Extent rect.Rect

	cfg Config
}

// GeoBounds returns the data-space area covered by the image.
// See [GeoBounds] for details.
func (r *Result) GeoBounds() (Bounds, error) {
	return GeoBounds(r.Extent, &r.cfg)
}

// Render draws a heatmap of the given points.
// If cfg is nil, [DefaultConfig] is used.
//
// The configuration and the colour scheme are checked before any image
// memory is allocated.
func Render(points []vec.Vec2, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.lookupPalette()
	if err != nil {
		return nil, err
	}
	return render(points, cfg, pal)
}

// render runs the pipeline for a validated configuration.
func render(points []vec.Vec2, cfg *Config, pal *palette.Palette) (*Result, error) {
	start := time.Now()

	ext, err := ComputeExtent(points)
	if err != nil {
		return nil, err
	}
	m := NewMapper(ext, cfg)
	if dx, dy := m.Degenerate(); dx || dy {
		Logger().Debug("degenerate extent, using centre line",
			"x", dx, "y", dy)
	}

	s := NewStencil(cfg.DotSize)
	acc := NewAccumulator(cfg.Width, cfg.Height)
	acc.StampAll(s, m, points)
	img := Colorize(acc.Density, pal, cfg.Opacity)

	Logger().Debug("heatmap rendered",
		"points", len(points),
		"extent", ext,
		"width", cfg.Width,
		"height", cfg.Height,
		"dot", cfg.DotSize,
		"elapsed", time.Since(start))

	return &Result{
		Image:   img,
		Density: acc.Density,
		Extent:  ext,
		cfg:     *cfg,
	}, nil
}
