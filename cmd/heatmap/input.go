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

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/heatmap"
)

// newReader returns a CSV reader for point data.
// Fields are separated by commas, lines starting with '#' are ignored.
func newReader(r io.Reader, fields int) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = fields
	cr.ReuseRecord = true
	return cr
}

// readPoints reads "x,y" records.
func readPoints(r io.Reader) ([]vec.Vec2, error) {
	cr := newReader(r, 2)
	var points []vec.Vec2
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		p, err := parsePoint(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// readFrames reads "begin,end,x,y" records. Consecutive records with the
// same begin and end form one frame.
func readFrames(r io.Reader) ([]heatmap.Frame, error) {
	cr := newReader(r, 4)
	var frames []heatmap.Frame
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		p, err := parsePoint(rec[2:])
		if err != nil {
			line, _ := cr.FieldPos(2)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		begin, end := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		n := len(frames)
		if n == 0 || frames[n-1].Begin != begin || frames[n-1].End != end {
			frames = append(frames, heatmap.Frame{Begin: begin, End: end})
			n++
		}
		frames[n-1].Points = append(frames[n-1].Points, p)
	}
	return frames, nil
}

func parsePoint(rec []string) (vec.Vec2, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return vec.Vec2{}, err
	}
	if math.IsInf(x, 0) || math.IsNaN(x) || math.IsInf(y, 0) || math.IsNaN(y) {
		return vec.Vec2{}, fmt.Errorf("non-finite point (%g, %g)", x, y)
	}
	return vec.Vec2{X: x, Y: y}, nil
}

// parseSize parses an image size of the form "WxH".
func parseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	width, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	height, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return width, height, nil
}
