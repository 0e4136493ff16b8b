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

package testcases

import "seehuhn.de/go/geom/vec"

// randomCases use pseudo-random points with fixed seeds, so that the
// reference images are reproducible.
var randomCases = []TestCase{
	{
		Name:    "uniform",
		Points:  uniform(1, 400),
		Width:   256,
		Height:  256,
		DotSize: 32,
		Opacity: 128,
	},
	{
		Name:    "clustered",
		Points:  cluster(2, 2000),
		Width:   256,
		Height:  192,
		DotSize: 40,
		Opacity: 180,
		Scheme:  "pgaitch",
	},
	{
		Name:    "two_clusters",
		Points:  append(cluster(3, 500), shift(cluster(4, 500), 5, 2)...),
		Width:   300,
		Height:  200,
		DotSize: 36,
		Opacity: 128,
		Scheme:  "Spectral",
	},
}

// unit returns a number in [0, 1) derived from a hash of seed and i.
// Only integer operations and exact conversions are used, so that the
// values do not depend on the platform or the Go version.
func unit(seed, i uint32) float64 {
	h := (i+1)*0x9e3779b1 ^ seed*0x85ebca77
	h ^= h >> 15
	h *= 0xc2b2ae3d
	h ^= h >> 13
	return float64(h>>8) / (1 << 24)
}

// uniform returns n points uniformly distributed in the unit square.
func uniform(seed uint32, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		k := uint32(2 * i)
		res[i] = pt(unit(seed, k), unit(seed, k+1))
	}
	return res
}

// cluster returns n points concentrated around (0.5, 0.5). Each coordinate
// is the mean of four uniform values.
func cluster(seed uint32, n int) []vec.Vec2 {
	mean := func(k uint32) float64 {
		return (unit(seed, k) + unit(seed, k+1) + unit(seed, k+2) + unit(seed, k+3)) / 4
	}
	res := make([]vec.Vec2, n)
	for i := range res {
		k := uint32(8 * i)
		res[i] = pt(mean(k), mean(k+4))
	}
	return res
}

// shift translates all points by (dx, dy), in place.
func shift(points []vec.Vec2, dx, dy float64) []vec.Vec2 {
	for i := range points {
		points[i].X += dx
		points[i].Y += dy
	}
	return points
}

// outline returns 4n points evenly spaced on the boundary of the unit
// square.
func outline(n int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, 4*n)
	for k := range n {
		t := float64(k) / float64(n)
		res = append(res, pt(t, 0), pt(1, t), pt(1-t, 1), pt(0, 1-t))
	}
	return res
}
