package testcases

import "seehuhn.de/go/geom/vec"

var basicCases = []TestCase{
	// Two points in opposite corners end up in opposite corners of the
	// usable region.
	{
		Name:    "two_corners",
		Points:  []vec.Vec2{pt(0, 0), pt(10, 10)},
		Width:   100,
		Height:  100,
		DotSize: 10,
		Opacity: 128,
	},
	{
		Name:    "square_grid",
		Points:  grid(5, 5),
		Width:   128,
		Height:  128,
		DotSize: 24,
		Opacity: 200,
	},
	{
		Name:    "duplicates",
		Points:  append(repeat(pt(1, 1), 1000), pt(0, 0), pt(2, 2)),
		Width:   96,
		Height:  96,
		DotSize: 20,
		Opacity: 128,
	},
	{
		Name:    "cluster_fire",
		Points:  append(cluster(5, 200), pt(0, 0), pt(1, 1)),
		Width:   128,
		Height:  128,
		DotSize: 32,
		Opacity: 255,
		Scheme:  "fire",
	},
	{
		Name:    "lon_lat",
		Points:  []vec.Vec2{pt(-0.12, 51.5), pt(-0.1, 51.52), pt(-0.11, 51.51), pt(-0.09, 51.49)},
		Width:   160,
		Height:  120,
		DotSize: 30,
		Opacity: 160,
		Scheme:  "pbj",
	},
}

// grid returns nx*ny points on the integer grid.
func grid(nx, ny int) []vec.Vec2 {
	var res []vec.Vec2
	for y := range ny {
		for x := range nx {
			res = append(res, pt(float64(x), float64(y)))
		}
	}
	return res
}
