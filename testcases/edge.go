package testcases

import "seehuhn.de/go/geom/vec"

// edgeCases use extreme parameter values.
var edgeCases = []TestCase{
	{
		Name:    "dot_size_one",
		Points:  grid(4, 4),
		Width:   8,
		Height:  8,
		DotSize: 1,
		Opacity: 255,
	},
	{
		Name:    "odd_dot_size",
		Points:  []vec.Vec2{pt(0, 0), pt(1, 1), pt(0, 1)},
		Width:   50,
		Height:  50,
		DotSize: 15,
		Opacity: 100,
	},
	{
		Name:    "wide_image",
		Points:  outline(3),
		Width:   200,
		Height:  40,
		DotSize: 20,
		Opacity: 128,
		Scheme:  "omg",
	},
	{
		Name:    "max_dot_size",
		Points:  []vec.Vec2{pt(0, 0), pt(1, 1)},
		Width:   33,
		Height:  33,
		DotSize: 32,
		Opacity: 128,
	},
}
