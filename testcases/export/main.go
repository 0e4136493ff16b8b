// Command export writes the reference density images and test case
// definitions used by the regression tests.
// Run from the heatmap module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/encode"
	"seehuhn.de/go/heatmap/testcases"
)

const refDir = "testdata/reference"

func main() {
	verbose := flag.Bool("v", false, "log every render")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		heatmap.SetLogger(slog.New(h))
	}

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writeReference(tc, filepath.Join(refDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writeReference(tc testcases.TestCase, fileName string) error {
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
	return encode.WriteFile(fileName, res.Density)
}

type jsonTestCase struct {
	Name    string       `json:"name"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	DotSize int          `json:"dot_size"`
	Opacity uint8        `json:"opacity"`
	Scheme  string       `json:"scheme,omitempty"`
	Points  [][2]float64 `json:"points"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:    name,
		Width:   tc.Width,
		Height:  tc.Height,
		DotSize: tc.DotSize,
		Opacity: tc.Opacity,
		Scheme:  tc.Scheme,
		Points:  make([][2]float64, len(tc.Points)),
	}
	for i, p := range tc.Points {
		jtc.Points[i] = [2]float64{p.X, p.Y}
	}
	return jtc
}
