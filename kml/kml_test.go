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

package kml

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/heatmap"
)

func TestSingleOverlay(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf, Overlay{
		Href:   "classic.png",
		Bounds: heatmap.Bounds{North: 1.5, South: -1.5, East: 2.25, West: -2.25},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		xml.Header,
		`<kml xmlns="http://www.opengis.net/kml/2.2">`,
		"<Folder>",
		"<href>classic.png</href>",
		"<north>1.5000000000000000</north>",
		"<south>-1.5000000000000000</south>",
		"<east>2.2500000000000000</east>",
		"<west>-2.2500000000000000</west>",
		"<rotation>0</rotation>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"<TimeSpan>", "<name>"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("unexpected %q in output:\n%s", unwanted, out)
		}
	}
}

func TestTimeSpanOverlays(t *testing.T) {
	in := []Overlay{
		{
			Href:   "out0.png",
			Bounds: heatmap.Bounds{North: 52.1, South: 51.9, East: 0.2, West: -0.1},
			Begin:  "2011-04-02T00:00:00Z",
			End:    "2011-04-02T01:00:00Z",
		},
		{
			Href:   "out1.png",
			Bounds: heatmap.Bounds{North: 52.2, South: 51.8, East: 0.3, West: -0.2},
			Begin:  "2011-04-02T01:00:00Z",
			End:    "2011-04-02T02:00:00Z",
			Name:   "second hour",
		},
	}

	buf := &bytes.Buffer{}
	if err := Write(buf, in...); err != nil {
		t.Fatal(err)
	}

	var doc document
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	want := []groundOverlay{
		{
			Name:     "2011-04-02T00:00:00Z - 2011-04-02T01:00:00Z",
			TimeSpan: &timeSpan{Begin: "2011-04-02T00:00:00Z", End: "2011-04-02T01:00:00Z"},
			Href:     "out0.png",
			Box:      latLonBox{North: 52.1, South: 51.9, East: 0.2, West: -0.1},
		},
		{
			Name:     "second hour",
			TimeSpan: &timeSpan{Begin: "2011-04-02T01:00:00Z", End: "2011-04-02T02:00:00Z"},
			Href:     "out1.png",
			Box:      latLonBox{North: 52.2, South: 51.8, East: 0.3, West: -0.2},
		},
	}
	if d := cmp.Diff(want, doc.Overlays); d != "" {
		t.Errorf("overlays (-want +got):\n%s", d)
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.kml")
	err := WriteFile(name, Overlay{Href: "a.png", Bounds: heatmap.Bounds{North: 1, East: 1}})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<href>a.png</href>")) {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}
