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

// Package kml writes KML documents which place heatmap images on a map.
//
// Every image becomes a GroundOverlay inside a single Folder. Overlays with
// a time span can be animated by viewers such as Google Earth.
package kml

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"seehuhn.de/go/heatmap"
)

// Namespace is the XML namespace of KML 2.2 documents.
const Namespace = "http://www.opengis.net/kml/2.2"

// Overlay describes one image on the map.
type Overlay struct {
	// Href is the location of the image, usually a path relative to the
	// KML file.
	Href string

	// Bounds gives the longitude/latitude box covered by the image.
	Bounds heatmap.Bounds

	// Begin and End, if set, restrict the overlay to a time span.
	Begin, End string

	// Name is shown by map viewers. If Name is empty and a time span is set,
	// the name "Begin - End" is used.
	Name string
}

type document struct {
	XMLName  xml.Name        `xml:"kml"`
	Xmlns    string          `xml:"xmlns,attr"`
	Overlays []groundOverlay `xml:"Folder>GroundOverlay"`
}

type groundOverlay struct {
	Name     string    `xml:"name,omitempty"`
	TimeSpan *timeSpan `xml:"TimeSpan,omitempty"`
	Href     string    `xml:"Icon>href"`
	Box      latLonBox `xml:"LatLonBox"`
}

type timeSpan struct {
	Begin string `xml:"begin,omitempty"`
	End   string `xml:"end,omitempty"`
}

type latLonBox struct {
	North    coord `xml:"north"`
	South    coord `xml:"south"`
	East     coord `xml:"east"`
	West     coord `xml:"west"`
	Rotation int   `xml:"rotation"`
}

// coord is a coordinate written with 16 decimal places.
type coord float64

func (c coord) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(c), 'f', 16, 64), nil
}

func (c *coord) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return err
	}
	*c = coord(v)
	return nil
}

func newGroundOverlay(o *Overlay) groundOverlay {
	g := groundOverlay{
		Name: o.Name,
		Href: o.Href,
		Box: latLonBox{
			North: coord(o.Bounds.North),
			South: coord(o.Bounds.South),
			East:  coord(o.Bounds.East),
			West:  coord(o.Bounds.West),
		},
	}
	if o.Begin != "" || o.End != "" {
		g.TimeSpan = &timeSpan{Begin: o.Begin, End: o.End}
		if g.Name == "" {
			g.Name = o.Begin + " - " + o.End
		}
	}
	return g
}

// Write writes a KML document containing the given overlays.
func Write(w io.Writer, overlays ...Overlay) error {
	doc := &document{
		Xmlns:    Namespace,
		Overlays: make([]groundOverlay, len(overlays)),
	}
	for i := range overlays {
		doc.Overlays[i] = newGroundOverlay(&overlays[i])
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes a KML document to the named file.
func WriteFile(name string, overlays ...Overlay) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = Write(f, overlays...)
	err2 := f.Close()
	if err == nil {
		err = err2
	}
	return err
}
