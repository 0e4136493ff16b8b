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

// Package palette provides the colour tables which map density values to
// colours.
//
// A [Palette] has exactly 256 entries. Index 0 corresponds to the highest
// density, larger indices to lower densities. Palettes are looked up by name
// through a [Provider]; the package-level [Builtin] registry contains the
// standard schemes.
package palette

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Size is the number of entries in a palette.
const Size = 256

// RGB is an opaque colour with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Palette maps density values to colours.
//
// Palettes returned by a [Provider] are shared between all users and must
// not be modified.
type Palette [Size]RGB

// Provider looks up palettes by name.
// Implementations must be safe for concurrent use.
type Provider interface {
	Lookup(name string) (*Palette, error)
}

// UnknownPaletteError is returned by [Provider.Lookup] if no palette with
// the requested name exists.
type UnknownPaletteError struct {
	Name      string
	Available []string
}

func (err *UnknownPaletteError) Error() string {
	if len(err.Available) == 0 {
		return fmt.Sprintf("unknown color scheme %q", err.Name)
	}
	return fmt.Sprintf("unknown color scheme %q (available: %s)",
		err.Name, strings.Join(err.Available, ", "))
}

// Registry is a [Provider] backed by a map of named palettes.
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemes map[string]*Palette
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemes: make(map[string]*Palette)}
}

// Register adds a palette under the given name, replacing any previous
// palette of the same name. The registry takes ownership of p.
func (r *Registry) Register(name string, p *Palette) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemes[name] = p
}

// Lookup returns the palette with the given name.
// This implements the [Provider] interface.
func (r *Registry) Lookup(name string) (*Palette, error) {
	r.mu.RLock()
	p, ok := r.schemes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownPaletteError{Name: name, Available: r.Names()}
	}
	return p, nil
}

// Names returns the names of all registered palettes in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the built-in palette with the given name.
func Lookup(name string) (*Palette, error) {
	return Builtin.Lookup(name)
}

// Names returns the names of the built-in palettes in sorted order.
func Names() []string {
	return Builtin.Names()
}
