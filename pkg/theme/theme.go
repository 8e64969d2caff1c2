// Package theme holds the fixed set of chart colour themes.
//
// The registry is defined at startup and never changes. Order matters: it is
// the order the themes are offered in the page and the terminal UI.
package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/contribchart/pkg/errors"
)

// Default is the theme selected when a session starts.
const Default = "standard"

// Theme is a named palette.
type Theme struct {
	ID      string
	Label   string
	Palette Palette
}

// Palette lists the hex colours a chart is drawn with. Grades are indexed by
// contribution intensity, 0 for days without activity.
type Palette struct {
	Background string
	Text       string
	Meta       string
	Grades     [5]string
}

// Color parses a palette entry. Invalid entries come back as black; every
// built-in palette is checked by the package tests.
func Color(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}

// Grade returns the colour for intensity i, clamped to the palette.
func (p Palette) Grade(i int) color.Color {
	return Color(p.Grades[min(max(i, 0), len(p.Grades)-1)])
}

// Registry is an ordered, read-only set of themes.
type Registry struct {
	themes []Theme
	byID   map[string]int
}

// NewRegistry builds a registry from themes in display order.
func NewRegistry(themes ...Theme) *Registry {
	r := &Registry{themes: themes, byID: make(map[string]int, len(themes))}
	for i, t := range themes {
		r.byID[t.ID] = i
	}
	return r
}

// Lookup returns the theme with the given id.
func (r *Registry) Lookup(id string) (Theme, error) {
	i, ok := r.byID[id]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", id)
	}
	return r.themes[i], nil
}

// Has reports whether id names a theme.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns the themes in display order. The slice is a copy.
func (r *Registry) All() []Theme {
	return append([]Theme(nil), r.themes...)
}

// IDs returns the theme ids in display order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.themes))
	for i, t := range r.themes {
		ids[i] = t.ID
	}
	return ids
}

// Next returns the id offset by step positions from id, wrapping around.
// An unknown id starts from the first theme.
func (r *Registry) Next(id string, step int) string {
	n := len(r.themes)
	if n == 0 {
		return id
	}
	i := r.byID[id]
	return r.themes[((i+step)%n+n)%n].ID
}
