// Package palette hands out stable row colours for goals and runs.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/runlog/pkg/entry"
)

// Default is the row palette, in assignment order.
var Default = []string{
	"#006d77",
	"#83c5be",
	"#edf6f9",
	"#ffddd2",
	"#e29578",
	"#f0cf65",
}

// Color is a palette entry.
type Color struct {
	colorful.Color
}

// Foreground returns black or white, whichever reads better on c.
func (c Color) Foreground() Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return Color{colorful.Color{R: 0, G: 0, B: 0}}
	}
	return Color{colorful.Color{R: 1, G: 1, B: 1}}
}

// Assigner memoizes a colour per id. Unknown ids take the next palette entry
// in global call order, wrapping around. Assignments are never evicted and
// the counter is never reset.
type Assigner struct {
	colors   []Color
	assigned map[entry.ID]Color
	counter  int
}

// New builds an Assigner from hex colours. An empty list uses Default.
func New(hexes ...string) (*Assigner, error) {
	if len(hexes) == 0 {
		hexes = Default
	}
	colors := make([]Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: parse %q: %w", h, err)
		}
		colors = append(colors, Color{c})
	}
	return &Assigner{
		colors:   colors,
		assigned: make(map[entry.ID]Color),
	}, nil
}

// MustNew is New for static palettes. It panics on a bad hex value.
func MustNew(hexes ...string) *Assigner {
	a, err := New(hexes...)
	if err != nil {
		panic(err)
	}
	return a
}

// ColorFor returns the colour for id, assigning one on first use.
func (a *Assigner) ColorFor(id entry.ID) Color {
	if c, ok := a.assigned[id]; ok {
		return c
	}
	c := a.colors[a.counter%len(a.colors)]
	a.counter++
	a.assigned[id] = c
	return c
}

// Size is the number of colours in the palette.
func (a *Assigner) Size() int {
	return len(a.colors)
}
