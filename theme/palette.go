// Package theme resolves named UI and sprite colors from a palette that can
// be swapped at runtime.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/mazznoer/csscolorparser"
	"github.com/milk9111/jamstarter/ecs/component"
)

// Palette keys used by the screens and menus.
const (
	Background     = "background"
	Surface        = "surface"
	Text           = "text"
	Primary        = "primary"
	Accent         = "accent"
	Overlay        = "overlay"
	ButtonIdle     = "button.idle"
	ButtonHover    = "button.hover"
	ButtonPressed  = "button.pressed"
	ButtonDisabled = "button.disabled"
)

var ErrInvalidColor = errors.New("theme: invalid color")

var defaults = map[string]color.RGBA{
	Background:     {R: 0x1b, G: 0x1b, B: 0x2f, A: 0xff},
	Surface:        {R: 0x2e, G: 0x2c, B: 0x4a, A: 0xff},
	Text:           {R: 0xf2, G: 0xf0, B: 0xe6, A: 0xff},
	Primary:        {R: 0x5b, G: 0xa8, B: 0xa0, A: 0xff},
	Accent:         {R: 0xe8, G: 0x8a, B: 0x5a, A: 0xff},
	Overlay:        {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	ButtonIdle:     {R: 0x3f, G: 0x3c, B: 0x66, A: 0xff},
	ButtonHover:    {R: 0x55, G: 0x51, B: 0x88, A: 0xff},
	ButtonPressed:  {R: 0x2a, G: 0x28, B: 0x45, A: 0xff},
	ButtonDisabled: {R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff},
}

// Palette maps keys to colors. Revision changes whenever a color does, so
// consumers can cache resolved values.
type Palette struct {
	colors   map[string]color.RGBA
	revision uint64
}

// NewPalette returns the built-in palette.
func NewPalette() *Palette {
	p := &Palette{colors: make(map[string]color.RGBA, len(defaults)), revision: 1}
	for k, c := range defaults {
		p.colors[k] = c
	}
	return p
}

func (p *Palette) Revision() uint64 {
	if p == nil {
		return 0
	}
	return p.revision
}

// Set overrides one color.
func (p *Palette) Set(key string, c color.RGBA) {
	if old, ok := p.colors[key]; ok && old == c {
		return
	}
	p.colors[key] = c
	p.revision++
}

// Load applies color overrides on top of the built-in palette. Nothing is
// applied if any value fails to parse.
func (p *Palette) Load(values map[string]string) error {
	next := make(map[string]color.RGBA, len(defaults)+len(values))
	for k, c := range defaults {
		next[k] = c
	}
	for k, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return fmt.Errorf("theme: key %q: %w", k, err)
		}
		next[k] = c
	}
	p.colors = next
	p.revision++
	return nil
}

// Color returns the color for key.
func (p *Palette) Color(key string) (color.RGBA, bool) {
	if p == nil {
		return color.RGBA{}, false
	}
	c, ok := p.colors[key]
	return c, ok
}

// MustColor returns the color for key, or opaque magenta when missing.
func (p *Palette) MustColor(key string) color.RGBA {
	if c, ok := p.Color(key); ok {
		return c
	}
	return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
}

// Tint converts the color for key into a draw multiplier with its alpha
// multiplied by alpha.
func (p *Palette) Tint(key string, alpha float32) (component.Tint, bool) {
	c, ok := p.Color(key)
	if !ok {
		return component.Tint{}, false
	}
	return component.Tint{
		R: float32(c.R) / 0xff,
		G: float32(c.G) / 0xff,
		B: float32(c.B) / 0xff,
		A: float32(c.A) / 0xff * alpha,
	}, true
}

// ParseColor parses a CSS color: hex ("#rgb", "#rrggbb", "#rrggbbaa"),
// rgb()/hsl() functions or a color name.
func ParseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 0xff))
}
