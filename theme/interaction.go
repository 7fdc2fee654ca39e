package theme

import "image/color"

// Interaction is the set of colors a widget uses per pointer state.
type Interaction struct {
	Idle     color.RGBA
	Hover    color.RGBA
	Pressed  color.RGBA
	Disabled color.RGBA
}

// Button returns the palette's button colors.
func (p *Palette) Button() Interaction {
	return Interaction{
		Idle:     p.MustColor(ButtonIdle),
		Hover:    p.MustColor(ButtonHover),
		Pressed:  p.MustColor(ButtonPressed),
		Disabled: p.MustColor(ButtonDisabled),
	}
}
