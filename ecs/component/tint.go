package component

// Tint is a linear RGBA color multiplier applied when drawing.
type Tint struct {
	R, G, B, A float32
}

// White leaves colors untouched.
var White = Tint{R: 1, G: 1, B: 1, A: 1}

func (c Tint) Clone() Tint { return c }

// Mul multiplies every channel by o's.
func (c *Tint) Mul(o Tint) {
	c.R *= o.R
	c.G *= o.G
	c.B *= o.B
	c.A *= o.A
}

// MulAlpha multiplies only the alpha channel.
func (c *Tint) MulAlpha(a float32) {
	c.A *= a
}

var TintComponent = NewComponent[Tint]()
