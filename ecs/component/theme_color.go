package component

// ThemeColor resolves a palette key into the entity's Tint. A zero Alpha is
// opaque. Revision is the palette revision last applied.
type ThemeColor struct {
	Key      string
	Alpha    float32
	Revision uint64
}

var ThemeColorComponent = NewComponent[ThemeColor]()
