package component

// CrateTag marks the physics crates spawned on the gameplay screen.
type CrateTag struct{}

var CrateTagComponent = NewComponent[CrateTag]()

// OverlayTag marks full-screen transition overlays.
type OverlayTag struct{}

var OverlayTagComponent = NewComponent[OverlayTag]()
