package component

// ScreenSpace marks renderable entities drawn after the world layer, on top
// of gameplay sprites regardless of RenderLayer.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
