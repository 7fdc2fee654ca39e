package component

import "github.com/tanema/gween/ease"

// FadeIn fades an overlay from opaque to clear, then despawns it.
type FadeIn struct {
	Duration  float64
	Remaining float64
	Ease      ease.TweenFunc
}

// NewFadeIn returns a fade lasting d seconds.
func NewFadeIn(d float64) FadeIn {
	return FadeIn{Duration: d, Remaining: d}
}

var FadeInComponent = NewComponent[FadeIn]()

// FadeOut fades an overlay from clear to opaque. Then runs once when the
// fade completes, before the overlay is despawned. A held fade stays opaque
// instead and is left for its owner to despawn.
type FadeOut struct {
	Duration  float64
	Remaining float64
	Ease      ease.TweenFunc
	Then      func()
	Fired     bool
	Hold      bool
}

// NewFadeOut returns a fade lasting d seconds that calls then on completion.
func NewFadeOut(d float64, then func()) FadeOut {
	return FadeOut{Duration: d, Remaining: d, Then: then}
}

var FadeOutComponent = NewComponent[FadeOut]()
