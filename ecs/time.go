package ecs

// Time is the frame clock resource. Delta is scaled; RawDelta is not.
type Time struct {
	Delta    float64
	RawDelta float64
	Elapsed  float64
	Scale    float64
	Frame    uint64
}

// NewTime returns a clock running at normal speed.
func NewTime() *Time {
	return &Time{Scale: 1}
}

// Advance moves the clock forward by raw seconds.
func (t *Time) Advance(raw float64) {
	if t == nil {
		return
	}
	if raw < 0 {
		raw = 0
	}
	t.RawDelta = raw
	t.Delta = raw * t.Scale
	t.Elapsed += t.Delta
	t.Frame++
}

// Delta returns the world's scaled frame delta, or zero without a clock.
func Delta(w *World) float64 {
	t, ok := Resource[Time](w)
	if !ok {
		return 0
	}
	return t.Delta
}
