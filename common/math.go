package common

import "cmp"

// Base render resolution. The window is scaled to fit it.
const (
	BaseWidth  = 640
	BaseHeight = 360
)

func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
