// Package assets builds the game's textures. Everything is generated at
// runtime, a few textures per frame, so the loading screen has real work
// to report progress on.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const CrateSize = 32

var ErrBuilt = errors.New("assets: library already built")

// Library holds the generated textures. Crates is filled one variant per
// Step until Done reports true.
type Library struct {
	Pixel  *ebiten.Image
	Crates []*ebiten.Image

	// Convert turns a generated image into a texture.
	Convert func(image.Image) *ebiten.Image

	total int
}

// NewLibrary prepares a library of n crate variants.
func NewLibrary(n int) *Library {
	if n < 1 {
		n = 1
	}
	return &Library{Convert: ebiten.NewImageFromImage, total: n}
}

// NewPixel returns the opaque white 1x1 image every box sprite stretches.
func NewPixel() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

func (l *Library) Total() int { return l.total }

func (l *Library) Built() int { return len(l.Crates) }

func (l *Library) Done() bool { return len(l.Crates) >= l.total }

// Progress is the built fraction in [0, 1].
func (l *Library) Progress() float64 {
	return float64(l.Built()) / float64(l.total)
}

// Step builds the next crate variant.
func (l *Library) Step() error {
	if l.Done() {
		return ErrBuilt
	}
	i := len(l.Crates)
	img := CratePattern(CrateSize, i, l.total)
	if img == nil {
		return fmt.Errorf("assets: crate %d: empty pattern", i)
	}
	var tex *ebiten.Image
	if l.Convert != nil {
		tex = l.Convert(img)
	}
	l.Crates = append(l.Crates, tex)
	return nil
}

// Crate picks a variant for index i, falling back to the pixel while
// nothing is built.
func (l *Library) Crate(i int) *ebiten.Image {
	if len(l.Crates) == 0 {
		return l.Pixel
	}
	if i < 0 {
		i = -i
	}
	return l.Crates[i%len(l.Crates)]
}

// CratePattern draws a grayscale crate: a border, a diagonal brace, and a
// shade that varies with variant. The result is multiplied by the entity
// tint when drawn.
func CratePattern(size, variant, variants int) *image.RGBA {
	if size <= 0 {
		return nil
	}
	if variants < 1 {
		variants = 1
	}
	base := uint8(0xb0 + (0x40*variant)/variants)
	board := color.RGBA{R: base, G: base, B: base, A: 0xff}
	edge := color.RGBA{R: base / 2, G: base / 2, B: base / 2, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	border := size / 8
	if border < 1 {
		border = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := board
			onBorder := x < border || y < border || x >= size-border || y >= size-border
			onBrace := x-y <= border/2 && y-x <= border/2
			if onBorder || onBrace {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
