package renderer

import (
	"image"

	"github.com/df07/go-sphere-caster/pkg/core"
)

// PixelBuffer is a row-major frame of width*height colors
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []core.Color
}

// NewPixelBuffer allocates a buffer for the given frame size. Non-positive
// dimensions produce an empty buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		return &PixelBuffer{Width: max(width, 0), Height: max(height, 0)}
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]core.Color, width*height),
	}
}

// Bounds returns the frame rectangle
func (b *PixelBuffer) Bounds() image.Rectangle {
	if len(b.Pix) == 0 {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, b.Width, b.Height)
}

// At returns the color at pixel (x, y)
func (b *PixelBuffer) At(x, y int) core.Color {
	return b.Pix[y*b.Width+x]
}

// Set writes the color at pixel (x, y)
func (b *PixelBuffer) Set(x, y int, c core.Color) {
	b.Pix[y*b.Width+x] = c
}

// Bytes returns the frame as packed RGBA bytes, 4 per pixel, row-major
func (b *PixelBuffer) Bytes() []byte {
	out := make([]byte, 4*len(b.Pix))
	for i, c := range b.Pix {
		out[4*i+0] = c.R
		out[4*i+1] = c.G
		out[4*i+2] = c.B
		out[4*i+3] = c.A
	}
	return out
}

// Image returns a copy of the frame as an RGBA image
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	copy(img.Pix, b.Bytes())
	return img
}
