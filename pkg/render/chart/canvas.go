package chart

import (
	"image"
	"image/png"
	"io"
	"sync"
)

// Canvas is a drawable surface that holds the last rendered chart.
// A new Canvas is blank; [Renderer.Draw] sizes and fills it.
type Canvas struct {
	mu  sync.RWMutex
	img image.Image
}

// NewCanvas returns a blank canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Blank reports whether nothing has been drawn yet. A nil canvas is blank.
func (c *Canvas) Blank() bool {
	if c == nil {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.img == nil
}

// Image returns the current image, or nil while blank.
func (c *Canvas) Image() image.Image {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.img
}

// Size returns the pixel dimensions of the current image.
func (c *Canvas) Size() (width, height int) {
	img := c.Image()
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// EncodePNG writes the current image as PNG. A blank canvas writes nothing.
func (c *Canvas) EncodePNG(w io.Writer) error {
	img := c.Image()
	if img == nil {
		return nil
	}
	return png.Encode(w, img)
}

func (c *Canvas) set(img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.img = img
}
