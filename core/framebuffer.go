package core

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Framebuffer)(nil)

// Framebuffer is a monochrome pixel buffer in SSD1306 page layout: byte
// x + (y/8)*width holds rows y&^7 .. y|7 of column x, least significant bit
// on top.
type Framebuffer struct {
	width  int16
	height int16
	buf    []byte
}

// NewFramebuffer allocates a cleared buffer for a width x height panel.
// height is rounded down to a whole number of pages.
func NewFramebuffer(width, height int16) *Framebuffer {
	height -= height % PageHeight
	return &Framebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, int(width)*int(height)/PageHeight),
	}
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	return f.width, f.height
}

// SetPixel lights (any non-black colour) or clears one pixel. Coordinates
// outside the panel are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := int(x) + int(y/PageHeight)*int(f.width)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		f.buf[i] |= 1 << uint8(y%PageHeight)
	} else {
		f.buf[i] &^= 1 << uint8(y%PageHeight)
	}
}

// Pixel reports whether the pixel at x, y is lit.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	i := int(x) + int(y/PageHeight)*int(f.width)
	return f.buf[i]>>uint8(y%PageHeight)&1 == 1
}

// Display implements drivers.Displayer. Framebuffer only composes; pushing
// bytes to the panel is the acquisition loop's job.
func (f *Framebuffer) Display() error { return nil }

// Clear zeroes every byte.
func (f *Framebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// Bytes returns the backing buffer. Callers must treat it as read-only.
func (f *Framebuffer) Bytes() []byte {
	return f.buf
}

// Area returns the render area covering the whole buffer.
func (f *Framebuffer) Area() RenderArea {
	return FullArea(f.width, f.height)
}
