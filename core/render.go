package core

import (
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	tempLabel  = "Temp: "
	tempSuffix = " C"

	// TempTextMax bounds the rendered temperature string. The widest value a
	// 12-bit code can produce is ToCelsius(ADCMax) = -1479.80: sign, four
	// integer digits, point, two decimals.
	TempTextMax = len(tempLabel) + len("-1479.80") + len(tempSuffix)
)

// fontAscent is the distance from the top of a text line to the baseline
// of the proggy TinySZ 8pt face.
const fontAscent = 10

var ink = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Composer draws text into the framebuffer it owns.
type Composer struct {
	fb   *Framebuffer
	font tinyfont.Fonter
}

// NewComposer returns a composer drawing into fb.
func NewComposer(fb *Framebuffer) *Composer {
	return &Composer{fb: fb, font: &proggy.TinySZ8pt7b}
}

// Framebuffer returns the composer's buffer.
func (c *Composer) Framebuffer() *Framebuffer { return c.fb }

// Clear blanks the whole framebuffer.
func (c *Composer) Clear() { c.fb.Clear() }

// DrawText rasterizes text with its line box anchored at the top-left pixel
// x, y. Glyph pixels falling outside the panel are dropped.
func (c *Composer) DrawText(x, y int16, text string) {
	tinyfont.WriteLine(c.fb, c.font, x, y+fontAscent, text, ink)
}

// Bytes returns the composed framebuffer contents.
func (c *Composer) Bytes() []byte { return c.fb.Bytes() }

// AppendTemperature appends the display text for celsius, e.g.
// "Temp: 23.45 C", rounded to two decimals.
func AppendTemperature(dst []byte, celsius float32) []byte {
	dst = append(dst, tempLabel...)
	dst = strconv.AppendFloat(dst, float64(celsius), 'f', 2, 64)
	return append(dst, tempSuffix...)
}
