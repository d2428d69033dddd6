/*
Package bitmap implements the packed asset format burned into the screen
firmware.

An asset is a two byte header holding the pixel grid's height and width (one
unsigned byte each, so either side is at most 255), followed by height*width
16-bit RGB565 values in row-major order, each stored big-endian. There is no
padding, compression or checksum; a valid asset is always exactly
2+2*height*width bytes long.
*/
package bitmap

import (
	"image"
	"image/color"
)

// MaxSide is the largest width or height the single-byte header fields can
// describe.
const MaxSide = 255

// Pack quantizes an 8-bit RGB triple into a packed RGB565 value. Each channel
// is normalized to [0,1] and rescaled to 5, 6 or 5 bits with truncation, not
// rounding: 128 becomes 15 of 31, not 16. The firmware expects exactly this
// mapping, so it must not be replaced with the usual mask-and-shift form.
func Pack(r, g, b uint8) Color {
	return Color(uint16(float64(r)/255*31)<<11 |
		uint16(float64(g)/255*63)<<5 |
		uint16(float64(b)/255*31))
}

// Model converts colors to the packed representation. Conversion goes through
// the non-premultiplied color path and then drops alpha entirely; transparent
// pixels keep their stored channel values instead of being composited.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B)
})

// Color is a single packed pixel with bit layout RRRRRGGGGGGBBBBB.
type Color uint16

// RGBA implements the color.Color interface. The short channel patterns are
// replicated to fill 16 bits, which maps the minimum and maximum 5 and 6 bit
// values onto the minimum and maximum 16-bit channel values. Alpha is always
// opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xf800) // RRRRR00000000000
	gBits := uint32(c & 0x07e0) // 00000GGGGGG00000
	bBits := uint32(c & 0x001f) // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xffff
	return
}

// NewRGB565 returns an empty image with the given bounds.
func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		Pix:    make([]uint8, 2*r.Dx()*r.Dy()),
		Stride: 2 * r.Dx(),
		Rect:   r,
	}
}

// RGB565 is an in-memory image whose Pix buffer holds big-endian packed
// pixels, the same layout the asset payload uses on disk and on the wire.
type RGB565 struct {
	// Pix holds the pixels as big-endian RGB565 values. The pixel at (x, y)
	// starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*2].
	Pix []uint8
	// Stride is the Pix stride in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// ColorModel implements the image.Image interface.
func (p *RGB565) ColorModel() color.Model { return Model }

// Bounds implements the image.Image interface.
func (p *RGB565) Bounds() image.Rectangle { return p.Rect }

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB565) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

// At implements the image.Image interface.
func (p *RGB565) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the packed pixel at (x, y).
func (p *RGB565) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Color(0)
	}
	i := p.PixOffset(x, y)
	return Color(p.Pix[i])<<8 | Color(p.Pix[i+1])
}

// Set implements the draw.Image interface.
func (p *RGB565) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 stores a packed pixel at (x, y).
func (p *RGB565) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = uint8(c >> 8)
	p.Pix[i+1] = uint8(c)
}

// SubImage returns an image representing the portion of p visible through r.
// The returned value shares pixels with the original image.
func (p *RGB565) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &RGB565{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGB565{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}
