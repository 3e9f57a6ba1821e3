// Package image16bit provides a 16-bit RGB565 image format optimized for the GC9A01A display.
//
// Pixels are stored two bytes each with the high byte first, which is the
// exact order the controller expects on the wire.
// This package provides the RGB565 color type and BigEndian image implementation.
package image16bit

import (
	"image"
	"image/color"
)

// RGB565 represents a packed 16-bit color: 5 bits red (bits 15-11),
// 6 bits green (bits 10-5) and 5 bits blue (bits 4-0).
type RGB565 uint16

// Encode packs three 8-bit channels into an RGB565 value.
// Each channel is scaled by truncating integer multiplication-division,
// so 0x80 maps to 15/31 red, not 15.56 rounded up.
func Encode(r, g, b uint8) RGB565 {
	rr := uint16(r) * 31 / 255
	gg := uint16(g) * 63 / 255
	bb := uint16(b) * 31 / 255
	return RGB565(rr<<11 | gg<<5 | bb)
}

// RGBA converts the RGB565 color to standard RGBA.
// The 5 and 6-bit channels are expanded by replicating their high bits,
// then scaled to 16-bit.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if p, ok := c.(RGB565); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit values; Encode takes the top 8 bits of each.
	return Encode(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// BigEndian is an RGB565 image where each pixel occupies two consecutive
// bytes, high byte first. The Pix slice can be streamed to the display
// verbatim.
type BigEndian struct {
	Pix    []byte          // Pixel data (2 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewBigEndian creates a new BigEndian image with the specified bounds.
func NewBigEndian(r image.Rectangle) *BigEndian {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &BigEndian{Rect: r}
	}

	stride := w * 2
	return &BigEndian{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *BigEndian) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *BigEndian) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *BigEndian) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *BigEndian) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	return RGB565(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *BigEndian) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	v := RGB565Model.Convert(c).(RGB565)
	p.Pix[i] = byte(v >> 8)
	p.Pix[i+1] = byte(v)
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *BigEndian) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = byte(c >> 8)
	p.Pix[i+1] = byte(c)
}

// PixOffset returns the index in Pix of the first byte of the pixel at (x, y).
func (p *BigEndian) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
