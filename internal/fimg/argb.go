// Package fimg provides image types for the pixel formats that
// decoration buffers are handed off in.
package fimg

import (
	"image"
	"image/color"
)

// ARGB is an in-memory image in premultiplied little-endian ARGB8888
// order, i.e. B, G, R, A bytes. It implements draw.Image over a
// caller-provided backing slice so that rendered frames can be copied
// straight into protocol buffers.
type ARGB struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

func NewARGB(r image.Rectangle) *ARGB {
	return &ARGB{
		Pix:    make([]byte, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

// WrapARGB wraps an existing pixel buffer, typically the writable
// canvas of a protocol buffer, without copying it.
func WrapARGB(pix []byte, stride int, r image.Rectangle) *ARGB {
	return &ARGB{Pix: pix, Stride: stride, Rect: r}
}

func (p *ARGB) PixOffset(x, y int) int {
	return ((y - p.Rect.Min.Y) * p.Stride) + (x-p.Rect.Min.X)*4
}

func (p *ARGB) Bounds() image.Rectangle {
	return p.Rect
}

func (p *ARGB) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *ARGB) At(x, y int) color.Color {
	i := p.PixOffset(x, y)
	return color.RGBA{p.Pix[i+2], p.Pix[i+1], p.Pix[i], p.Pix[i+3]}
}

func (p *ARGB) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()

	i := p.PixOffset(x, y)
	p.Pix[i] = uint8(b >> 8)
	p.Pix[i+1] = uint8(g >> 8)
	p.Pix[i+2] = uint8(r >> 8)
	p.Pix[i+3] = uint8(a >> 8)
}
