package psfface

import (
	"image"
	"image/color"
)

// Mask is an alpha mask over a glyph bitmap. It does not copy the bitmap.
// Set pixels are opaque, clear pixels are transparent.
type Mask struct {
	data   []byte
	width  int
	height int
	stride int
}

var _ image.Image = (*Mask)(nil)

// NewMask creates a mask for a bitmap of rows of width pixels. Trailing bytes
// which do not make up a complete row are ignored.
func NewMask(data []byte, width int) *Mask {
	m := &Mask{data: data, width: max(width, 0)}
	m.stride = (m.width + 7) >> 3
	if m.stride > 0 {
		m.height = len(data) / m.stride
	}
	return m
}

func (m *Mask) ColorModel() color.Model { return color.AlphaModel }

func (m *Mask) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

func (m *Mask) At(x, y int) color.Color { return m.AlphaAt(x, y) }

// AlphaAt returns the alpha value of pixel (x, y).
func (m *Mask) AlphaAt(x, y int) color.Alpha {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.Alpha{}
	}
	if m.data[y*m.stride+x>>3]&(0x80>>(x&7)) != 0 {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}
