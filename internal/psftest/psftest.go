// Package psftest synthesizes PSF2 fonts for tests.
//
// Fonts are built in memory, so tests do not depend on font files being
// installed. Builder does not import package psf, to be usable from psf's own tests.
package psftest

import (
	"encoding/binary"
	"strings"
)

var magic = []byte{0x72, 0xb5, 0x4a, 0x86}

// Builder assembles the bytes of a PSF2 font.
type Builder struct {
	Width, Height int
	Version       uint32
	HeaderSize    uint32 // 0 means 32
	Flags         uint32 // bit 0 is set by Bytes if not told otherwise
	NoUnicodeFlag bool
	Table         []byte // if non-nil, used verbatim as the Unicode table

	glyphs  [][]byte
	records [][]string
}

// New creates a builder for glyphs of width × height pixels.
func New(width, height int) *Builder {
	return &Builder{Width: width, Height: height}
}

// BytesPerRow is ceil(Width/8).
func (b *Builder) BytesPerRow() int {
	return (b.Width + 7) / 8
}

// BytesPerGlyph is BytesPerRow × Height.
func (b *Builder) BytesPerGlyph() int {
	return b.BytesPerRow() * b.Height
}

// NumGlyphs returns the number of glyphs added so far.
func (b *Builder) NumGlyphs() int {
	return len(b.glyphs)
}

// Add appends a glyph with the given bitmap and Unicode aliases.
// The bitmap is truncated or zero-padded to BytesPerGlyph.
func (b *Builder) Add(bitmap []byte, aliases ...string) *Builder {
	g := make([]byte, b.BytesPerGlyph())
	copy(g, bitmap)
	b.glyphs = append(b.glyphs, g)
	b.records = append(b.records, aliases)
	return b
}

// AddPattern appends a glyph drawn as text, one string per row, where '#'
// (or 'X') is a set pixel and anything else is a clear pixel.
func (b *Builder) AddPattern(rows []string, aliases ...string) *Builder {
	return b.Add(Pattern(b.Width, rows...), aliases...)
}

// Pattern packs rows drawn as text into a bitmap of rows of width pixels.
func Pattern(width int, rows ...string) []byte {
	bpr := (width + 7) / 8
	bitmap := make([]byte, bpr*len(rows))
	for y, row := range rows {
		for x, c := range []byte(row) {
			if x >= width {
				break
			}
			if c == '#' || c == 'X' {
				bitmap[y*bpr+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return bitmap
}

// Render draws a bitmap as text, the inverse of Pattern.
func Render(bitmap []byte, width int) []string {
	bpr := (width + 7) / 8
	if bpr == 0 {
		return nil
	}
	var rows []string
	for y := 0; (y+1)*bpr <= len(bitmap); y++ {
		var sb strings.Builder
		for x := range width {
			if bitmap[y*bpr+x/8]&(0x80>>(x%8)) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// Filler returns a bitmap of n bytes, distinct for every glyph index.
func Filler(glyph, n int) []byte {
	bitmap := make([]byte, n)
	for i := range bitmap {
		bitmap[i] = byte(glyph*31 + i*7 + 1)
	}
	return bitmap
}

// ASCII creates a builder pre-filled with 128 glyphs, glyph i having alias
// string(rune(i)) and a bitmap produced by Filler.
func ASCII(width, height int) *Builder {
	b := New(width, height)
	for i := range 128 {
		b.Add(Filler(i, b.BytesPerGlyph()), string(rune(i)))
	}
	return b
}

// UnicodeTable encodes the aliases of all glyphs added so far, including the
// double separator at the end.
func (b *Builder) UnicodeTable() []byte {
	var table []byte
	for _, aliases := range b.records {
		for i, a := range aliases {
			if i > 0 {
				table = append(table, 0xfe)
			}
			table = append(table, a...)
		}
		table = append(table, 0xff)
	}
	return append(table, 0xff)
}

// Bytes encodes the font.
func (b *Builder) Bytes() []byte {
	hsize := b.HeaderSize
	if hsize == 0 {
		hsize = 32
	}
	flags := b.Flags
	if !b.NoUnicodeFlag {
		flags |= 1
	}
	header := make([]byte, 32)
	copy(header, magic)
	binary.LittleEndian.PutUint32(header[4:], b.Version)
	binary.LittleEndian.PutUint32(header[8:], hsize)
	binary.LittleEndian.PutUint32(header[12:], flags)
	binary.LittleEndian.PutUint32(header[16:], uint32(len(b.glyphs)))
	binary.LittleEndian.PutUint32(header[20:], uint32(b.BytesPerGlyph()))
	binary.LittleEndian.PutUint32(header[24:], uint32(b.Height))
	binary.LittleEndian.PutUint32(header[28:], uint32(b.Width))

	font := append([]byte{}, header...)
	for len(font) < int(hsize) {
		font = append(font, 0)
	}
	for _, g := range b.glyphs {
		font = append(font, g...)
	}
	if b.Table != nil {
		return append(font, b.Table...)
	}
	return append(font, b.UnicodeTable()...)
}

// Header encodes a bare header with arbitrary field values.
func Header(version, hsize, flags, numGlyphs, bytesPerGlyph, height, width uint32) []byte {
	header := make([]byte, 32)
	copy(header, magic)
	for i, v := range []uint32{version, hsize, flags, numGlyphs, bytesPerGlyph, height, width} {
		binary.LittleEndian.PutUint32(header[4+4*i:], v)
	}
	return header
}
