/*
Package psfquery provides typed query views over PSF2 fonts.

Package `psf` is concerned with resolving text to glyphs quickly. Tools which
want to know more about a font, e.g. which characters it covers or whether
its header is consistent, find the corresponding functions here. None of the
functions in this package is optimized for speed, and most of them allocate.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package psfquery

import (
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'psf2.query'
func tracer() tracing.Trace {
	return tracing.Select("psf2.query")
}

// FontInfo contains the header information of a font, plus sizes derived from it.
type FontInfo struct {
	Version         uint32
	HeaderSize      uint32
	Flags           uint32
	HasUnicodeTable bool
	NumGlyphs       int
	Width, Height   int // pixels
	BytesPerGlyph   int
	BytesPerRow     int
	GlyphTableSize  int // bytes
	UnicodeSize     int // bytes following the glyph table
}

// Info returns header information for a font.
// Returns (info, true) on success, or (zero, false) for a nil font.
func Info(f *psf.Font) (FontInfo, bool) {
	var info FontInfo
	if f == nil {
		return info, false
	}
	h := f.Header()
	info.Version = h.Version
	info.HeaderSize = h.HeaderSize
	info.Flags = h.Flags
	info.HasUnicodeTable = h.HasUnicodeTable()
	info.NumGlyphs = f.NumGlyphs()
	info.Width = f.Width()
	info.Height = f.Height()
	info.BytesPerGlyph = f.BytesPerGlyph()
	info.BytesPerRow = f.BytesPerRow()
	info.GlyphTableSize = f.NumGlyphs() * f.BytesPerGlyph()
	info.UnicodeSize = len(f.UnicodeTable())
	return info, true
}
