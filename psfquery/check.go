package psfquery

import (
	"fmt"

	"github.com/npillmayer/psf2/psf"
)

// Check inspects a font for inconsistencies which do not prevent parsing,
// but are likely to make glyph lookup or rendering go wrong.
// It returns a list of warnings, which is empty for a clean font.
func Check(f *psf.Font) []psf.FontWarning {
	if f == nil {
		return nil
	}
	var warnings []psf.FontWarning
	warn := func(section string, offset uint64, format string, args ...any) {
		w := psf.FontWarning{Section: section, Offset: offset, Issue: fmt.Sprintf(format, args...)}
		tracer().Infof("%s", w)
		warnings = append(warnings, w)
	}
	h := f.Header()
	if h.HeaderSize != psf.HeaderSize {
		warn("Header", 8, "header size is %d, expected %d", h.HeaderSize, psf.HeaderSize)
	}
	if h.Width == 0 || h.Height == 0 {
		warn("Header", 24, "glyph size %dx%d has no pixels", h.Width, h.Height)
	}
	if want := f.BytesPerRow() * f.Height(); f.BytesPerGlyph() != want {
		warn("Header", 20, "%d bytes per glyph, %dx%d bitmap needs %d",
			f.BytesPerGlyph(), f.Width(), f.Height(), want)
	}
	if f.NumGlyphs() == 0 {
		warn("Header", 16, "font has no glyphs")
	}
	tableStart := uint64(h.HeaderSize) + uint64(f.NumGlyphs())*uint64(f.BytesPerGlyph())
	if !f.HasUnicodeTable() {
		if len(f.UnicodeTable()) > 0 {
			warn("Unicode", tableStart, "%d bytes of trailing data, but Unicode flag is not set",
				len(f.UnicodeTable()))
		}
		return warnings
	}
	end, offset, count := TableStatus(f)
	switch end {
	case Truncated:
		warn("Unicode", tableStart+uint64(offset), "table ends within a record")
	case BadSequence:
		warn("Unicode", tableStart+uint64(offset), "malformed UTF-8 leading byte %#02x",
			f.UnicodeTable()[offset])
	}
	if count > f.NumGlyphs() {
		warn("Unicode", tableStart, "table has %d records for %d glyphs", count, f.NumGlyphs())
	}
	return warnings
}
