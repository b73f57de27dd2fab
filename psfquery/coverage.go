package psfquery

import (
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/psf2/psf"
)

// Coverage returns the code-points a font resolves to a glyph, in ascending order.
// ASCII code-points are covered by the glyph with the same index, provided the
// font has enough glyphs. Other code-points are collected from single-scalar
// sequences of the Unicode table.
func Coverage(f *psf.Font) []rune {
	if f == nil {
		return nil
	}
	var runes []rune
	for r := range min(f.NumGlyphs(), utf8.RuneSelf) {
		runes = append(runes, rune(r))
	}
	for glyph, rec := range Records(f) {
		if glyph >= f.NumGlyphs() {
			break
		}
		for _, r := range rec.Runes() {
			if r >= utf8.RuneSelf {
				runes = append(runes, r)
			}
		}
	}
	slices.Sort(runes)
	return slices.Compact(runes)
}

// GlyphIndex returns the glyph index for a code-point, using the font's
// regular lookup. Returns (index, true) if the font has a glyph for r.
func GlyphIndex(f *psf.Font, r rune) (int, bool) {
	if f == nil || !utf8.ValidRune(r) {
		return 0, false
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	idx, ok := f.Index(buf[:n])
	if !ok || idx >= f.NumGlyphs() {
		return 0, false
	}
	return idx, true
}

// CodePointForGlyph returns the first code-point mapped to a glyph.
// For glyphs below 0x80 without a table entry, the glyph index itself is
// returned. Returns 0 if no code-point is mapped to the glyph.
//
// This is a linear search over the Unicode table.
func CodePointForGlyph(f *psf.Font, glyph int) rune {
	if f == nil || glyph < 0 || glyph >= f.NumGlyphs() {
		return 0
	}
	for g, rec := range Records(f) {
		if g == glyph {
			if runes := rec.Runes(); len(runes) > 0 {
				return runes[0]
			}
			break
		}
	}
	if glyph < utf8.RuneSelf {
		return rune(glyph)
	}
	return 0
}
