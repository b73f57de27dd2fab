/*
Package psfface adapts PSF2 fonts to golang.org/x/image/font.

A Face draws the glyphs of a psf.Font with the usual x/image machinery, e.g.
font.Drawer. As PSF2 fonts are bitmap fonts, glyphs are neither scaled nor
hinted: every glyph occupies a cell of the font's width and height, with the
baseline at a fixed distance from the cell's bottom.

Faces are not safe for concurrent use, as glyph lookup updates the font's
lookup cache.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package psfface

import (
	"image"

	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/psf2/psfquery"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'psf2.face'
func tracer() tracing.Trace {
	return tracing.Select("psf2.face")
}

// Options configure a Face.
type Options struct {
	Descent  int  // pixels of a cell below the baseline
	Fallback rune // drawn for runes without a glyph; 0 for none
}

// Face implements font.Face for a PSF2 font.
type Face struct {
	font     *psf.Font
	ascent   int
	descent  int
	fallback rune
}

var _ font.Face = (*Face)(nil)

// NewFace creates a face for f. If opts is nil, a quarter of the cell is put
// below the baseline and U+FFFD is used as fallback.
func NewFace(f *psf.Font, opts *Options) *Face {
	if opts == nil {
		opts = &Options{Descent: f.Height() / 4, Fallback: '\uFFFD'}
	}
	descent := min(max(opts.Descent, 0), f.Height())
	tracer().Debugf("face for %dx%d font, descent %d", f.Width(), f.Height(), descent)
	return &Face{
		font:     f,
		ascent:   f.Height() - descent,
		descent:  descent,
		fallback: opts.Fallback,
	}
}

// find returns the glyph index for r, or for the fallback rune.
// found tells if r itself has a glyph.
func (face *Face) find(r rune) (idx int, found, ok bool) {
	if idx, ok := psfquery.GlyphIndex(face.font, r); ok {
		return idx, true, true
	}
	if face.fallback != 0 {
		if idx, ok := psfquery.GlyphIndex(face.font, face.fallback); ok {
			return idx, false, true
		}
	}
	return 0, false, false
}

func (face *Face) Close() error { return nil }

// Kern returns 0, PSF2 fonts are monospaced.
func (face *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (face *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(face.font.Height()),
		Ascent:     fixed.I(face.ascent),
		Descent:    fixed.I(face.descent),
		XHeight:    fixed.I(face.ascent),
		CapHeight:  fixed.I(face.ascent),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

// Glyph returns the mask of the glyph for r, placed with its baseline at dot.
// If r has no glyph, the fallback glyph is returned with ok set to false.
func (face *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	idx, found, exists := face.find(r)
	if !exists {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	dr, mask, maskp, advance, _ = face.GlyphAt(dot, idx)
	return dr, mask, maskp, advance, found
}

// GlyphAt is like Glyph, but for a glyph index instead of a rune. Clients
// which resolve text themselves, e.g. grapheme clusters with package psftext,
// use it to draw the resulting glyphs.
func (face *Face) GlyphAt(dot fixed.Point26_6, idx int) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	data, ok := face.font.GlyphByIndex(idx)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := int(dot.X+32) >> 6
	y := int(dot.Y+32) >> 6
	dr = image.Rect(x, y-face.ascent, x+face.font.Width(), y+face.descent)
	return dr, NewMask(data, face.font.Width()), image.Point{}, fixed.I(face.font.Width()), true
}

func (face *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	_, found, exists := face.find(r)
	if !exists {
		return fixed.Rectangle26_6{}, 0, false
	}
	w := face.font.Width()
	return fixed.R(0, -face.ascent, w, face.descent), fixed.I(w), found
}

func (face *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	_, found, exists := face.find(r)
	if !exists {
		return 0, false
	}
	return fixed.I(face.font.Width()), found
}
