/*
Package psf2 is for PC Screen Fonts, version 2.

PSF2 is the format of the Linux console fonts (*.psfu) and of bitmap font
families like Spleen or Terminus. A PSF2 font is a fixed-size header, a table
of equally sized glyph bitmaps and, usually, a table mapping Unicode text to
glyphs. There are no outlines, no metrics beyond width and height, and no
kerning.

Package psf2 contains convenience functions; the real work is done by the
sub-packages:

▪︎ `psf`: decoding fonts and resolving text to glyph bitmaps, without allocating

▪︎ `psfquery`: typed views of a font's header and Unicode table, and consistency checks

▪︎ `psftext`: splitting text into grapheme clusters and resolving them, with fallback glyphs

▪︎ `psfface`: an adapter to golang.org/x/image/font.Face

# Links

The PSF format, as documented with the Linux kbd package:
https://www.win.tue.nl/~aeb/linux/kbd/font-formats-1.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package psf2

import (
	"github.com/npillmayer/psf2/internal/fontload"
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'psf2'
func tracer() tracing.Trace {
	return tracing.Select("psf2")
}

// LoadFont loads a PSF2 font from a file.
func LoadFont(fontfile string) (*psf.Font, error) {
	f, err := fontload.LoadPSFFont(fontfile)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded PSF2 font %s: %d glyphs of %dx%d", f.Fontname, f.Font.NumGlyphs(),
		f.Font.Width(), f.Font.Height())
	return f.Font, nil
}

// FromBinary parses raw PSF2 bytes and returns a decoded font.
//
// The font keeps referencing data, which must not change as long as the font is in use.
func FromBinary(data []byte) (*psf.Font, error) {
	return psf.New(data)
}
