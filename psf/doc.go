/*
Package psf decodes PSF2 bitmap fonts and resolves UTF-8 text to glyph bitmaps.

Intended audience for this package are:

▪︎ kernels and bootloaders, which have to put text onto a framebuffer before
any allocator or operating system is available

▪︎ terminal emulators and other programs rendering console fonts (the *.psfu
files found in /usr/share/consolefonts and in the Spleen distribution)

Package `psf` does not draw anything. It exposes a font's glyphs as borrowed
byte slices and as cursors over rows and pixels; clients put the pixels
wherever they like. Likewise, line spacing, kerning or any other kind of
composition is not the business of this package (PSF2 does not define any of it).

# Memory

A Font borrows the byte slice it has been created from. No glyph data is ever
copied and, once a Font has been created, no lookup will allocate memory.
The font's bytes must not change while a Font or any Glyph or Row derived from
it is in use.

# Lookup

Text is resolved to a glyph in three steps:

▪︎ a single byte in the ASCII range is taken as the glyph index itself

▪︎ other byte sequences are looked up in a small cache, owned by the Font

▪︎ on a cache miss, the font's Unicode table is scanned and the result is cached

Lookups which may write to the cache require exclusive access to a Font. A Font
is not safe for concurrent use; clients have to serialize access or use one
Font per goroutine.

# Format

	+-----------------------------+
	| header (32 bytes, LE)       |  magic 72 b5 4a 86, version 0, …
	+-----------------------------+
	| glyphs                      |  numGlyphs × bytesPerGlyph, rows MSB first
	+-----------------------------+
	| Unicode table               |  per glyph: seq {FE seq} FF
	+-----------------------------+

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package psf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'psf2'
func tracer() tracing.Trace {
	return tracing.Select("psf2")
}
