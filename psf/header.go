package psf

import (
	"bytes"
	"fmt"
)

// Magic is the PSF2 magic number, as found at the start of a font file.
var Magic = [4]byte{0x72, 0xb5, 0x4a, 0x86}

// HeaderSize is the size of a PSF2 header in bytes.
const HeaderSize = 32

// FlagUnicodeTable is set in Header.Flags if the font contains a Unicode table.
const FlagUnicodeTable = 0x01

// Header is the decoded fixed-size header of a PSF2 font.
//
//	offset  field
//	 0      magic (4 bytes)
//	 4      version
//	 8      header size = offset of the glyph bitmaps
//	12      flags
//	16      number of glyphs
//	20      bytes per glyph
//	24      height (pixels)
//	28      width (pixels)
//
// Apart from magic and version, no field is checked for plausibility.
// In particular, BytesPerGlyph is trusted to equal ceil(Width/8)*Height.
type Header struct {
	Version       uint32
	HeaderSize    uint32 // offset of the glyph bitmaps
	Flags         uint32
	NumGlyphs     uint32
	BytesPerGlyph uint32
	Height        uint32 // height of each glyph in pixels
	Width         uint32 // width of each glyph in pixels
}

// ParseHeader decodes a PSF2 header from the start of b.
// b may be the complete font; only the first 32 bytes are inspected.
//
// Errors are of type *FontError, with kind HeaderTooShort, BadMagic or
// UnsupportedVersion, in that order of checking.
func ParseHeader(b []byte) (Header, error) {
	h, kind := decodeHeader(b)
	switch kind {
	case HeaderTooShort:
		return h, errFontFormat(kind, 0, "need %d bytes, have %d", HeaderSize, len(b))
	case BadMagic:
		return h, errFontFormat(kind, 0, "magic number is % x", b[0:4])
	case UnsupportedVersion:
		return h, errFontFormat(kind, 4, "version %d", h.Version)
	}
	return h, nil
}

// decodeHeader is ParseHeader without error details. It does not allocate.
func decodeHeader(b []byte) (h Header, kind ErrorKind) {
	if len(b) < HeaderSize {
		return h, HeaderTooShort
	}
	if !bytes.Equal(b[0:4], Magic[:]) {
		return h, BadMagic
	}
	h.Version = u32(b[4:8])
	if h.Version != 0 {
		return h, UnsupportedVersion
	}
	h.HeaderSize = u32(b[8:12])
	h.Flags = u32(b[12:16])
	h.NumGlyphs = u32(b[16:20])
	h.BytesPerGlyph = u32(b[20:24])
	h.Height = u32(b[24:28])
	h.Width = u32(b[28:32])
	return h, 0
}

// HasUnicodeTable reports whether the font's flags announce a Unicode table.
func (h Header) HasUnicodeTable() bool {
	return h.Flags&FlagUnicodeTable != 0
}

// BytesPerRow is the number of bytes of each glyph row, i.e. ceil(Width/8).
func (h Header) BytesPerRow() int {
	return int((uint64(h.Width) + 7) >> 3)
}

func (h Header) String() string {
	return fmt.Sprintf("<PSF2 v%d: header %d, flags 0x%08x, %d glyphs × %d bytes, %dx%d>",
		h.Version, h.HeaderSize, h.Flags, h.NumGlyphs, h.BytesPerGlyph, h.Width, h.Height)
}
