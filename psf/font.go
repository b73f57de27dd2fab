package psf

import "math"

// Font is a PSF2 font, borrowing the bytes it has been parsed from.
//
// A Font is not safe for concurrent use: lookups of non-ASCII text write to
// the font's lookup cache. GlyphByIndex, GlyphAt and the accessors are read-only.
type Font struct {
	header        Header
	width         int
	height        int
	bytesPerGlyph int
	numGlyphs     int
	glyphs        []byte // exactly numGlyphs × bytesPerGlyph
	unicode       []byte // everything after the glyphs
	cache         Cache
}

// New parses a PSF2 font from data.
// A Font needs ongoing access to data after New returns, and data must not be
// changed while the Font is in use.
//
// Errors are of type *FontError.
func New(data []byte) (*Font, error) {
	f := &Font{}
	if kind := f.init(data); kind != 0 {
		return nil, explain(kind, data)
	}
	tracer().Debugf("PSF2 font %v, Unicode table of %d bytes", f.header, len(f.unicode))
	return f, nil
}

// Init (re-)initializes f from data. Unlike New it lets clients decide where
// the Font lives, e.g. in a package level variable. The lookup cache is emptied.
// On error, f is left unchanged.
//
// Init does not allocate. Errors are the bare sentinels ErrHeaderTooShort,
// ErrBadMagic, ErrUnsupportedVersion and ErrTruncatedData, without details.
func (f *Font) Init(data []byte) error {
	switch f.init(data) {
	case HeaderTooShort:
		return ErrHeaderTooShort
	case BadMagic:
		return ErrBadMagic
	case UnsupportedVersion:
		return ErrUnsupportedVersion
	case TruncatedData:
		return ErrTruncatedData
	}
	return nil
}

// maxInt bounds header fields which are used as int.
var maxInt uint64 = math.MaxInt

func (f *Font) init(data []byte) ErrorKind {
	h, kind := decodeHeader(data)
	if kind != 0 {
		return kind
	}
	glyphsOffset, unicodeOffset := h.layout()
	if uint64(len(data)) < unicodeOffset {
		return TruncatedData
	}
	for _, v := range [...]uint32{h.NumGlyphs, h.BytesPerGlyph, h.Width, h.Height} {
		if uint64(v) > maxInt { // 32 bit platforms
			return TruncatedData
		}
	}
	*f = Font{
		header:        h,
		width:         int(h.Width),
		height:        int(h.Height),
		bytesPerGlyph: int(h.BytesPerGlyph),
		numGlyphs:     int(h.NumGlyphs),
		glyphs:        data[glyphsOffset:unicodeOffset:unicodeOffset],
		unicode:       data[unicodeOffset:],
	}
	return 0
}

// layout returns the offsets of the glyph bitmaps and of the Unicode table.
// 64 bit arithmetic: two uint32 factors cannot overflow.
func (h Header) layout() (glyphs, unicode uint64) {
	glyphs = uint64(h.HeaderSize)
	return glyphs, glyphs + uint64(h.NumGlyphs)*uint64(h.BytesPerGlyph)
}

// explain creates a detailed error for a failed init.
func explain(kind ErrorKind, data []byte) error {
	h, err := ParseHeader(data)
	if err != nil {
		return err
	}
	glyphsOffset, unicodeOffset := h.layout()
	if uint64(len(data)) < unicodeOffset {
		return errFontFormat(TruncatedData, glyphsOffset,
			"%d glyphs of %d bytes need %d bytes of data, have %d",
			h.NumGlyphs, h.BytesPerGlyph, unicodeOffset, len(data))
	}
	return errFontFormat(kind, 16, "header fields exceed platform int: %v", h)
}

// Header returns the font's decoded header.
func (f *Font) Header() Header { return f.header }

// Width returns the width of every glyph in pixels.
func (f *Font) Width() int { return f.width }

// Height returns the height of every glyph in pixels.
func (f *Font) Height() int { return f.height }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.numGlyphs }

// BytesPerGlyph returns the size of a glyph bitmap in bytes.
func (f *Font) BytesPerGlyph() int { return f.bytesPerGlyph }

// BytesPerRow returns the size of a glyph row in bytes.
func (f *Font) BytesPerRow() int { return (f.width + 7) >> 3 }

// HasUnicodeTable reports whether the font header announces a Unicode table.
func (f *Font) HasUnicodeTable() bool { return f.header.HasUnicodeTable() }

// UnicodeTable returns the bytes following the glyph bitmaps.
// For well-formed fonts this is the Unicode table.
func (f *Font) UnicodeTable() []byte { return f.unicode }

// GlyphByIndex returns the bitmap of glyph idx, which is exactly BytesPerGlyph
// bytes long. It returns false for indices outside of [0…NumGlyphs).
func (f *Font) GlyphByIndex(idx int) ([]byte, bool) {
	if idx < 0 || idx >= f.numGlyphs {
		return nil, false
	}
	start := idx * f.bytesPerGlyph
	end := start + f.bytesPerGlyph
	if end > len(f.glyphs) { // cannot happen for a Font created with New
		return nil, false
	}
	return f.glyphs[start:end:end], true
}

// Index resolves a UTF-8 sequence, usually a single grapheme, to a glyph index.
//
// A single ASCII byte is its own glyph index. Other sequences are looked up in
// the font's cache first, and then in the Unicode table. Results found in the
// table are added to the cache.
//
// Index does not check the resulting index against the number of glyphs.
func (f *Font) Index(text []byte) (int, bool) {
	if len(text) == 0 {
		return 0, false
	}
	if len(text) == 1 && text[0] <= 0x7f {
		return int(text[0]), true
	}
	if idx, ok := f.cache.Get(text); ok {
		return idx, true
	}
	idx, ok := ScanUnicodeTable(f.unicode, text)
	if !ok {
		return 0, false
	}
	f.cache.Insert(text, idx)
	return idx, true
}

// GlyphData returns the bitmap of the glyph for text, see Index.
// It returns false if text cannot be resolved or resolves to an invalid glyph index.
func (f *Font) GlyphData(text []byte) ([]byte, bool) {
	idx, ok := f.Index(text)
	if !ok {
		return nil, false
	}
	return f.GlyphByIndex(idx)
}

// Glyph returns a cursor over the rows of the glyph for text.
func (f *Font) Glyph(text []byte) (Glyph, bool) {
	data, ok := f.GlyphData(text)
	if !ok {
		return Glyph{}, false
	}
	return NewGlyph(data, f.width), true
}

// GlyphAt returns a cursor over the rows of glyph idx.
func (f *Font) GlyphAt(idx int) (Glyph, bool) {
	data, ok := f.GlyphByIndex(idx)
	if !ok {
		return Glyph{}, false
	}
	return NewGlyph(data, f.width), true
}
