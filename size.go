package psf2

import (
	"fmt"
	"path/filepath"

	"github.com/npillmayer/psf2/psf"
)

// Size enumerates the pixel sizes in which the Spleen bitmap font family is
// distributed. The font files themselves are not part of this module.
type Size int

// Spleen sizes, width × height in pixels.
const (
	S5x8 Size = iota
	S6x12
	S8x16
	S12x24
	S16x32
	S32x64
)

var sizeDimensions = [...][2]int{
	S5x8:   {5, 8},
	S6x12:  {6, 12},
	S8x16:  {8, 16},
	S12x24: {12, 24},
	S16x32: {16, 32},
	S32x64: {32, 64},
}

// Sizes lists all sizes, smallest first.
var Sizes = []Size{S5x8, S6x12, S8x16, S12x24, S16x32, S32x64}

// Dimensions returns width and height of glyphs of size s, or (0, 0) for an
// unknown size.
func (s Size) Dimensions() (width, height int) {
	if s < 0 || int(s) >= len(sizeDimensions) {
		return 0, 0
	}
	return sizeDimensions[s][0], sizeDimensions[s][1]
}

func (s Size) String() string {
	w, h := s.Dimensions()
	if w == 0 {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return fmt.Sprintf("%dx%d", w, h)
}

// Filename returns the name of the Spleen font file of size s.
func (s Size) Filename() string {
	return "spleen-" + s.String() + ".psfu"
}

// SizeOf returns the size matching a font's glyph dimensions.
func SizeOf(f *psf.Font) (Size, bool) {
	for _, s := range Sizes {
		if w, h := s.Dimensions(); w == f.Width() && h == f.Height() {
			return s, true
		}
	}
	return 0, false
}

// LoadSize loads the Spleen font of size s from directory dir.
func LoadSize(dir string, s Size) (*psf.Font, error) {
	return LoadFont(filepath.Join(dir, s.Filename()))
}
