package fontload

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/psf2/psf"
)

// BitmapFont is a parsed PSF2 font together with its original bytes.
type BitmapFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	Font     *psf.Font
}

// LoadPSFFont loads a PSF2 font (*.psf or *.psfu) from a file.
func LoadPSFFont(fontfile string) (*BitmapFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParsePSFFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	base := filepath.Base(fontfile)
	f.Fontname = strings.TrimSuffix(base, filepath.Ext(base))
	return f, nil
}

// ParsePSFFont loads a PSF2 font from memory.
func ParsePSFFont(fbytes []byte) (*BitmapFont, error) {
	f := &BitmapFont{Binary: fbytes}
	var err error
	if f.Font, err = psf.New(f.Binary); err != nil {
		return nil, err
	}
	return f, nil
}
