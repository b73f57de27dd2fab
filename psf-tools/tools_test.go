package main

import (
	"image/color"
	"testing"

	"github.com/npillmayer/psf2/internal/psftest"
	"github.com/npillmayer/psf2/psf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodepoints(t *testing.T) {
	runes, err := parseCodepoints("U+00E9, 0x41 u+20ac")
	require.NoError(t, err)
	assert.Equal(t, []rune{0xe9, 'A', 0x20ac}, runes)
	runes, err = parseCodepoints("U+0030-U+0033,0x41")
	require.NoError(t, err)
	assert.Equal(t, []rune("0123A"), runes)
	for _, bad := range []string{"U+D800", "110000", "xyz", "U+0039-U+0030", ",", "0-10FFFF"} {
		_, err := parseCodepoints(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestRenderText(t *testing.T) {
	b := psftest.New(4, 4)
	for i := range 128 {
		if i == 'o' {
			b.AddPattern([]string{"####", "#..#", "#..#", "####"}, "o")
		} else {
			b.Add(nil, string(rune(i)))
		}
	}
	f, err := psf.New(b.Bytes())
	require.NoError(t, err)
	img, err := renderText(f, "o o", 2, false)
	require.NoError(t, err)
	assert.Equal(t, 3*4*2, img.Bounds().Dx())
	assert.Equal(t, 4*2, img.Bounds().Dy())
	black := color.RGBA{A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	assert.Equal(t, black, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(1, 1), "expected pixels to be scaled")
	assert.Equal(t, white, img.RGBAAt(2, 2))
	assert.Equal(t, white, img.RGBAAt(8, 0), "expected blank space cell")
	assert.Equal(t, black, img.RGBAAt(16, 0))
	//
	img, err = renderText(f, "oo", 1, true)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(4, 1))
	_, err = renderText(f, "", 1, false)
	assert.Error(t, err)
	_, err = renderText(f, "o", 0, false)
	assert.Error(t, err)
}
