package psfface

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/psf2/internal/psftest"
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	letterX = []string{
		"......",
		"#....#",
		".#..#.",
		"..##..",
		".#..#.",
		"#....#",
	}
	box = []string{
		"######",
		"#....#",
		"#....#",
		"#....#",
		"#....#",
		"######",
	}
)

// testFont has 6x6 glyphs for all of ASCII, blank except 'x', plus a box
// for U+FFFD.
func testFont(t *testing.T) *psf.Font {
	b := psftest.New(6, 6)
	for i := range 128 {
		if i == 'x' {
			b.AddPattern(letterX, "x")
		} else {
			b.Add(nil, string(rune(i)))
		}
	}
	b.AddPattern(box, "\uFFFD")
	f, err := psf.New(b.Bytes())
	require.NoError(t, err)
	return f
}

func render(img *image.Alpha) []string {
	var rows []string
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		line := make([]byte, 0, r.Dx())
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.AlphaAt(x, y).A != 0 {
				line = append(line, '#')
			} else {
				line = append(line, '.')
			}
		}
		rows = append(rows, string(line))
	}
	return rows
}

func TestMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "psf2.face")
	defer teardown()
	//
	face := NewFace(testFont(t), &Options{Descent: 2})
	m := face.Metrics()
	assert.Equal(t, fixed.I(6), m.Height)
	assert.Equal(t, fixed.I(4), m.Ascent)
	assert.Equal(t, fixed.I(2), m.Descent)
	adv, ok := face.GlyphAdvance('x')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(6), adv)
	bounds, adv, ok := face.GlyphBounds('x')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(6), adv)
	assert.Equal(t, fixed.R(0, -4, 6, 2), bounds)
	assert.Equal(t, fixed.Int26_6(0), face.Kern('x', 'x'))
	assert.NoError(t, face.Close())
	// default options
	face = NewFace(testFont(t), nil)
	assert.Equal(t, fixed.I(1), face.Metrics().Descent)
}

func TestGlyphPlacement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "psf2.face")
	defer teardown()
	//
	face := NewFace(testFont(t), &Options{Descent: 2})
	dr, mask, maskp, adv, ok := face.Glyph(fixed.P(10, 20), 'x')
	require.True(t, ok)
	assert.Equal(t, image.Rect(10, 16, 16, 22), dr)
	assert.Equal(t, image.Point{}, maskp)
	assert.Equal(t, fixed.I(6), adv)
	assert.Equal(t, image.Rect(0, 0, 6, 6), mask.Bounds())
}

func TestFallback(t *testing.T) {
	f := testFont(t)
	face := NewFace(f, nil)
	_, mask, _, _, ok := face.Glyph(fixed.P(0, 0), '\u00df')
	assert.False(t, ok, "expected fallback glyph to report ok = false")
	require.NotNil(t, mask, "expected fallback mask")
	_, ok = face.GlyphAdvance('\u00df')
	assert.False(t, ok)
	//
	face = NewFace(f, &Options{Descent: 1})
	_, mask, _, _, ok = face.Glyph(fixed.P(0, 0), '\u00df')
	assert.False(t, ok)
	assert.Nil(t, mask, "expected no mask without fallback")
	_, _, ok = face.GlyphBounds('\u00df')
	assert.False(t, ok)
}

func TestDrawer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "psf2.face")
	defer teardown()
	//
	face := NewFace(testFont(t), &Options{Descent: 1, Fallback: '\uFFFD'})
	dst := image.NewAlpha(image.Rect(0, 0, 18, 6))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, 5),
	}
	d.DrawString("x \u00df")
	assert.Equal(t, fixed.I(18), d.Dot.X)
	want := make([]string, 6)
	for y := range want {
		want[y] = letterX[y] + "......" + box[y]
	}
	if diff := cmp.Diff(want, render(dst)); diff != "" {
		t.Errorf("drawing mismatch (-want +got):\n%s", diff)
	}
}

func TestMask(t *testing.T) {
	m := NewMask(psftest.Pattern(10, "#........#", ".#......#."), 10)
	assert.Equal(t, image.Rect(0, 0, 10, 2), m.Bounds())
	assert.Equal(t, uint8(0xff), m.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0xff), m.AlphaAt(9, 0).A)
	assert.Equal(t, uint8(0xff), m.AlphaAt(8, 1).A)
	assert.Equal(t, uint8(0), m.AlphaAt(1, 0).A)
	assert.Equal(t, uint8(0), m.AlphaAt(10, 0).A, "expected padding to be outside of mask")
	assert.Equal(t, uint8(0), m.AlphaAt(0, 2).A)
	assert.Equal(t, uint8(0), m.AlphaAt(-1, 0).A)
	assert.Equal(t, image.Rect(0, 0, 0, 0), NewMask([]byte{1, 2}, 0).Bounds())
}

func TestGlyphAt(t *testing.T) {
	face := NewFace(testFont(t), &Options{Descent: 2})
	dr, mask, _, adv, ok := face.GlyphAt(fixed.P(0, 4), 128)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 6, 6), dr)
	assert.Equal(t, fixed.I(6), adv)
	assert.Equal(t, uint8(0xff), mask.(*Mask).AlphaAt(0, 0).A, "expected box glyph")
	_, _, _, _, ok = face.GlyphAt(fixed.P(0, 4), 129)
	assert.False(t, ok)
}
