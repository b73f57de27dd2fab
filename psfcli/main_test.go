package main

import (
	"testing"

	"github.com/npillmayer/psf2"
	"github.com/npillmayer/psf2/internal/psftest"
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "psf2.cli")
	defer teardown()
	//
	tests := []struct {
		line string
		ops  []Op
	}{
		{"info", []Op{{code: INFO}}},
		{"info records:10", []Op{{code: INFO}, {code: RECORDS, arg: "10"}}},
		{"check quit info", []Op{{code: CHECK}, {code: QUIT}}},
		{"text:Hello World", []Op{{code: TEXT, arg: "Hello World"}}},
		{"info png:Hi there:hi.png", []Op{{code: INFO}, {code: PNG, arg: "Hi there", format: "hi.png"}}},
		{"help:table", []Op{{code: HELP, arg: "table"}}},
		{"text:12:30 ok", []Op{{code: TEXT, arg: "12:30 ok"}}},
		{"glyph::", []Op{{code: GLYPH, arg: ":"}}},
		{"info glyph:a b", []Op{{code: INFO}, {code: GLYPH, arg: "a b"}}},
		{"png:at 12:30:clock.png", []Op{{code: PNG, arg: "at 12:30", format: "clock.png"}}},
		{"png:Hi", []Op{{code: PNG, arg: "Hi"}}},
		{"frobnicate", []Op{{code: HELP}}},
	}
	for _, tt := range tests {
		steps, err := parseCommand(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.ops, steps, tt.line)
	}
}

func TestParseSize(t *testing.T) {
	s, err := parseSize("12x24")
	require.NoError(t, err)
	assert.Equal(t, psf2.S12x24, s)
	_, err = parseSize("7x7")
	assert.Error(t, err)
}

func TestRenderImage(t *testing.T) {
	b := psftest.New(8, 8)
	for i := range 128 {
		if i == 'A' {
			b.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "A")
		} else {
			b.Add(nil, string(rune(i)))
		}
	}
	f, err := psf.New(b.Bytes())
	require.NoError(t, err)
	img := renderImage(&Intp{font: f}, "AA")
	assert.Equal(t, 4*8, img.Bounds().Dx())
	assert.Equal(t, 3*8, img.Bounds().Dy())
	assert.Equal(t, uint8(0xff), img.GrayAt(0, 0).Y, "expected white margin")
	assert.Equal(t, uint8(0), img.GrayAt(8, 8).Y, "expected black glyph pixel")
	assert.Equal(t, uint8(0), img.GrayAt(23, 15).Y, "expected black glyph pixel")
	assert.Equal(t, uint8(0xff), img.GrayAt(24, 8).Y, "expected white margin")
}
