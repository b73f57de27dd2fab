package psfquery

import (
	"strings"
	"testing"

	"github.com/npillmayer/psf2/internal/psftest"
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type QueryTestEnviron struct {
	suite.Suite
	font *psf.Font
}

// listen for 'go test' command --> run test methods
func TestQueryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "psf2.query")
	defer teardown()
	suite.Run(t, new(QueryTestEnviron))
}

// run once, before test suite methods
func (env *QueryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("psf2.query").SetTraceLevel(tracing.LevelInfo)
	b := psftest.ASCII(8, 8)
	b.Add(psftest.Filler(128, 8), "\u00e9", "e\u0301")
	b.Add(psftest.Filler(129, 8), "\u03a9", "\u2126")
	var err error
	env.font, err = psf.New(b.Bytes())
	env.Require().NoError(err)
}

// run once, after test suite methods
func (env *QueryTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *QueryTestEnviron) TestInfo() {
	info, ok := Info(env.font)
	env.Require().True(ok)
	env.Equal(uint32(0), info.Version)
	env.Equal(uint32(32), info.HeaderSize)
	env.True(info.HasUnicodeTable)
	env.Equal(130, info.NumGlyphs)
	env.Equal(8, info.Width)
	env.Equal(8, info.Height)
	env.Equal(8, info.BytesPerGlyph)
	env.Equal(1, info.BytesPerRow)
	env.Equal(130*8, info.GlyphTableSize)
	env.Equal(271, info.UnicodeSize)
	_, ok = Info(nil)
	env.False(ok)
}

func (env *QueryTestEnviron) TestRecords() {
	n := 0
	for glyph, rec := range Records(env.font) {
		env.Equal(n, glyph)
		env.Equal(glyph, rec.Glyph)
		if glyph == 128 {
			env.Equal([]string{"\u00e9", "e\u0301"}, rec.Sequences)
			env.Equal(256, rec.Offset)
			env.Equal([]rune{'\u00e9'}, rec.Runes())
		}
		n++
	}
	env.Equal(130, n)
	for glyph := range Records(env.font) {
		if glyph == 3 {
			break
		}
	}
	end, offset, count := TableStatus(env.font)
	env.Equal(EndMarker, end)
	env.Equal(270, offset)
	env.Equal(130, count)
}

func (env *QueryTestEnviron) TestCoverage() {
	runes := Coverage(env.font)
	env.Require().Len(runes, 128+3)
	env.Equal(rune(0), runes[0])
	env.Equal([]rune{'\u00e9', '\u03a9', '\u2126'}, runes[128:])
	env.Nil(Coverage(nil))
}

func (env *QueryTestEnviron) TestGlyphIndex() {
	tests := []struct {
		r     rune
		glyph int
		ok    bool
	}{
		{'A', 65, true},
		{'\u00e9', 128, true},
		{'\u2126', 129, true},
		{'\u00df', 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		glyph, ok := GlyphIndex(env.font, tt.r)
		env.Equal(tt.ok, ok, "lookup of %U", tt.r)
		env.Equal(tt.glyph, glyph, "lookup of %U", tt.r)
	}
}

func (env *QueryTestEnviron) TestCodePointForGlyph() {
	env.Equal('A', CodePointForGlyph(env.font, 65))
	env.Equal('\u00e9', CodePointForGlyph(env.font, 128))
	env.Equal('\u03a9', CodePointForGlyph(env.font, 129))
	env.Equal(rune(0), CodePointForGlyph(env.font, 130))
	env.Equal(rune(0), CodePointForGlyph(env.font, -1))
}

func (env *QueryTestEnviron) TestCleanFont() {
	env.Empty(Check(env.font))
}

// --- Font checks -----------------------------------------------------------

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "psf2.query")
	defer teardown()
	//
	oddHeader := psftest.New(8, 8).Add(nil, "A")
	oddHeader.HeaderSize = 40
	noFlag := psftest.New(8, 8).Add(nil, "A")
	noFlag.NoUnicodeFlag = true
	malformed := psftest.New(8, 8).Add(nil, "A")
	malformed.Table = []byte{'A', 0xff, 0x80, 0xff, 0xff}
	truncated := psftest.New(8, 8).Add(nil, "A")
	truncated.Table = []byte{'A', 0xff, 'B'}
	surplus := psftest.New(8, 8).Add(nil, "A")
	surplus.Table = []byte{'A', 0xff, 'B', 0xff, 'C', 0xff, 0xff}
	badSize := append(psftest.Header(0, 32, 0, 1, 3, 2, 8), 0, 0, 0)
	tests := []struct {
		name    string
		data    []byte
		section string
		issue   string
	}{
		{"header size", oddHeader.Bytes(), "Header", "header size is 40"},
		{"no flag", noFlag.Bytes(), "Unicode", "Unicode flag is not set"},
		{"malformed", malformed.Bytes(), "Unicode", "malformed UTF-8"},
		{"truncated", truncated.Bytes(), "Unicode", "ends within a record"},
		{"surplus records", surplus.Bytes(), "Unicode", "3 records for 1 glyphs"},
		{"glyph size", badSize, "Header", "3 bytes per glyph"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := psf.New(tt.data)
			if err != nil {
				t.Fatal(err)
			}
			warnings := Check(f)
			if len(warnings) != 1 {
				t.Fatalf("expected 1 warning, got %v", warnings)
			}
			w := warnings[0]
			if w.Section != tt.section || !strings.Contains(w.Issue, tt.issue) {
				t.Errorf("unexpected warning %s", w)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	if d := Describe('\u00e9'); d != "U+00E9 LATIN SMALL LETTER E WITH ACUTE" {
		t.Errorf("unexpected description %q", d)
	}
	want := "U+0065 LATIN SMALL LETTER E + U+0301 COMBINING ACUTE ACCENT"
	if d := DescribeSequence("e\u0301"); d != want {
		t.Errorf("DescribeSequence = %q; want %q", d, want)
	}
}
