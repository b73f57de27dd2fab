package psftext

import (
	"strings"

	"github.com/npillmayer/psf2/psf"
)

// Banner renders a line of text as strings of set and clear characters, one
// string per pixel row. Cells of clusters without a glyph are left clear.
func Banner(f *psf.Font, text string, opts *Options, set, clear rune) []string {
	if f == nil || f.Height() == 0 {
		return nil
	}
	rows := make([]strings.Builder, f.Height())
	blank := strings.Repeat(string(clear), f.Width())
	for c := range Glyphs(f, text, opts) {
		g := c.Glyph
		for y := range rows {
			row, ok := g.Next()
			if !ok {
				rows[y].WriteString(blank)
				continue
			}
			for _, on := range row.Pixels() {
				if on {
					rows[y].WriteRune(set)
				} else {
					rows[y].WriteRune(clear)
				}
			}
		}
	}
	lines := make([]string, len(rows))
	for y := range rows {
		lines[y] = rows[y].String()
	}
	return lines
}
