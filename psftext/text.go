/*
Package psftext maps text to the glyphs of a PSF2 font.

Package psf resolves a single UTF-8 sequence to a glyph. Text, however, is a
sequence of user-perceived characters (grapheme clusters), which may consist of
more than one code-point, e.g. a base letter followed by a combining accent.
Glyphs splits text into grapheme clusters and resolves every cluster to
exactly one glyph: console fonts have one glyph per character cell.

Text is normalized to NFC first, as PSF2 fonts usually map pre-composed
characters. A cluster which cannot be found as a whole is looked up by its
first code-point, and then by a list of fallback code-points.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package psftext

import (
	"iter"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'psf2.text'
func tracer() tracing.Trace {
	return tracing.Select("psf2.text")
}

// DefaultFallback is used if Options do not name fallback code-points:
// the replacement character, then a question mark.
var DefaultFallback = []rune{'\uFFFD', '?'}

// Options control the mapping of text to glyphs.
type Options struct {
	Fallback []rune // code-points to try for unknown clusters; nil for DefaultFallback
	Raw      bool   // do not normalize text to NFC
}

// Cluster is a grapheme cluster of the input text, together with its glyph.
type Cluster struct {
	Offset   int       // position of the cluster's first rune in the (normalized) text
	Text     string    // the cluster's code-points
	Index    int       // glyph index, valid if Found or Fallback is set
	Glyph    psf.Glyph // the glyph's rows, empty if neither Found nor Fallback is set
	Found    bool      // the cluster, or its first code-point, has a glyph
	Fallback bool      // a fallback code-point has been substituted
}

// Glyphs iterates over the grapheme clusters of text, resolving each one to a
// glyph of f. opts may be nil.
//
// Glyphs uses f's lookup cache and must not be called concurrently with other
// lookups on the same font.
func Glyphs(f *psf.Font, text string, opts *Options) iter.Seq[Cluster] {
	if opts == nil {
		opts = &Options{}
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = DefaultFallback
	}
	if !opts.Raw {
		text = norm.NFC.String(text)
	}
	return func(yield func(Cluster) bool) {
		if f == nil || text == "" {
			return
		}
		var seg segmenter.Segmenter
		seg.InitWithString(text)
		it := seg.GraphemeIterator()
		var buf []byte
		for it.Next() {
			g := it.Grapheme()
			buf = buf[:0]
			for _, r := range g.Text {
				buf = utf8.AppendRune(buf, r)
			}
			c := Cluster{Offset: g.Offset, Text: string(buf)}
			resolve(f, &c, buf, g.Text, fallback)
			if !yield(c) {
				return
			}
		}
	}
}

func resolve(f *psf.Font, c *Cluster, cluster []byte, runes []rune, fallback []rune) {
	if idx, ok := lookup(f, cluster); ok {
		c.Index, c.Found = idx, true
	} else if len(runes) > 1 {
		first := cluster[:utf8.RuneLen(runes[0])]
		if idx, ok := lookup(f, first); ok {
			c.Index, c.Found = idx, true
		}
	}
	if !c.Found {
		var buf [utf8.UTFMax]byte
		for _, r := range fallback {
			n := utf8.EncodeRune(buf[:], r)
			if idx, ok := lookup(f, buf[:n]); ok {
				tracer().Debugf("no glyph for %q, substituting %q", c.Text, r)
				c.Index, c.Fallback = idx, true
				break
			}
		}
	}
	if c.Found || c.Fallback {
		c.Glyph, _ = f.GlyphAt(c.Index)
	}
}

// lookup is f.Index, restricted to existing glyphs.
func lookup(f *psf.Font, text []byte) (int, bool) {
	idx, ok := f.Index(text)
	if !ok || idx >= f.NumGlyphs() {
		return 0, false
	}
	return idx, true
}

// Count returns the number of character cells text occupies on a console,
// i.e. the number of its grapheme clusters. opts may be nil.
func Count(text string, opts *Options) int {
	if opts == nil || !opts.Raw {
		text = norm.NFC.String(text)
	}
	if text == "" {
		return 0
	}
	var seg segmenter.Segmenter
	seg.InitWithString(text)
	n := 0
	for it := seg.GraphemeIterator(); it.Next(); {
		n++
	}
	return n
}
