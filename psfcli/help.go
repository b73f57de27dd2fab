package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "format", "header", "psf", "psf2":
		pterm.Info.Println("PSF2 Font Format")
		pterm.Println(`
	A PSF2 font starts with a header of 8 little-endian uint32 values:
	+-------+---------+------------+-------+--------+---------------+--------+-------+
	| magic | version | headersize | flags | length | bytesperglyph | height | width |
	+-------+---------+------------+-------+--------+---------------+--------+-------+
	The header is followed by 'length' glyph bitmaps, row by row, each row padded
	to a whole number of bytes. Bit 7 of the first byte is the leftmost pixel.
	If bit 0 of 'flags' is set, a Unicode table follows the bitmaps.
	`)
	case "table", "unicode", "records":
		pterm.Info.Println("Unicode Table")
		pterm.Println(`
	The Unicode table has one record per glyph, in glyph order:
	+------------+------+------------+------+-----+------+
	| UTF-8 seq. | 0xFE | UTF-8 seq. | 0xFE | ... | 0xFF |
	+------------+------+------------+------+-----+------+
	Every sequence of a record is mapped to the record's glyph.
	A sequence may consist of more than one code-point, e.g. a letter
	followed by a combining accent. A single ASCII character always
	maps to the glyph with the same index; its records are never read.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info                   show the font header
	check                  report inconsistencies of the font
	glyph:<text>           show the glyph for a character
	index:<n>              show glyph number n
	records[:<n>]          list the first n records of the Unicode table
	coverage               list the ranges of characters covered
	text:<text>            render text to the console
	png:<text>:<file>      render text to a PNG image
	help[:format|table]    show this help, or help on a topic
	quit                   leave the CLI
	`)
	}
}
