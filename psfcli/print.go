package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/psf2"
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/psf2/psfquery"
	"github.com/pterm/pterm"
)

const defaultRecordCount = 20

func infoOp(intp *Intp, op *Op) (error, bool) {
	info, ok := psfquery.Info(intp.font)
	if !ok {
		return ErrNoFont, false
	}
	size := "-"
	if s, ok := psf2.SizeOf(intp.font); ok {
		size = s.String()
	}
	data := [][]string{
		{"Field", "Value"},
		{"Version", fmt.Sprintf("%d", info.Version)},
		{"Header size", fmt.Sprintf("%d", info.HeaderSize)},
		{"Flags", fmt.Sprintf("%#x", info.Flags)},
		{"Unicode table", fmt.Sprintf("%v (%d bytes)", info.HasUnicodeTable, info.UnicodeSize)},
		{"Glyphs", fmt.Sprintf("%d", info.NumGlyphs)},
		{"Glyph size", fmt.Sprintf("%dx%d", info.Width, info.Height)},
		{"Spleen size", size},
		{"Bytes per glyph", fmt.Sprintf("%d (%d per row)", info.BytesPerGlyph, info.BytesPerRow)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func checkOp(intp *Intp, op *Op) (error, bool) {
	warnings := psfquery.Check(intp.font)
	if len(warnings) == 0 {
		pterm.Success.Println("font is consistent")
		return nil, false
	}
	for _, w := range warnings {
		pterm.Warning.Println(w.String())
	}
	return nil, false
}

func recordsOp(intp *Intp, op *Op) (error, bool) {
	count := defaultRecordCount
	if arg, ok := op.hasArg(); ok {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("record count not numeric: %v", arg), false
		}
		count = n
	}
	data := [][]string{
		{"Glyph", "Offset", "Sequences"},
	}
	for glyph, rec := range psfquery.Records(intp.font) {
		if glyph >= count {
			break
		}
		data = append(data, []string{
			fmt.Sprintf("%d", glyph),
			fmt.Sprintf("%d", rec.Offset),
			formatSequences(rec.Sequences),
		})
	}
	end, offset, n := psfquery.TableStatus(intp.font)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d records, table stops at offset %d: %s\n", n, offset, end)
	return nil, false
}

func coverageOp(intp *Intp, op *Op) (error, bool) {
	runes := psfquery.Coverage(intp.font)
	data := [][]string{
		{"From", "To", "Count"},
	}
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[j-1]+1 {
			j++
		}
		data = append(data, []string{
			fmt.Sprintf("%U", runes[i]),
			fmt.Sprintf("%U", runes[j-1]),
			fmt.Sprintf("%d", j-i),
		})
		i = j
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d code-points covered\n", len(runes))
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return ErrNoArg, false
	}
	idx, ok := intp.font.Index([]byte(text))
	if !ok {
		return fmt.Errorf("no glyph for %q", text), false
	}
	g, ok := intp.font.GlyphAt(idx)
	if !ok {
		return fmt.Errorf("glyph index %d for %q is out of range", idx, text), false
	}
	pterm.Printf("%s => glyph %d\n", psfquery.DescribeSequence(text), idx)
	printGlyph(g)
	return nil, false
}

func indexOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return ErrNoArg, false
	}
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("glyph index not numeric: %v", arg), false
	}
	g, ok := intp.font.GlyphAt(idx)
	if !ok {
		return fmt.Errorf("no glyph %d, font has %d glyphs", idx, intp.font.NumGlyphs()), false
	}
	if r := psfquery.CodePointForGlyph(intp.font, idx); r != 0 {
		pterm.Printf("glyph %d => %s\n", idx, psfquery.Describe(r))
	}
	printGlyph(g)
	return nil, false
}

func printGlyph(g psf.Glyph) {
	for row := range g.Rows() {
		line := make([]rune, 0, row.Width())
		for _, on := range row.Pixels() {
			if on {
				line = append(line, '█')
			} else {
				line = append(line, '·')
			}
		}
		pterm.Println(string(line))
	}
}

func formatSequences(seqs []string) string {
	s := ""
	for i, seq := range seqs {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%q", seq)
	}
	return s
}
