package psfquery

import (
	"iter"
	"unicode/utf8"

	"github.com/npillmayer/psf2/psf"
)

// Record is the Unicode table entry of one glyph.
type Record struct {
	Glyph     int      // glyph index
	Sequences []string // UTF-8 sequences mapped to the glyph, in table order
	Offset    int      // offset of the record within the Unicode table
}

// Runes returns the sequences of r which consist of a single scalar value.
func (r Record) Runes() []rune {
	var runes []rune
	for _, seq := range r.Sequences {
		if c, size := utf8.DecodeRuneInString(seq); size == len(seq) && c != utf8.RuneError {
			runes = append(runes, c)
		}
	}
	return runes
}

// TableEnd tells why walking a Unicode table stopped.
type TableEnd int

const (
	EndMarker   TableEnd = iota // double separator found
	EndOfData                   // data ends after a complete record
	Truncated                   // data ends within a record
	BadSequence                 // malformed UTF-8 leading byte
)

func (e TableEnd) String() string {
	switch e {
	case EndMarker:
		return "end marker"
	case EndOfData:
		return "end of data"
	case Truncated:
		return "truncated record"
	case BadSequence:
		return "malformed UTF-8"
	}
	return "?"
}

// Records iterates over the records of a font's Unicode table, in glyph order.
// Iteration stops at the end marker, at the end of the data, or at the first
// malformed leading byte, the same way psf.ScanUnicodeTable does. A single
// separator as the last byte of the table is taken as the end marker.
func Records(f *psf.Font) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		if f == nil {
			return
		}
		walkTable(f.UnicodeTable(), yield)
	}
}

// TableStatus walks a font's Unicode table and reports how the walk ended,
// at which offset, and how many records it found.
func TableStatus(f *psf.Font) (end TableEnd, offset int, count int) {
	if f == nil {
		return EndOfData, 0, 0
	}
	end, offset = walkTable(f.UnicodeTable(), func(int, Record) bool {
		count++
		return true
	})
	return
}

func walkTable(table []byte, yield func(int, Record) bool) (TableEnd, int) {
	glyph, i := 0, 0
	for i < len(table) {
		if table[i] == psf.Separator && (i+1 == len(table) || table[i+1] == psf.Separator) {
			return EndMarker, i
		}
		rec := Record{Glyph: glyph, Offset: i}
	record:
		for {
			if i >= len(table) {
				return Truncated, i
			}
			switch table[i] {
			case psf.StartSeq:
				i++
			case psf.Separator:
				i++
				break record
			default:
				start := i
				for i < len(table) && table[i] != psf.StartSeq && table[i] != psf.Separator {
					n := psf.SeqLen(table[i])
					if n == 0 {
						tracer().Debugf("malformed UTF-8 in Unicode table at offset %d", i)
						return BadSequence, i
					}
					if i+n > len(table) {
						return Truncated, i
					}
					i += n
				}
				rec.Sequences = append(rec.Sequences, string(table[start:i]))
			}
		}
		if !yield(glyph, rec) {
			return EndMarker, i
		}
		glyph++
	}
	return EndOfData, i
}
