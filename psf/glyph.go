package psf

import "iter"

// Glyph is a cursor over the rows of a glyph bitmap.
//
// Each glyph is a 2D bitmap of Height rows, each row taking ceil(Width/8)
// bytes. Pixels are stored most significant bit first; padding bits at the
// end of a row are ignored.
//
//	┌ row 0:   bytesPerRow bytes
//	│ row 1:   bytesPerRow bytes
//	│ …
//	└ row h-1: bytesPerRow bytes
//
// Rows may be taken from the front (Next) and from the back (NextBack), in any
// interleaving; the two ends meet in the middle. Glyph is a small value type:
// a copy is an independent cursor, thus copying a Glyph before iterating is
// the way to iterate it more than once.
//
// Rows:
//
//	g := glyph // keep glyph for later
//	for row, ok := g.Next(); ok; row, ok = g.Next() {
//	    for on, ok := row.Next(); ok; on, ok = row.Next() {
//	        … // set or clear a pixel
//	    }
//	}
type Glyph struct {
	data  []byte // rows not yet consumed
	width int    // pixels per row
}

// NewGlyph creates a cursor over data, a bitmap of rows of width pixels.
// A trailing partial row is never returned.
func NewGlyph(data []byte, width int) Glyph {
	if width < 0 {
		width = 0
	}
	return Glyph{data: data, width: width}
}

func (g Glyph) bytesPerRow() int {
	return (g.width + 7) >> 3
}

// Width returns the number of pixels per row.
func (g Glyph) Width() int {
	return g.width
}

// Bytes returns the bytes of the rows not yet consumed.
func (g Glyph) Bytes() []byte {
	return g.data
}

// Len returns the number of rows remaining.
func (g Glyph) Len() int {
	bpr := g.bytesPerRow()
	if bpr == 0 {
		return 0
	}
	return len(g.data) / bpr
}

// Next consumes and returns the top-most remaining row.
func (g *Glyph) Next() (Row, bool) {
	bpr := g.bytesPerRow()
	if bpr == 0 || len(g.data) < bpr {
		return Row{}, false
	}
	row := g.data[:bpr:bpr]
	g.data = g.data[bpr:]
	return Row{data: row, width: g.width}, true
}

// NextBack consumes and returns the bottom-most remaining row.
func (g *Glyph) NextBack() (Row, bool) {
	bpr := g.bytesPerRow()
	if bpr == 0 || len(g.data) < bpr {
		return Row{}, false
	}
	// align to row boundaries if data has a trailing partial row
	end := len(g.data) / bpr * bpr
	split := end - bpr
	row := g.data[split:end:end]
	g.data = g.data[:split]
	return Row{data: row, width: g.width}, true
}

// Rows returns an iterator over the remaining rows, top to bottom.
// It does not consume g.
func (g Glyph) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for row, ok := g.Next(); ok; row, ok = g.Next() {
			if !yield(row) {
				return
			}
		}
	}
}

// Backward returns an iterator over the remaining rows, bottom to top.
// It does not consume g.
func (g Glyph) Backward() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for row, ok := g.NextBack(); ok; row, ok = g.NextBack() {
			if !yield(row) {
				return
			}
		}
	}
}

// Row is a cursor over the pixels of one row of a glyph, left to right.
type Row struct {
	data  []byte // ceil(width/8) bytes
	bit   int    // next pixel
	width int
}

// Bytes returns the row's bytes, including padding bits.
func (r Row) Bytes() []byte {
	return r.data
}

// Width returns the number of pixels of the row.
func (r Row) Width() int {
	return r.width
}

// Len returns the number of pixels remaining.
func (r Row) Len() int {
	return r.width - r.bit
}

// At reports whether pixel x is set. Pixels outside the row are never set.
func (r Row) At(x int) bool {
	if x < 0 || x >= r.width || x>>3 >= len(r.data) {
		return false
	}
	return r.data[x>>3]&(0x80>>(x&7)) != 0
}

// Next consumes the next pixel and reports whether it is set.
// The second result is false after the row's last pixel.
func (r *Row) Next() (on bool, ok bool) {
	if r.bit >= r.width || r.bit>>3 >= len(r.data) {
		return false, false
	}
	on = r.data[r.bit>>3]&(0x80>>(r.bit&7)) != 0
	r.bit++
	return on, true
}

// Pixels returns an iterator over the remaining pixels of the row, yielding
// column and pixel state. It does not consume r.
func (r Row) Pixels() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for x := r.bit; ; x++ {
			on, ok := r.Next()
			if !ok || !yield(x, on) {
				return
			}
		}
	}
}
