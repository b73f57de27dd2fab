package psf

// Markers of the Unicode table.
//
// Each glyph owns one record in the table. A record lists one or more UTF-8
// sequences which all map to the glyph, separated by StartSeq, and ends with
// Separator. Two consecutive Separator bytes end the table.
//
//	record := seq { StartSeq seq } Separator
//
// The glyph index of a record is its position in the table.
const (
	StartSeq  byte = 0xFE
	Separator byte = 0xFF
)

// SeqLen returns the length of a UTF-8 encoded scalar, given its leading byte.
// It returns 0 for bytes which cannot start a well-formed scalar.
func SeqLen(lead byte) int {
	switch {
	case lead <= 0x7f:
		return 1
	case lead >= 0xc2 && lead <= 0xdf:
		return 2
	case lead >= 0xe0 && lead <= 0xef:
		return 3
	case lead >= 0xf0 && lead <= 0xf4:
		return 4
	}
	return 0
}

// ScanUnicodeTable searches a PSF2 Unicode table for key and returns the index
// of the glyph whose record contains key as one of its sequences.
//
// The first malformed leading byte ends the scan without a match, even if a
// later record would contain key. Running off the end of table without having
// seen the double Separator is a miss as well.
func ScanUnicodeTable(table, key []byte) (int, bool) {
	glyph := 0
	i := 0
	for i < len(table) {
		if i+1 < len(table) && table[i] == Separator && table[i+1] == Separator {
			return 0, false // end of table
		}
	record:
		for {
			if i >= len(table) {
				return 0, false
			}
			switch table[i] {
			case StartSeq:
				i++
			case Separator:
				glyph++
				i++
				break record
			default:
				start := i
				for i < len(table) && table[i] != StartSeq && table[i] != Separator {
					n := SeqLen(table[i])
					if n == 0 || i+n > len(table) {
						return 0, false
					}
					i += n
				}
				if string(table[start:i]) == string(key) {
					// glyph has not yet been incremented for this record
					return glyph, true
				}
			}
		}
	}
	return 0, false
}
