package psf

import "fmt"

// ErrorKind classifies errors encountered when decoding a font.
type ErrorKind int

const (
	// HeaderTooShort is reported for input of less than 32 bytes.
	HeaderTooShort ErrorKind = iota + 1
	// BadMagic is reported if the input does not start with the PSF2 magic number.
	BadMagic
	// UnsupportedVersion is reported for any header version other than 0.
	UnsupportedVersion
	// TruncatedData is reported if the glyph table reaches beyond the end of the input.
	TruncatedData
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case HeaderTooShort:
		return "HeaderTooShort"
	case BadMagic:
		return "BadMagic"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case TruncatedData:
		return "TruncatedData"
	default:
		return "Unknown"
	}
}

// FontError represents an error encountered during font parsing.
// Font errors are raised only when creating a Font; lookups never fail with an error.
type FontError struct {
	Kind   ErrorKind // what went wrong
	Issue  string    // human-readable description of the issue
	Offset uint64    // byte offset in the font data where the error occurred (0 if unknown)
}

// Sentinel errors to check a FontError's kind with errors.Is.
var (
	ErrHeaderTooShort     = &FontError{Kind: HeaderTooShort}
	ErrBadMagic           = &FontError{Kind: BadMagic}
	ErrUnsupportedVersion = &FontError{Kind: UnsupportedVersion}
	ErrTruncatedData      = &FontError{Kind: TruncatedData}
)

// Error implements the error interface.
func (e *FontError) Error() string {
	if e.Issue == "" {
		return fmt.Sprintf("PSF2 font format: %s", e.Kind)
	}
	if e.Offset > 0 {
		return fmt.Sprintf("PSF2 font format: %s at offset %d: %s", e.Kind, e.Offset, e.Issue)
	}
	return fmt.Sprintf("PSF2 font format: %s: %s", e.Kind, e.Issue)
}

// Is reports whether target is a FontError of the same kind.
func (e *FontError) Is(target error) bool {
	t, ok := target.(*FontError)
	return ok && t.Kind == e.Kind
}

func errFontFormat(kind ErrorKind, offset uint64, format string, args ...any) error {
	return &FontError{
		Kind:   kind,
		Issue:  fmt.Sprintf(format, args...),
		Offset: offset,
	}
}

// FontWarning represents a non-critical issue found in a font.
// Warnings indicate potential problems but do not prevent font usage.
type FontWarning struct {
	Section string // part of the font the warning refers to, e.g. "Header"
	Issue   string // human-readable description of the warning
	Offset  uint64 // byte offset in the font data (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Section, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Section, w.Issue)
}
