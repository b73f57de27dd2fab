package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/psf2"
	"github.com/npillmayer/psf2/psf"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("psf-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for PSF2 console font diagnostics and rendering.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("info").
		SetDescription("Print header information and consistency warnings for a PSF2 font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "PSF2 font file path", "").
		AddFlag("check,c", "print consistency warnings", commando.Bool, nil).
		AddFlag("records,r", "number of Unicode table records to print", commando.Int, 0).
		SetAction(runInfoCommand)

	commando.
		Register("banner").
		SetDescription("Print text as large letters, using the glyphs of a PSF2 font.").
		SetShortDescription("text to console").
		AddArgument("font", "PSF2 font file path", "").
		AddArgument("text...", "text to print (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+00E9,U+0041)", commando.String, "-").
		AddFlag("set", "character for set pixels", commando.String, "#").
		AddFlag("clear", "character for clear pixels", commando.String, " ").
		SetAction(runBannerCommand)

	commando.
		Register("view").
		SetDescription("Render text with a PSF2 font to a PNG image.").
		SetShortDescription("text to image").
		AddArgument("font", "PSF2 font file path", "").
		AddArgument("text...", "text to render (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+00E9,U+0041)", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "psf-tools-view.png").
		AddFlag("scale,s", "integer scale factor", commando.Int, 4).
		AddFlag("show-cells,B", "draw red outlines around character cells", commando.Bool, nil).
		SetAction(runViewCommand)

	commando.Parse(nil)
}

// textInput returns the text to work on: the --codepoints list if one is
// given, the text argument otherwise.
func textInput(textArg commando.ArgValue, cpFlag commando.FlagValue) (string, error) {
	list, err := cpFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("--codepoints: %w", err)
	}
	if list = strings.TrimSpace(list); list == "" || list == "-" {
		return textArg.Value, nil
	}
	runes, err := parseCodepoints(list)
	return string(runes), err
}

// parseCodepoints reads a list like "U+00E9, 0x41 20AC U+0030-U+0039".
// Items are separated by commas or white space; a dash denotes an
// inclusive range.
func parseCodepoints(list string) ([]rune, error) {
	var runes []rune
	items := strings.Fields(strings.ReplaceAll(list, ",", " "))
	for _, item := range items {
		lo, hi, isRange := strings.Cut(item, "-")
		from, err := codepoint(lo)
		if err != nil {
			return nil, err
		}
		to := from
		if isRange {
			if to, err = codepoint(hi); err != nil {
				return nil, err
			}
			if to < from || to-from > 0xffff {
				return nil, fmt.Errorf("bad codepoint range %q", item)
			}
		}
		for r := from; r <= to; r++ {
			if utf8.ValidRune(r) {
				runes = append(runes, r)
			}
		}
	}
	if len(runes) == 0 {
		return nil, errors.New("no codepoints given")
	}
	return runes, nil
}

func codepoint(s string) (rune, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.ToUpper(s), "U+"), "0X")
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, fmt.Errorf("%q is not a Unicode scalar value", s)
	}
	return rune(n), nil
}

// loadFontArg loads the font named by the "font" argument, or exits.
func loadFontArg(args map[string]commando.ArgValue) (*psf.Font, string) {
	path := strings.TrimSpace(args["font"].Value)
	if path == "" {
		fatalf("font path is required")
	}
	f, err := psf2.LoadFont(path)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	return f, path
}

// flagValue exits if a flag cannot be read, e.g. flagValue("scale", flags["scale"].GetInt).
func flagValue[T any](name string, get func() (T, error)) T {
	v, err := get()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return v
}

// flagRune returns the first character of a string flag.
func flagRune(name string, flag commando.FlagValue) rune {
	for _, r := range flagValue(name, flag.GetString) {
		return r
	}
	fatalf("--%s flag is empty", name)
	return 0
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "psf-tools: "+format+"\n", args...)
	os.Exit(1)
}
