package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/psf2"
	"github.com/npillmayer/psf2/psfquery"
	"github.com/npillmayer/psf2/psftext"
	"github.com/thatisuday/commando"
)

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f, fontPath := loadFontArg(args)
	info, _ := psfquery.Info(f)

	fmt.Printf("Path: %s\n", fontPath)
	fmt.Printf("Version: %d\n", info.Version)
	fmt.Printf("Glyphs: %d of %dx%d pixels, %d bytes each\n",
		info.NumGlyphs, info.Width, info.Height, info.BytesPerGlyph)
	if s, ok := psf2.SizeOf(f); ok {
		fmt.Printf("Spleen size: %s\n", s)
	}
	fmt.Printf("Unicode table: %v, %d bytes\n", info.HasUnicodeTable, info.UnicodeSize)
	end, offset, count := psfquery.TableStatus(f)
	fmt.Printf("Records: %d, %s at offset %d\n", count, end, offset)
	fmt.Printf("Coverage: %d code-points\n", len(psfquery.Coverage(f)))

	if n := flagValue("records", flags["records"].GetInt); n > 0 {
		for glyph, rec := range psfquery.Records(f) {
			if glyph >= n {
				break
			}
			fmt.Printf("%5d:", glyph)
			for _, seq := range rec.Sequences {
				fmt.Printf(" %q", seq)
			}
			fmt.Println()
		}
	}
	if flagValue("check", flags["check"].GetBool) {
		warnings := psfquery.Check(f)
		for _, w := range warnings {
			fmt.Println(w.String())
		}
		fmt.Printf("Issues: warnings=%d\n", len(warnings))
	}
}

func runBannerCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f, _ := loadFontArg(args)
	input, err := textInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	on := flagRune("set", flags["set"])
	off := flagRune("clear", flags["clear"])
	for _, line := range psftext.Banner(f, input, nil, on, off) {
		fmt.Println(strings.TrimRight(line, " "))
	}
}
