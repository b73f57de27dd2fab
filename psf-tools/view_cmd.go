package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/psf2/psfface"
	"github.com/npillmayer/psf2/psftext"
	"github.com/thatisuday/commando"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

func runViewCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f, _ := loadFontArg(args)
	input, err := textInput(args["text"], flags["codepoints"])
	if err != nil || input == "" {
		fatalf("no text to render: %v", err)
	}
	outPath := strings.TrimSpace(flagValue("output", flags["output"].GetString))
	if outPath == "" {
		fatalf("output path is empty")
	}
	scale := flagValue("scale", flags["scale"].GetInt)
	showCells := flagValue("show-cells", flags["show-cells"].GetBool)
	if err := renderTextPNG(f, input, outPath, scale, showCells); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s\n", outPath)
}

func renderTextPNG(f *psf.Font, text string, outPath string, scale int, showCells bool) error {
	img, err := renderText(f, text, scale, showCells)
	if err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// renderText draws text black on white, one character cell per grapheme
// cluster, and scales the result by an integer factor.
func renderText(f *psf.Font, text string, scale int, showCells bool) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}
	cells := psftext.Count(text, nil)
	if cells == 0 || f.Width() == 0 || f.Height() == 0 {
		return nil, errors.New("nothing to render")
	}
	face := psfface.NewFace(f, nil)
	defer face.Close()
	line := image.NewRGBA(image.Rect(0, 0, cells*f.Width(), f.Height()))
	draw.Draw(line, line.Bounds(), image.White, image.Point{}, draw.Src)
	dot := fixed.Point26_6{Y: face.Metrics().Ascent}
	for c := range psftext.Glyphs(f, text, nil) {
		if c.Found || c.Fallback {
			dr, mask, maskp, _, _ := face.GlyphAt(dot, c.Index)
			draw.DrawMask(line, dr, image.Black, image.Point{}, mask, maskp, draw.Over)
		}
		dot.X += fixed.I(f.Width())
	}
	b := line.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(img, img.Bounds(), line, b, xdraw.Src, nil)
	if showCells {
		red := image.NewUniform(color.RGBA{R: 0xff, A: 0xff})
		cell := image.Rect(0, 0, f.Width()*scale, f.Height()*scale)
		for i := range cells {
			outline(img, cell.Add(image.Pt(i*cell.Dx(), 0)), red)
		}
	}
	return img, nil
}

// outline draws a one pixel frame along the inner edges of r.
func outline(img draw.Image, r image.Rectangle, c image.Image) {
	if r = r.Intersect(img.Bounds()); r.Empty() {
		return
	}
	edges := [...]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), // top
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), // left
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	for _, e := range edges {
		draw.Draw(img, e, c, image.Point{}, draw.Src)
	}
}
