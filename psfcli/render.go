package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/npillmayer/psf2/psfface"
	"github.com/npillmayer/psf2/psftext"
	"github.com/pterm/pterm"
	"golang.org/x/image/math/fixed"
)

func textOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return ErrNoArg, false
	}
	for c := range psftext.Glyphs(intp.font, text, nil) {
		if !c.Found {
			tracer().Infof("no glyph for %s", c.Text)
		}
	}
	for _, line := range psftext.Banner(intp.font, text, nil, '█', ' ') {
		pterm.Println(line)
	}
	return nil, false
}

func pngOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return ErrNoArg, false
	}
	filename := op.format
	if filename == "" {
		return errors.New("usage: png:<text>:<file>"), false
	}
	img := renderImage(intp, text)
	out, err := os.Create(filename)
	if err != nil {
		return err, false
	}
	if err = png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("cannot encode %s: %w", filename, err), false
	}
	if err = out.Close(); err != nil {
		return err, false
	}
	pterm.Success.Printf("wrote %dx%d image to %s\n", img.Bounds().Dx(), img.Bounds().Dy(), filename)
	return nil, false
}

// renderImage draws a line of text, black on white, with a margin of one cell.
func renderImage(intp *Intp, text string) *image.Gray {
	f := intp.font
	face := psfface.NewFace(f, nil)
	defer face.Close()
	cells := psftext.Count(text, nil)
	img := image.NewGray(image.Rect(0, 0, (cells+2)*f.Width(), 3*f.Height()))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	dot := fixed.Point26_6{X: fixed.I(f.Width()), Y: fixed.I(f.Height()) + face.Metrics().Ascent}
	for c := range psftext.Glyphs(f, text, nil) {
		if c.Found || c.Fallback {
			dr, mask, maskp, _, _ := face.GlyphAt(dot, c.Index)
			draw.DrawMask(img, dr, image.Black, image.Point{}, mask, maskp, draw.Over)
		}
		dot.X += fixed.I(f.Width())
	}
	return img
}
