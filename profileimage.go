/*
Package profileimage is a library for creating and rendering pixel-art
profile pictures.
*/
package profileimage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"

	"github.com/bodgit/profileimage/generator"
	"github.com/bodgit/profileimage/picture"
	"golang.org/x/image/draw"
)

type ProfileImage struct {
	gen    *generator.Generator
	logger *log.Logger
}

func New(gen *generator.Generator, logger *log.Logger) *ProfileImage {
	return &ProfileImage{
		gen:    gen,
		logger: logger,
	}
}

// Generate returns a new random profile picture
func (p *ProfileImage) Generate() (*picture.Image, error) {
	return p.gen.Generate()
}

// WritePNG renders img with palette pal and writes it to w as a PNG, each
// pixel enlarged to a scale by scale square.
func WritePNG(w io.Writer, img *picture.Image, pal color.Palette, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	if len(pal) < picture.PaletteSize {
		return fmt.Errorf("%w: palette has %d colors", picture.ErrValidation, len(pal))
	}

	m := img.Paletted(pal[:picture.PaletteSize])
	if scale > 1 {
		dst := image.NewPaletted(image.Rect(0, 0, picture.Width*scale, picture.Height*scale), m.Palette)
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
		m = dst
	}

	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
	}
	return enc.Encode(w, m)
}
