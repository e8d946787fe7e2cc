package picture

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

type encoder struct {
	w   io.Writer
	tmp [Size]byte
}

func (e *encoder) encode(m *Image) error {
	m.pack(e.tmp[:])
	_, err := e.w.Write(e.tmp[:])
	return err
}

// Encode writes the picture m to w in its 128 byte binary form.
func Encode(w io.Writer, m *Image) error {
	if m == nil {
		return errors.New("picture: nil image")
	}
	e := encoder{w: w}
	return e.encode(m)
}

// Convert turns any image into a profile picture. The image is scaled to 16
// by 16 using nearest-neighbour sampling and each pixel is mapped to the
// closest color in p. If p is nil a palette is derived from the image with
// median cut quantization. The palette actually used is returned, padded to
// exactly PaletteSize colors.
func Convert(m image.Image, p color.Palette, dither bool) (*Image, color.Palette, error) {
	b := m.Bounds()
	if b.Empty() {
		return nil, nil, errors.New("picture: empty image")
	}

	// Scale first so the quantizer only sees the surviving pixels
	scaled := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), m, b, draw.Src, nil)

	if p == nil {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, PaletteSize), scaled)
	}
	p = padPalette(p)

	pm := image.NewPaletted(scaled.Bounds(), p)
	if dither {
		draw.FloydSteinberg.Draw(pm, pm.Bounds(), scaled, image.Point{})
	} else {
		draw.Draw(pm, pm.Bounds(), scaled, image.Point{}, draw.Src)
	}

	out := new(Image)
	copy(out.pix[:], pm.Pix)

	return out, p, nil
}
