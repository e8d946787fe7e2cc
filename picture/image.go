package picture

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Image is a profile picture. The zero value is a picture with every pixel
// set to color index 0.
type Image struct {
	pix [NumPixels]uint8
}

// New returns a picture with every pixel set to color index 0
func New() *Image {
	return new(Image)
}

// Bounds returns the picture bounds which are always 16 by 16
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// ColorIndexAt returns the color index of the pixel at (x, y), or 0 if the
// point lies outside the picture.
func (m *Image) ColorIndexAt(x, y int) uint8 {
	if validPoint(x, y) != nil {
		return 0
	}
	return m.pix[y*Width+x]
}

// SetPixel sets the color index of the pixel at (x, y). The picture is left
// untouched if either the point or the color is invalid.
func (m *Image) SetPixel(x, y, c int) error {
	if err := validPoint(x, y); err != nil {
		return err
	}
	if err := validColor(c); err != nil {
		return err
	}
	m.pix[y*Width+x] = uint8(c)
	return nil
}

// Fill sets every pixel to the color index c
func (m *Image) Fill(c int) error {
	if err := validColor(c); err != nil {
		return err
	}
	for i := range m.pix {
		m.pix[i] = uint8(c)
	}
	return nil
}

// Equal reports whether both pictures have identical pixels
func (m *Image) Equal(o *Image) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.pix == o.pix
}

// Clone returns an independent copy of the picture
func (m *Image) Clone() *Image {
	dup := *m
	return &dup
}

// String returns the picture as rows of right-aligned color indices
func (m *Image) String() string {
	var b strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%2d", m.pix[y*Width+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Paletted returns the picture as an *image.Paletted using p. The color
// indices are copied as-is so p should hold at least PaletteSize colors.
func (m *Image) Paletted(p color.Palette) *image.Paletted {
	pm := image.NewPaletted(m.Bounds(), p)
	copy(pm.Pix, m.pix[:])
	return pm
}

// Render maps every pixel through p and returns the resulting true color
// image. p must hold at least PaletteSize colors.
func (m *Image) Render(p color.Palette) (*image.RGBA, error) {
	if len(p) < PaletteSize {
		return nil, fmt.Errorf("%w: palette has %d colors, need %d", ErrValidation, len(p), PaletteSize)
	}
	rgba := image.NewRGBA(m.Bounds())
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			rgba.Set(x, y, p[m.pix[y*Width+x]])
		}
	}
	return rgba, nil
}
