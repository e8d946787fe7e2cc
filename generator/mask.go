package generator

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF masks
	_ "image/jpeg" // register JPEG masks
	_ "image/png"  // register PNG masks
	"os"
	"path/filepath"
	"sort"

	"github.com/bodgit/profileimage/picture"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// Pixels more transparent than this are treated as black
	alphaThreshold = 0x80
	// Grey values above this are stamped
	greyThreshold = 0x80
)

// LoadMask decodes the mask image held in file
func LoadMask(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding mask %s: %v", picture.ErrFormat, file, err)
	}
	return m, nil
}

// greyscale flattens m to a single channel. Any pixel that is more than half
// transparent becomes black, so an alpha mask behaves like a luminance mask.
func greyscale(m image.Image) *image.Gray {
	b := m.Bounds()
	grey := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if c.A < alphaThreshold {
				continue
			}
			// ITU-R 601-2 luma in 16.16 fixed point
			l := (19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16
			grey.Pix[(y-b.Min.Y)*grey.Stride+(x-b.Min.X)] = uint8(l)
		}
	}
	return grey
}

// Stencil reduces m to a 16 by 16 grid where true marks the pixels that
// should receive the mask color.
func Stencil(m image.Image) (s [picture.Height][picture.Width]bool) {
	small := image.NewGray(image.Rect(0, 0, picture.Width, picture.Height))
	if m.Bounds().Empty() {
		return
	}
	// Nearest-neighbour keeps the hard edges of the pixel art
	draw.NearestNeighbor.Scale(small, small.Bounds(), greyscale(m), image.Rect(0, 0, m.Bounds().Dx(), m.Bounds().Dy()), draw.Src, nil)

	for y := 0; y < picture.Height; y++ {
		for x := 0; x < picture.Width; x++ {
			s[y][x] = small.GrayAt(x, y).Y > greyThreshold
		}
	}
	return
}

// ApplyMask stamps color c onto img wherever the mask m is brighter than mid
// grey. Other pixels are left as they are.
func ApplyMask(img *picture.Image, m image.Image, c int) error {
	if c < 0 || c >= picture.PaletteSize {
		return fmt.Errorf("%w: mask color %d", picture.ErrValidation, c)
	}
	s := Stencil(m)
	for y := range s {
		for x, on := range s[y] {
			if !on {
				continue
			}
			if err := img.SetPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// listMasks returns the candidate mask files in dir, sorted by name. Hidden
// files and anything that isn't a regular file are ignored.
func listMasks(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	infos, err := d.Readdir(0)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, info := range infos {
		// Ignore any hidden files, otherwise we end up fighting with things like Spotlight, etc.
		if info.Name()[0] == '.' || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, info.Name()))
	}
	sort.Strings(files)

	return files, nil
}
