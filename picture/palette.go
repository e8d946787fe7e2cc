package picture

import "image/color"

// DefaultPalette is the palette profile pictures are normally rendered with
var DefaultPalette = color.Palette{
	color.RGBA{0xe8, 0x00, 0x00, 0xff}, // red
	color.RGBA{0xe7, 0x97, 0x00, 0xff}, // orange
	color.RGBA{0xe6, 0xdb, 0x00, 0xff}, // yellow
	color.RGBA{0x92, 0xe2, 0x33, 0xff}, // light green
	color.RGBA{0x00, 0xc0, 0x00, 0xff}, // green
	color.RGBA{0x01, 0xe5, 0xf2, 0xff}, // cyan
	color.RGBA{0x00, 0x82, 0xca, 0xff}, // mid blue
	color.RGBA{0x06, 0x00, 0xee, 0xff}, // blue
	color.RGBA{0xff, 0xa6, 0xd1, 0xff}, // light pink
	color.RGBA{0xe2, 0x3e, 0xff, 0xff}, // pink
	color.RGBA{0x82, 0x02, 0x81, 0xff}, // purple
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // white
	color.RGBA{0xe4, 0xe4, 0xe4, 0xff}, // light grey
	color.RGBA{0x88, 0x87, 0x89, 0xff}, // grey
	color.RGBA{0x22, 0x22, 0x22, 0xff}, // dark grey
	color.RGBA{0xa1, 0x6a, 0x3f, 0xff}, // brown
}

// Pad or truncate palette to exactly PaletteSize colors
func padPalette(p color.Palette) color.Palette {
	p = append(p[:0:0], p...)
	if len(p) > PaletteSize {
		return p[:PaletteSize]
	}
	for len(p) < PaletteSize {
		p = append(p, color.RGBA{0, 0, 0, 0xff})
	}
	return p
}
