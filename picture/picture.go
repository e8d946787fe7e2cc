/*
Package picture implements the profile picture format.

A profile picture is 16 by 16 pixels exactly, each pixel being a 4-bit index
into a 16 color palette. The palette is not part of the picture, it is only
needed when rendering.

The canonical form is 128 bytes of pixel information, two pixels per byte. The
pixels are written row by row, left to right, with the first pixel of each
pair in the upper nibble. Every other representation is a re-encoding of those
128 bytes: standard base64 text, which is always 172 characters long, and an
unsigned big-endian integer of up to 1024 bits.
*/
package picture

const (
	// Width is the width of a picture in pixels
	Width = 16
	// Height is the height of a picture in pixels
	Height = 16
	// PaletteSize is the number of colors a pixel can reference
	PaletteSize = 16
	// NumPixels is the total number of pixels in a picture
	NumPixels = Width * Height
	// Size is the length in bytes of the binary form
	Size = NumPixels >> 1
	// EncodedLen is the length of the base64 form
	EncodedLen = (Size + 2) / 3 * 4
	// Bits is the width in bits of the integer form
	Bits = Size * 8
)
