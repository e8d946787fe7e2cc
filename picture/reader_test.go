package picture

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	m := randomImage(t, rand.New(rand.NewSource(4)))

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, Size, b.Len())
	assert.Equal(t, m.Bytes(), b.Bytes())

	out, err := Decode(b)
	require.NoError(t, err)
	assert.True(t, m.Equal(out))
}

func TestDecodeLength(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size-1)))
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Decode(bytes.NewReader(make([]byte, Size+1)))
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, errTooMuch, err)
}

func TestEncodeNil(t *testing.T) {
	assert.Error(t, Encode(new(bytes.Buffer), nil))
}

func TestConvertWithPalette(t *testing.T) {
	// 32x32 source, left half white, right half red
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if x < 16 {
				src.Set(x, y, color.White)
			} else {
				src.Set(x, y, color.RGBA{0xe8, 0x00, 0x00, 0xff})
			}
		}
	}

	m, p, err := Convert(src, DefaultPalette, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette, p)
	for y := 0; y < Height; y++ {
		assert.Equal(t, uint8(11), m.ColorIndexAt(0, y))
		assert.Equal(t, uint8(11), m.ColorIndexAt(7, y))
		assert.Equal(t, uint8(0), m.ColorIndexAt(8, y))
		assert.Equal(t, uint8(0), m.ColorIndexAt(15, y))
	}
}

func TestConvertQuantize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 0x80, 0xff})
		}
	}

	m, p, err := Convert(src, nil, true)
	require.NoError(t, err)
	require.Len(t, p, PaletteSize)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.Less(t, int(m.ColorIndexAt(x, y)), PaletteSize)
		}
	}
}

func TestConvertEmpty(t *testing.T) {
	_, _, err := Convert(image.NewRGBA(image.Rectangle{}), DefaultPalette, false)
	assert.Error(t, err)
}

func TestPadPalette(t *testing.T) {
	in := color.Palette{color.White}
	p := padPalette(in)
	assert.Len(t, p, PaletteSize)
	assert.Len(t, in, 1)
	assert.Equal(t, color.White, p[0])

	assert.Len(t, padPalette(append(DefaultPalette, color.Black)), PaletteSize)
}
