package picture

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.Equal(t, uint8(0), m.ColorIndexAt(x, y))
		}
	}
	assert.True(t, m.Equal(new(Image)))
}

func TestSetPixel(t *testing.T) {
	tables := []struct {
		name    string
		x, y, c int
		err     error
	}{
		{"origin", 0, 0, 15, nil},
		{"corner", 15, 15, 7, nil},
		{"color too big", 3, 3, 16, ErrValidation},
		{"negative color", 3, 3, -1, ErrValidation},
		{"x too big", 16, 0, 1, ErrBounds},
		{"negative y", 0, -1, 1, ErrBounds},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			m := New()
			err := m.SetPixel(table.x, table.y, table.c)
			if table.err != nil {
				assert.ErrorIs(t, err, table.err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.True(t, m.Equal(New()), "failed call mutated the picture")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint8(table.c), m.ColorIndexAt(table.x, table.y))
		})
	}
}

func TestFill(t *testing.T) {
	m := New()
	require.NoError(t, m.Fill(9))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.Equal(t, uint8(9), m.ColorIndexAt(x, y))
		}
	}

	for _, c := range []int{-1, 16} {
		dup := m.Clone()
		assert.ErrorIs(t, m.Fill(c), ErrValidation)
		assert.True(t, m.Equal(dup))
	}
}

func TestEqual(t *testing.T) {
	a, b := New(), New()
	assert.True(t, a.Equal(b))

	require.NoError(t, b.SetPixel(4, 5, 1))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	var n *Image
	assert.True(t, n.Equal(nil))
}

func TestClone(t *testing.T) {
	a := New()
	require.NoError(t, a.SetPixel(1, 1, 3))
	b := a.Clone()
	require.NoError(t, b.SetPixel(1, 1, 4))
	assert.Equal(t, uint8(3), a.ColorIndexAt(1, 1))
}

func TestColorIndexAtOutOfBounds(t *testing.T) {
	m := New()
	require.NoError(t, m.Fill(5))
	assert.Equal(t, uint8(0), m.ColorIndexAt(-1, 0))
	assert.Equal(t, uint8(0), m.ColorIndexAt(0, 16))
}

func TestString(t *testing.T) {
	m := New()
	require.NoError(t, m.SetPixel(0, 0, 15))
	require.NoError(t, m.SetPixel(1, 0, 3))

	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	require.Len(t, lines, Height)
	assert.True(t, strings.HasPrefix(lines[0], "15  3  0"))
	assert.Len(t, lines[1], Width*3-1)
}

func TestRender(t *testing.T) {
	m := New()
	require.NoError(t, m.SetPixel(2, 3, 11))

	rgba, err := m.Render(DefaultPalette)
	require.NoError(t, err)
	assert.Equal(t, m.Bounds(), rgba.Bounds())
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgba.RGBAAt(2, 3))
	assert.Equal(t, color.RGBA{0xe8, 0x00, 0x00, 0xff}, rgba.RGBAAt(0, 0))

	_, err = m.Render(DefaultPalette[:4])
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPaletted(t *testing.T) {
	m := New()
	require.NoError(t, m.SetPixel(15, 0, 6))

	pm := m.Paletted(DefaultPalette)
	assert.Equal(t, uint8(6), pm.ColorIndexAt(15, 0))
	assert.Equal(t, DefaultPalette[6], pm.At(15, 0))
}
