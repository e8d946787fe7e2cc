package profileimage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/profileimage/generator"
	"github.com/bodgit/profileimage/picture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMask(t *testing.T, file string, c color.Color) string {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.Set(x, y, c)
		}
	}
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
	return file
}

func newProfileImage(t *testing.T) *ProfileImage {
	t.Helper()
	dir := t.TempDir()
	border := writeMask(t, filepath.Join(dir, "border.png"), color.White)
	icon := writeMask(t, filepath.Join(dir, "icon.png"), color.Black)

	gen, err := generator.New(generator.DefaultConfig(), generator.WithMasks([]string{border}, []string{icon}))
	require.NoError(t, err)

	return New(gen, log.New(ioutil.Discard, "", 0))
}

func TestWritePNG(t *testing.T) {
	img := picture.New()
	require.NoError(t, img.SetPixel(1, 0, 11))

	b := new(bytes.Buffer)
	require.NoError(t, WritePNG(b, img, picture.DefaultPalette, 4))

	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), m.Bounds())

	r, g, bl, _ := m.At(4, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, bl})
	r, g, bl, _ = m.At(3, 3).RGBA()
	assert.Equal(t, [3]uint32{0xe8e8, 0, 0}, [3]uint32{r, g, bl})
}

func TestWritePNGInvalid(t *testing.T) {
	assert.Error(t, WritePNG(ioutil.Discard, picture.New(), picture.DefaultPalette, 0))
	assert.ErrorIs(t, WritePNG(ioutil.Discard, picture.New(), picture.DefaultPalette[:2], 1), picture.ErrValidation)
}

func TestGenerate(t *testing.T) {
	p := newProfileImage(t)

	img, err := p.Generate()
	require.NoError(t, err)

	// Border covers everything, icon nothing
	c := img.ColorIndexAt(0, 0)
	assert.Contains(t, generator.DefaultConfig().Midground, int(c))
	full := picture.New()
	require.NoError(t, full.Fill(int(c)))
	assert.True(t, full.Equal(img))
}

func TestBatch(t *testing.T) {
	p := newProfileImage(t)
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, p.Batch(dir, 20, 4, picture.DefaultPalette, 1))

	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	// Only six distinct pictures are possible
	assert.NotEmpty(t, files)
	assert.LessOrEqual(t, len(files), len(generator.DefaultConfig().Midground))

	for _, fi := range files {
		f, err := os.Open(filepath.Join(dir, fi.Name()))
		require.NoError(t, err)
		m, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, picture.Width, picture.Height), m.Bounds())
	}
}

func TestBatchError(t *testing.T) {
	p := newProfileImage(t)

	assert.Error(t, p.Batch(t.TempDir(), 5, 2, picture.DefaultPalette, 0))
	assert.Error(t, p.Batch(t.TempDir(), -1, 2, picture.DefaultPalette, 1))
}
