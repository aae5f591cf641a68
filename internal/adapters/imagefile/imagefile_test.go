package imagefile

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

func TestSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	src := imaging.New(6, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	require.NoError(t, Save(src, path))

	img, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
	r, g, b, a := img.At(3, 3).RGBA()
	assert.Equal(t, [4]uint32{1 * 0x101, 2 * 0x101, 3 * 0x101, 0xffff}, [4]uint32{r, g, b, a})
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, errorz.AssetNotFound)
}

func TestOpenGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, errorz.InvalidImageFormat)
}

func TestSaveUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	err := Save(imaging.New(2, 2, color.White), path)
	assert.ErrorIs(t, err, errorz.InvalidParameter)
	assert.NoFileExists(t, path)
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")
	require.NoError(t, Save(image.NewRGBA(image.Rect(0, 0, 2, 2)), path))
	assert.FileExists(t, path)
}
