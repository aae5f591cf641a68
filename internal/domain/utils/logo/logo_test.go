package logo

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

func prepare(t *testing.T, src image.Image, ratio float64) *image.RGBA {
	t.Helper()
	out, err := Prepare(src, ratio)
	require.NoError(t, err)
	return out
}

func stripes(w, h int) *image.NRGBA {
	img := imaging.New(w, h, color.NRGBA{R: 255, A: 255})
	third := w / 3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case x < third:
				img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
			case x >= w-third:
				img.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
			}
		}
	}
	return img
}

func TestPrepareCropsCenteredSquare(t *testing.T) {
	out := prepare(t, stripes(30, 10), 0)

	assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())
	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}, {5, 5}} {
		assert.Equal(t, color.RGBA{R: 255, A: 255}, out.RGBAAt(p.X, p.Y), "pixel %v", p)
	}
}

func TestPrepareTallImage(t *testing.T) {
	src := imaging.New(12, 20, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out := prepare(t, src, 0)
	assert.Equal(t, image.Rect(0, 0, 12, 12), out.Bounds())
}

func TestPrepareSquareCornersStayOpaque(t *testing.T) {
	out := prepare(t, imaging.New(40, 40, color.NRGBA{R: 200, A: 255}), 0)

	for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 39}, {39, 39}} {
		assert.Equal(t, uint8(255), out.RGBAAt(p.X, p.Y).A, "corner %v", p)
	}
}

func TestPrepareMaximalRoundingClearsCorners(t *testing.T) {
	for _, ratio := range []float64{MaxRadiusRatio, 0.9} {
		out := prepare(t, imaging.New(40, 40, color.NRGBA{R: 200, A: 255}), ratio)

		for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 39}, {39, 39}} {
			assert.Equal(t, uint8(0), out.RGBAAt(p.X, p.Y).A, "ratio %v corner %v", ratio, p)
		}
		assert.Equal(t, uint8(255), out.RGBAAt(20, 20).A)
	}
}

func TestPrepareDoesNotTouchSource(t *testing.T) {
	src := imaging.New(16, 16, color.NRGBA{G: 90, A: 255})
	prepare(t, src, 0.5)
	assert.Equal(t, color.NRGBA{G: 90, A: 255}, src.NRGBAAt(0, 0))
}

func TestPrepareEmptySource(t *testing.T) {
	_, err := Prepare(image.NewNRGBA(image.Rect(0, 0, 0, 5)), 0.2)
	assert.ErrorIs(t, err, errorz.InvalidImageFormat)
}
