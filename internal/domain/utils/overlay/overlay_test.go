package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
	"github.com/Badsnus/fancyqr/internal/domain/entity"
)

func isRed(c color.RGBA) bool {
	return c.R > 245 && c.G < 10 && c.B < 10 && c.A > 245
}

func isWhite(c color.RGBA) bool {
	return c == color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func TestIconCentered(t *testing.T) {
	base := imaging.New(100, 100, color.White)
	icon := imaging.New(10, 10, color.NRGBA{R: 255, A: 255})

	out, err := Icon(base, icon, entity.Point{X: 0.5, Y: 0.5}, 0.2)
	require.NoError(t, err)

	// 20px icon centered on (50, 50)
	assert.True(t, isRed(out.RGBAAt(40, 40)))
	assert.True(t, isRed(out.RGBAAt(59, 59)))
	assert.True(t, isWhite(out.RGBAAt(39, 39)))
	assert.True(t, isWhite(out.RGBAAt(60, 60)))

	// the box is symmetric around the centre
	minX, maxX := 100, -1
	for x := 0; x < 100; x++ {
		if isRed(out.RGBAAt(x, 50)) {
			minX = min(minX, x)
			maxX = max(maxX, x)
		}
	}
	assert.InDelta(t, 50-minX, maxX+1-50, 1)

	// base untouched
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, base.NRGBAAt(50, 50))
}

func TestIconProportionalPosition(t *testing.T) {
	base := imaging.New(200, 100, color.White)
	icon := imaging.New(8, 8, color.NRGBA{R: 255, A: 255})

	out, err := Icon(base, icon, entity.Point{X: 0.5, Y: 0.65}, 0.12)
	require.NoError(t, err)

	// size = int(100 * 0.12) = 12, top-left = (100-6, 65-6)
	assert.True(t, isRed(out.RGBAAt(94, 59)))
	assert.True(t, isRed(out.RGBAAt(105, 70)))
	assert.True(t, isWhite(out.RGBAAt(93, 59)))
	assert.True(t, isWhite(out.RGBAAt(106, 71)))
}

func TestIconTransparentPixelsKeepBase(t *testing.T) {
	base := imaging.New(50, 50, color.NRGBA{B: 255, A: 255})
	icon := imaging.New(10, 10, color.NRGBA{})

	out, err := Icon(base, icon, entity.Point{X: 0.5, Y: 0.5}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, out.RGBAAt(25, 25))
}

func TestIconZeroScale(t *testing.T) {
	_, err := Icon(imaging.New(50, 50, color.White), imaging.New(4, 4, color.White), entity.Point{X: 0.5, Y: 0.5}, 0)
	assert.ErrorIs(t, err, errorz.InvalidParameter)
}

func TestCaptionDrawsAroundTarget(t *testing.T) {
	base := imaging.New(300, 200, color.White)
	c := entity.Caption{
		Text:     "github.com",
		Color:    entity.Black,
		Position: entity.Point{X: 0.5, Y: 0.5},
	}

	out := Caption(base, basicfont.Face7x13, c)

	bounds := image.Rectangle{Min: image.Pt(300, 200)}
	for y := 0; y < 200; y++ {
		for x := 0; x < 300; x++ {
			if !isWhite(out.RGBAAt(x, y)) {
				bounds.Min.X = min(bounds.Min.X, x)
				bounds.Min.Y = min(bounds.Min.Y, y)
				bounds.Max.X = max(bounds.Max.X, x+1)
				bounds.Max.Y = max(bounds.Max.Y, y+1)
			}
		}
	}
	require.False(t, bounds.Empty(), "caption drew nothing")

	center := image.Pt((bounds.Min.X+bounds.Max.X)/2, (bounds.Min.Y+bounds.Max.Y)/2)
	assert.InDelta(t, 150, center.X, 4)
	assert.InDelta(t, 100, center.Y, 8)

	// base untouched
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, base.NRGBAAt(150, 100))
}
