// Package qrcode renders full QR images for one style variant. The symbol
// always uses the highest error-correction level so that large parts of it
// can be restyled and still scan, and always keeps a 4-module quiet zone:
// a variant is square with side (modules + 8) * BoxSize.
package qrcode

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/Badsnus/fancyqr/internal/adapters/imagefile"
	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
	"github.com/Badsnus/fancyqr/internal/domain/entity"
)

const (
	EngineSkip2    = "skip2"
	EngineStandard = "standard"
)

const (
	QuietZone = 4   // modules of light border on every side
	LogoScale = 0.25 // embedded logo side relative to the image side, before snapping
)

type Config struct {
	Content string
	BoxSize int // pixels per module
	Style   entity.StyleConfig
	Engine  string // EngineSkip2 when empty
}

// Render draws the variant described by c. Nothing is shared between calls.
func (c *Config) Render() (*image.RGBA, error) {
	if c.BoxSize <= 0 {
		return nil, fmt.Errorf("box size %d: %w", c.BoxSize, errorz.InvalidParameter)
	}
	bar, eye, err := c.drawers()
	if err != nil {
		return nil, err
	}

	var img *image.RGBA
	switch c.Engine {
	case "", EngineSkip2:
		img, err = c.renderSkip2(bar, eye)
	case EngineStandard:
		img, err = c.renderStandard(bar, eye)
	default:
		return nil, fmt.Errorf("engine %q: %w", c.Engine, errorz.UnsupportedStyle)
	}
	if err != nil {
		return nil, err
	}

	if c.Style.Logo != "" {
		if err = embedLogo(img, c.Style.Logo, c.BoxSize); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func (c *Config) drawers() (bar, eye drawer, err error) {
	bar, ok := drawers[c.Style.Shape]
	if !ok {
		return nil, nil, fmt.Errorf("module shape %q: %w", c.Style.Shape, errorz.UnsupportedStyle)
	}
	if c.Style.EyeShape == "" {
		return bar, bar, nil
	}
	eye, ok = drawers[c.Style.EyeShape]
	if !ok {
		return nil, nil, fmt.Errorf("eye shape %q: %w", c.Style.EyeShape, errorz.UnsupportedStyle)
	}
	return bar, eye, nil
}

// fill returns the pattern used for dark modules: the foreground color, or
// the background-fill image stretched over the whole code.
func (c *Config) fill(size int) (gg.Pattern, error) {
	if c.Style.BackgroundImage == "" {
		return gg.NewSolidPattern(c.Style.Foreground.RGBA()), nil
	}
	src, err := imagefile.Open(c.Style.BackgroundImage)
	if err != nil {
		return nil, err
	}
	resized := resize.Resize(uint(size), uint(size), src, resize.Lanczos3)
	return gg.NewSurfacePattern(resized, gg.RepeatBoth), nil
}

// embedLogo pastes the logo, keeping its alpha, at the centre of img. The
// logo starts on a module boundary and is as large as LogoScale allows.
func embedLogo(img *image.RGBA, path string, box int) error {
	logo, err := imagefile.Open(path)
	if err != nil {
		return err
	}

	size := img.Bounds().Dx()
	offset, side := logoPlacement(size, box)
	if side < 1 {
		return nil
	}
	resized := resize.Resize(uint(side), uint(side), logo, resize.Lanczos3)

	dc := gg.NewContextForRGBA(img)
	dc.DrawImage(resized, offset, offset)
	return nil
}

// logoPlacement returns the logo's top-left offset, a multiple of box, and
// its side, symmetric around the image centre.
func logoPlacement(size, box int) (offset, side int) {
	approx := int(float64(size) * LogoScale)
	offset = (size/2 - approx/2) / box * box
	return offset, size - 2*offset
}

// isFinder reports whether bitmap cell (row, col) of an n-cell bitmap with
// quiet zone belongs to one of the three 7x7 position markers.
func isFinder(row, col, n int) bool {
	m := n - 2*QuietZone
	r, c := row-QuietZone, col-QuietZone
	if r < 0 || c < 0 || r >= m || c >= m {
		return false
	}
	return (r < 7 && c < 7) || (r < 7 && c >= m-7) || (r >= m-7 && c < 7)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
