// Package logo turns an arbitrary picture into a square, corner-rounded
// badge ready to be embedded in a QR code.
package logo

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

// MaxRadiusRatio is the rounding at which a square turns into a circle.
const MaxRadiusRatio = 0.5

// Prepare crops src to its centered square and rounds the corners with a
// radius of floor(side * radiusRatio). Pixels outside the rounded square are
// fully transparent.
func Prepare(src image.Image, radiusRatio float64) (*image.RGBA, error) {
	b := src.Bounds()
	side := min(b.Dx(), b.Dy())
	if side <= 0 {
		return nil, fmt.Errorf("logo of size %v: %w", b.Size(), errorz.InvalidImageFormat)
	}
	left := (b.Dx() - side) / 2
	top := (b.Dy() - side) / 2

	square := imaging.Crop(src, image.Rect(left, top, left+side, top+side).Add(b.Min))

	ratio := math.Max(0, math.Min(radiusRatio, MaxRadiusRatio))
	radius := math.Floor(float64(side) * ratio)

	mask := gg.NewContext(side, side)
	if radius > 0 {
		mask.DrawRoundedRectangle(0, 0, float64(side), float64(side), radius)
	} else {
		mask.DrawRectangle(0, 0, float64(side), float64(side))
	}
	mask.Fill()

	dc := gg.NewContext(side, side)
	if err := dc.SetMask(mask.AsMask()); err != nil {
		return nil, fmt.Errorf("logo mask: %w", err)
	}
	dc.DrawImage(square, 0, 0)

	return dc.Image().(*image.RGBA), nil
}
