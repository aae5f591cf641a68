// Package overlay places a secondary icon and caption text on a finished
// QR image. Positions are ratios of the image size.
package overlay

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
	"github.com/Badsnus/fancyqr/internal/domain/entity"
)

// Icon resizes icon to a square of floor(min(w, h) * scale) pixels and pastes
// it centered on pos. Transparent icon pixels leave the base untouched.
func Icon(base, icon image.Image, pos entity.Point, scale float64) (*image.RGBA, error) {
	b := base.Bounds()
	size := int(float64(min(b.Dx(), b.Dy())) * scale)
	if size < 1 {
		return nil, fmt.Errorf("icon scale %v gives %dpx: %w", scale, size, errorz.InvalidParameter)
	}

	resized := resize.Resize(uint(size), uint(size), icon, resize.Lanczos3)

	x := int(float64(b.Dx())*pos.X - float64(size)/2)
	y := int(float64(b.Dy())*pos.Y - float64(size)/2)

	dc := gg.NewContextForImage(base)
	dc.DrawImage(resized, x, y)
	return dc.Image().(*image.RGBA), nil
}

// Caption draws text so that its measured box is centered on c.Position.
func Caption(base image.Image, face font.Face, c entity.Caption) *image.RGBA {
	dc := gg.NewContextForImage(base)
	dc.SetFontFace(face)

	w, h := dc.MeasureString(c.Text)
	tx := int(float64(dc.Width()) * c.Position.X)
	ty := int(float64(dc.Height()) * c.Position.Y)
	x := tx - int(w)/2
	y := ty - int(h)/2

	// DrawString takes the baseline, the box above starts at the ascent line
	ascent := float64(face.Metrics().Ascent) / 64

	dc.SetColor(c.Color.RGBA())
	dc.DrawString(c.Text, float64(x), float64(y)+ascent)
	return dc.Image().(*image.RGBA)
}
