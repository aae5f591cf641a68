// Package composite merges two renderings of the same code through a mask.
package composite

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

// Apply returns a new image that takes styled where mask is non-zero and base
// where it is 0. Selected pixels are replaced, not blended. Inputs are never
// modified.
func Apply(base, styled image.Image, mask *image.Alpha) (*image.RGBA, error) {
	bb, sb, mb := base.Bounds(), styled.Bounds(), mask.Bounds()
	if bb.Size() != sb.Size() || bb.Size() != mb.Size() {
		return nil, fmt.Errorf("base %v, styled %v, mask %v: %w", bb.Size(), sb.Size(), mb.Size(), errorz.DimensionMismatch)
	}

	out := Clone(base)
	src := Clone(styled)
	w, h := mb.Dx(), mb.Dy()
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range row {
			if a == 0 {
				continue
			}
			i := out.PixOffset(x, y)
			copy(out.Pix[i:i+4], src.Pix[i:i+4])
		}
	}
	return out, nil
}

// Clone copies img into a fresh RGBA buffer anchored at the origin.
func Clone(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
