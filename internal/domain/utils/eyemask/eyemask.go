// Package eyemask builds selector masks over the three position markers of
// a rendered QR code. The image is expected to carry the usual 4-module
// quiet zone, so marker geometry is expressed in multiples of the box size.
//
// White (255) mask pixels select the styled variant, black (0) keep the base.
package eyemask

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

const (
	quietZone   = 4
	outerSize   = 7
	innerOffset = 6
	innerSize   = 3
)

// Outer covers the 7x7 marker blocks. The blocks start 4 modules in from the
// image edge, which is where the markers sit behind the quiet zone.
func Outer(imageSize, boxSize int) (*image.Alpha, error) {
	if err := check(imageSize, boxSize); err != nil {
		return nil, err
	}
	return build(imageSize, quietZone*boxSize, outerSize*boxSize), nil
}

// Inner covers the concentric 3x3 centres of the markers.
func Inner(imageSize, boxSize int) (*image.Alpha, error) {
	if err := check(imageSize, boxSize); err != nil {
		return nil, err
	}
	return build(imageSize, innerOffset*boxSize, innerSize*boxSize), nil
}

// Regions returns the three marker rectangles (top-left, top-right,
// bottom-left) for the given offset and side, all in pixels.
func Regions(imageSize, offset, side int) [3]image.Rectangle {
	far := imageSize - offset - side
	return [3]image.Rectangle{
		image.Rect(offset, offset, offset+side, offset+side),
		image.Rect(far, offset, far+side, offset+side),
		image.Rect(offset, far, offset+side, far+side),
	}
}

func build(imageSize, offset, side int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, imageSize, imageSize))
	for _, r := range Regions(imageSize, offset, side) {
		draw.Draw(mask, r, image.Opaque, image.Point{}, draw.Src)
	}
	return mask
}

func check(imageSize, boxSize int) error {
	if boxSize <= 0 {
		return fmt.Errorf("box size %d: %w", boxSize, errorz.InvalidParameter)
	}
	if imageSize <= 0 {
		return fmt.Errorf("image size %d: %w", imageSize, errorz.InvalidParameter)
	}
	// Markers of opposite corners must not overlap.
	if imageSize < 2*(quietZone+outerSize)*boxSize {
		return fmt.Errorf("image size %d too small for box size %d: %w", imageSize, boxSize, errorz.InvalidParameter)
	}
	return nil
}
