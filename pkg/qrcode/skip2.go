package qrcode

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
)

func (c *Config) renderSkip2(bar, eye drawer) (*image.RGBA, error) {
	qr, err := qrcode.New(c.Content, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	// Bitmap already includes the quiet zone
	bitmap := qr.Bitmap()
	n := len(bitmap)
	size := n * c.BoxSize

	fill, err := c.fill(size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(c.Style.Background.RGBA())
	dc.Clear()
	dc.SetFillStyle(fill)

	box := float64(c.BoxSize)
	for row := range bitmap {
		for col, dark := range bitmap[row] {
			if !dark {
				continue
			}
			draw := bar
			if isFinder(row, col, n) {
				draw = eye
			}
			draw(dc, float64(col)*box, float64(row)*box, box, neighboursAt(bitmap, row, col))
		}
	}

	return toRGBA(dc.Image()), nil
}
