package qrcode

import (
	"github.com/fogleman/gg"

	"github.com/Badsnus/fancyqr/internal/domain/entity"
)

const (
	gapRatio = 0.8 // GappedSquare side
	barRatio = 0.8 // bar thickness
)

// neighbours tells a drawer which adjacent modules are dark.
type neighbours struct {
	top, right, bottom, left bool
}

// drawer paints one dark module whose upper left corner is (x, y).
// The current fill style of dc is used.
type drawer func(dc *gg.Context, x, y, size float64, nb neighbours)

var drawers = map[entity.ModuleShape]drawer{
	entity.Square:         drawSquare,
	entity.GappedSquare:   drawGappedSquare,
	entity.HorizontalBars: drawHorizontalBar,
	entity.VerticalBars:   drawVerticalBar,
	entity.Rounded:        drawRounded,
	entity.Circle:         drawCircle,
}

func drawSquare(dc *gg.Context, x, y, size float64, _ neighbours) {
	dc.DrawRectangle(x, y, size, size)
	dc.Fill()
}

func drawGappedSquare(dc *gg.Context, x, y, size float64, _ neighbours) {
	inset := size * (1 - gapRatio) / 2
	dc.DrawRectangle(x+inset, y+inset, size-2*inset, size-2*inset)
	dc.Fill()
}

func drawCircle(dc *gg.Context, x, y, size float64, _ neighbours) {
	dc.DrawCircle(x+size/2, y+size/2, size/2)
	dc.Fill()
}

// drawRounded rounds a corner only when neither side meeting at it has a
// dark neighbour, so runs of modules merge into blobs.
func drawRounded(dc *gg.Context, x, y, size float64, nb neighbours) {
	h := size / 2
	dc.DrawCircle(x+h, y+h, h)
	dc.Fill()

	corners := []struct {
		x, y   float64
		square bool
	}{
		{x, y, nb.top || nb.left},
		{x + h, y, nb.top || nb.right},
		{x, y + h, nb.bottom || nb.left},
		{x + h, y + h, nb.bottom || nb.right},
	}
	for _, c := range corners {
		if c.square {
			dc.DrawRectangle(c.x, c.y, h, h)
			dc.Fill()
		}
	}
}

func drawHorizontalBar(dc *gg.Context, x, y, size float64, nb neighbours) {
	thick := size * barRatio
	top := y + (size-thick)/2
	r := thick / 2

	left, right := x, x+size
	if !nb.left {
		left += r
		dc.DrawCircle(x+r, top+r, r)
		dc.Fill()
	}
	if !nb.right {
		right -= r
		dc.DrawCircle(x+size-r, top+r, r)
		dc.Fill()
	}
	dc.DrawRectangle(left, top, right-left, thick)
	dc.Fill()
}

func drawVerticalBar(dc *gg.Context, x, y, size float64, nb neighbours) {
	thick := size * barRatio
	left := x + (size-thick)/2
	r := thick / 2

	top, bottom := y, y+size
	if !nb.top {
		top += r
		dc.DrawCircle(left+r, y+r, r)
		dc.Fill()
	}
	if !nb.bottom {
		bottom -= r
		dc.DrawCircle(left+r, y+size-r, r)
		dc.Fill()
	}
	dc.DrawRectangle(left, top, thick, bottom-top)
	dc.Fill()
}

func neighboursAt(bitmap [][]bool, row, col int) neighbours {
	at := func(r, c int) bool {
		return r >= 0 && r < len(bitmap) && c >= 0 && c < len(bitmap[r]) && bitmap[r][c]
	}
	return neighbours{
		top:    at(row-1, col),
		right:  at(row, col+1),
		bottom: at(row+1, col),
		left:   at(row, col-1),
	}
}
