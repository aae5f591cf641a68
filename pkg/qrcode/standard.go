package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	yqr "github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

// moduleShape plugs our drawers into the standard writer.
type moduleShape struct {
	body, finder drawer
}

func (s *moduleShape) Draw(ctx *standard.DrawContext) {
	s.draw(ctx, s.body)
}

func (s *moduleShape) DrawFinder(ctx *standard.DrawContext) {
	s.draw(ctx, s.finder)
}

// draw is called for light cells too; the background is already painted.
func (s *moduleShape) draw(ctx *standard.DrawContext, d drawer) {
	n := ctx.Neighbours()
	if n&standard.NSelf == 0 {
		return
	}
	x, y := ctx.UpperLeft()
	w, _ := ctx.Edge()
	ctx.SetColor(ctx.Color())
	d(ctx.Context, x, y, float64(w), neighbours{
		top:    n&standard.NTop != 0,
		right:  n&standard.NRight != 0,
		bottom: n&standard.NBot != 0,
		left:   n&standard.NLeft != 0,
	})
}

type bufferCloser struct {
	*bytes.Buffer
}

func (bufferCloser) Close() error { return nil }

func (c *Config) renderStandard(bar, eye drawer) (*image.RGBA, error) {
	if c.Style.BackgroundImage != "" {
		return nil, fmt.Errorf("image fill with engine %q: %w", EngineStandard, errorz.UnsupportedStyle)
	}
	if c.BoxSize > math.MaxUint8 {
		return nil, fmt.Errorf("box size %d above %d for engine %q: %w", c.BoxSize, math.MaxUint8, EngineStandard, errorz.InvalidParameter)
	}

	qrc, err := yqr.NewWith(c.Content, yqr.WithErrorCorrectionLevel(yqr.ErrorCorrectionHighest))
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	buf := bufferCloser{Buffer: new(bytes.Buffer)}
	writer := standard.NewWithWriter(buf,
		standard.WithQRWidth(uint8(c.BoxSize)),
		standard.WithBorderWidth(QuietZone*c.BoxSize),
		standard.WithBgColor(c.Style.Background.RGBA()),
		standard.WithFgColor(c.Style.Foreground.RGBA()),
		standard.WithCustomShape(&moduleShape{body: bar, finder: eye}),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)

	// Save closes the writer.
	if err = qrc.Save(writer); err != nil {
		return nil, fmt.Errorf("write qr: %w", err)
	}

	img, err := imaging.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decode qr: %v: %w", err, errorz.InvalidImageFormat)
	}
	return toRGBA(img), nil
}
