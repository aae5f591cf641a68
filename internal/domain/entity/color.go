package entity

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{}
	White = RGB{R: 255, G: 255, B: 255}
)

// RGBA returns the fully opaque color.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseRGB accepts "r,g,b" triples and "#rrggbb" hex strings.
func ParseRGB(s string) (RGB, error) {
	v := strings.TrimSpace(s)
	if strings.HasPrefix(v, "#") {
		hex := strings.TrimPrefix(v, "#")
		if len(hex) != 6 {
			return RGB{}, fmt.Errorf("color %q: %w", s, errorz.InvalidParameter)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: %w", s, errorz.InvalidParameter)
		}
		return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
	}

	v = strings.Trim(v, "()[]")
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("color %q: %w", s, errorz.InvalidParameter)
	}
	var out [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: %w", s, errorz.InvalidParameter)
		}
		out[i] = uint8(n)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}
