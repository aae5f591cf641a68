package entity

import (
	"fmt"
	"strings"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

type ModuleShape string

const (
	Square         ModuleShape = "Square"
	GappedSquare   ModuleShape = "GappedSquare"
	HorizontalBars ModuleShape = "HorizontalBars"
	VerticalBars   ModuleShape = "VerticalBars"
	Rounded        ModuleShape = "Rounded"
	Circle         ModuleShape = "Circle"
)

var ModuleShapes = []ModuleShape{Square, GappedSquare, HorizontalBars, VerticalBars, Rounded, Circle}

// ParseModuleShape matches a shape name case-insensitively.
func ParseModuleShape(name string) (ModuleShape, error) {
	for _, s := range ModuleShapes {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("module shape %q: %w", name, errorz.UnsupportedStyle)
}

// StyleConfig is everything the QR renderer needs for one variant.
// BackgroundImage, when set, replaces Foreground as the fill of dark modules.
type StyleConfig struct {
	Shape           ModuleShape
	EyeShape        ModuleShape // finder modules; empty means Shape
	Foreground      RGB
	Background      RGB
	Logo            string
	BackgroundImage string
}

// EyeStyle overrides color and/or shape of one part of the position markers.
type EyeStyle struct {
	Color *RGB
	Shape ModuleShape
}

func (e EyeStyle) IsSet() bool {
	return e.Color != nil || e.Shape != ""
}

// Apply derives the variant style for an eye pass from the base style.
// A color override switches the fill to solid; the embedded logo is dropped
// because the eye masks never reach the centre of the code.
func (e EyeStyle) Apply(base StyleConfig) StyleConfig {
	v := base
	v.Logo = ""
	if e.Color != nil {
		v.Foreground = *e.Color
		v.BackgroundImage = ""
	}
	v.EyeShape = base.Shape
	if e.Shape != "" {
		v.EyeShape = e.Shape
	}
	return v
}

type Point struct {
	X, Y float64
}

type Overlay struct {
	Icon     string
	Position Point
	Scale    float64
}

type Caption struct {
	Text     string
	Color    RGB
	Size     int
	Font     string
	Position Point
}

// Options is the full input of one generate run.
type Options struct {
	Data        string
	Outfile     string
	Logo        string
	Style       StyleConfig
	OuterEye    EyeStyle
	InnerEye    EyeStyle
	Overlay     Overlay
	Caption     Caption
	BoxSize     int
	RadiusRatio float64
	Engine      string
}

var (
	DefaultOverlayPosition = Point{X: 0.5, Y: 0.65}
	DefaultCaptionPosition = Point{X: 0.5, Y: 0.95}
)

const (
	DefaultBoxSize      = 10
	DefaultRadiusRatio  = 0.5
	DefaultOverlayScale = 0.12
	DefaultCaptionSize  = 42
)

// NewOptions returns options with the defaults of a plain black-on-white code.
func NewOptions(data, outfile string) Options {
	return Options{
		Data:    data,
		Outfile: outfile,
		Style: StyleConfig{
			Shape:      Square,
			Foreground: Black,
			Background: White,
		},
		Overlay: Overlay{
			Position: DefaultOverlayPosition,
			Scale:    DefaultOverlayScale,
		},
		Caption: Caption{
			Color:    Black,
			Size:     DefaultCaptionSize,
			Position: DefaultCaptionPosition,
		},
		BoxSize:     DefaultBoxSize,
		RadiusRatio: DefaultRadiusRatio,
	}
}
