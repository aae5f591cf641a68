package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

const (
	PresetPlain    = "plain"
	PresetShowcase = "showcase"
)

var presets = map[string]func(o *Options){
	PresetPlain: func(*Options) {},
	// Light rounded modules on near-black with warm marker colors and a
	// light caption.
	PresetShowcase: func(o *Options) {
		outer := RGB{R: 210, G: 186, B: 132}
		inner := RGB{R: 255, G: 226, B: 160}

		o.Style = StyleConfig{
			Shape:      Rounded,
			Foreground: White,
			Background: RGB{R: 1, G: 1, B: 1},
		}
		o.OuterEye = EyeStyle{Color: &outer, Shape: Rounded}
		o.InnerEye = EyeStyle{Color: &inner, Shape: Rounded}
		o.Caption.Color = White
		o.Caption.Size = DefaultCaptionSize
		o.RadiusRatio = 0.1
		o.BoxSize = 30
	},
}

// Presets lists the available preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns NewOptions with the named style applied on top.
// An empty name is the plain preset.
func Preset(name, data, outfile string) (Options, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = PresetPlain
	}
	apply, ok := presets[key]
	if !ok {
		return Options{}, fmt.Errorf("preset %q: %w", name, errorz.UnsupportedStyle)
	}
	o := NewOptions(data, outfile)
	apply(&o)
	return o, nil
}
