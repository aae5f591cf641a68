package validator

import (
	"math"
	"path/filepath"
	"strings"
)

func BoxSize(boxSize int) bool {
	return boxSize > 0
}

// Ratio reports whether v is a finite value in [0, 1].
func Ratio(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func FontSize(size int) bool {
	return size > 0
}

var outputFormats = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// OutputPath checks that the file extension names a raster format we can encode.
func OutputPath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	return outputFormats[strings.ToLower(filepath.Ext(path))]
}
