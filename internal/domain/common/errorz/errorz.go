package errorz

import "errors"

var (
	InvalidParameter   = errors.New("invalid parameter")
	UnsupportedStyle   = errors.New("unsupported style")
	AssetNotFound      = errors.New("asset not found")
	InvalidImageFormat = errors.New("invalid image format")
	DimensionMismatch  = errors.New("dimension mismatch")
	FontLoadFailure    = errors.New("font load failure")
)
