package imagefile

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
)

// Open reads and decodes an image file. Files that cannot be read report
// AssetNotFound, files that cannot be decoded report InvalidImageFormat.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("open %s: %v: %w", path, pathErr.Err, errorz.AssetNotFound)
		}
		return nil, fmt.Errorf("decode %s: %v: %w", path, err, errorz.InvalidImageFormat)
	}
	return img, nil
}

// Save encodes img in the format named by the path's extension, creating
// missing parent directories.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("output %s: %v: %w", path, err, errorz.InvalidParameter)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
