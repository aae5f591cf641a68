// Package scratch manages the per-run working directory for intermediate
// image files.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Dir struct {
	Path string
}

// New creates a fresh uniquely named directory below root
// (os.TempDir when root is empty).
func New(root string) (*Dir, error) {
	if root == "" {
		root = os.TempDir()
	}
	d := &Dir{Path: filepath.Join(root, "fancyqr-"+uuid.New().String())}
	if err := d.ensure(); err != nil {
		return nil, err
	}
	return d, nil
}

// File returns a fresh unique path inside the directory.
func (d *Dir) File(ext string) string {
	return filepath.Join(d.Path, uuid.New().String()+ext)
}

func (d *Dir) ensure() error {
	if _, err := os.Stat(d.Path); os.IsNotExist(err) {
		err = os.MkdirAll(d.Path, os.ModePerm)
		if err != nil {
			return fmt.Errorf("failed to create scratch directory: %v", err)
		}
	}
	return nil
}

// Remove deletes the directory with everything in it.
func (d *Dir) Remove() error {
	if err := os.RemoveAll(d.Path); err != nil {
		return fmt.Errorf("failed to delete scratch directory: %v", err)
	}
	return nil
}
