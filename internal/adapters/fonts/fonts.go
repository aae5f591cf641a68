package fonts

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
	"github.com/Badsnus/fancyqr/pkg/logger/types"
)

// DefaultName selects the built-in face without a lookup.
const DefaultName = "default"

// Locator resolves a font family name to a font file.
type Locator interface {
	Lookup(name string) (string, bool)
}

// Directory is a Locator backed by an index of font files found on disk.
type Directory struct {
	index map[string]string
}

// SystemDirs returns the usual font directories of the current OS.
func SystemDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts", filepath.Join(home, "Library", "Fonts")}
	default:
		return []string{"/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts")}
	}
}

// Scan indexes every .ttf and .otf file below dirs. Missing or unreadable
// directories are skipped. The first file wins when two share a name.
func Scan(dirs ...string) *Directory {
	d := &Directory{index: make(map[string]string)}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf":
			default:
				return nil
			}
			key := normalize(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
			if _, ok := d.index[key]; !ok {
				d.index[key] = path
			}
			return nil
		})
	}
	return d
}

func (d *Directory) Lookup(name string) (string, bool) {
	p, ok := d.index[normalize(name)]
	return p, ok
}

func (d *Directory) Len() int {
	return len(d.index)
}

func normalize(name string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

// Loader turns a font name or path into a face, falling back to the
// built-in Go Regular face when the requested font cannot be used.
type Loader struct {
	locator Locator
	log     *types.Logger
}

// NewLoader builds a loader; a nil log discards fallback warnings.
func NewLoader(locator Locator, log *types.Logger) *Loader {
	if log == nil {
		log = types.Nop()
	}
	return &Loader{
		locator: locator,
		log:     log,
	}
}

// Face returns a face of size pixels. Only a non-positive size is an error;
// load failures are logged and answered with the default face.
func (l *Loader) Face(name string, size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %d: %w", size, errorz.InvalidParameter)
	}

	if name == "" || strings.EqualFold(name, DefaultName) {
		l.log.Debugf("Using default font at %dpx", size)
		return Default(size)
	}

	face, err := l.load(name, size)
	if err != nil {
		l.log.Warnf("Loading default font: %v", err)
		return Default(size)
	}
	return face, nil
}

func (l *Loader) load(name string, size int) (font.Face, error) {
	path := name
	if _, err := os.Stat(path); err != nil {
		found := false
		if l.locator != nil {
			path, found = l.locator.Lookup(name)
		}
		if !found {
			return nil, fmt.Errorf("font %q not found: %w", name, errorz.FontLoadFailure)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, errorz.FontLoadFailure)
	}
	return newFace(data, size, path)
}

// Default returns the built-in Go Regular face.
func Default(size int) (font.Face, error) {
	return newFace(goregular.TTF, size, "goregular")
}

func newFace(data []byte, size int, name string) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %v: %w", name, err, errorz.FontLoadFailure)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s: %v: %w", name, err, errorz.FontLoadFailure)
	}
	return face, nil
}
