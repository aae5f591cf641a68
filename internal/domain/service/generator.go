package service

import (
	"context"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"

	"github.com/Badsnus/fancyqr/internal/adapters/imagefile"
	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
	"github.com/Badsnus/fancyqr/internal/domain/entity"
	"github.com/Badsnus/fancyqr/internal/domain/utils/composite"
	"github.com/Badsnus/fancyqr/internal/domain/utils/eyemask"
	"github.com/Badsnus/fancyqr/internal/domain/utils/logo"
	"github.com/Badsnus/fancyqr/internal/domain/utils/overlay"
	"github.com/Badsnus/fancyqr/internal/domain/utils/validator"
	"github.com/Badsnus/fancyqr/pkg/logger/types"
	qr "github.com/Badsnus/fancyqr/pkg/qrcode"
	"github.com/Badsnus/fancyqr/pkg/scratch"
)

type fontLoader interface {
	Face(name string, size int) (font.Face, error)
}

type GeneratorService struct {
	fonts       fontLoader
	scratchRoot string
	logger      *types.Logger
}

func NewGeneratorService(fonts fontLoader, logger *types.Logger, scratchRoot string) *GeneratorService {
	if logger == nil {
		logger = types.Nop()
	}
	return &GeneratorService{
		fonts:       fonts,
		scratchRoot: scratchRoot,
		logger:      logger,
	}
}

// eyePass recolors or reshapes one part of the position markers.
type eyePass struct {
	name  string
	style entity.StyleConfig
	mask  func(imageSize, boxSize int) (*image.Alpha, error)
}

// plan is the validated, fully resolved form of entity.Options.
type plan struct {
	opts   entity.Options
	base   entity.StyleConfig
	passes []eyePass
}

// Generate renders the styled QR code described by opts and writes it to
// opts.Outfile. Nothing is written when any stage fails.
func (s *GeneratorService) Generate(ctx context.Context, opts entity.Options) error {
	p, err := newPlan(opts)
	if err != nil {
		return err
	}

	dir, err := scratch.New(s.scratchRoot)
	if err != nil {
		return err
	}
	defer func() {
		if errRemove := dir.Remove(); errRemove != nil {
			s.logger.Errorf("Failed to clean up %s: %v", dir.Path, errRemove)
		}
	}()

	img, err := s.compose(ctx, p, dir)
	if err != nil {
		return err
	}

	if err = imagefile.Save(img, opts.Outfile); err != nil {
		return err
	}
	s.logger.Infof("QR code saved to %s (%dx%d)", opts.Outfile, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func (s *GeneratorService) compose(ctx context.Context, p *plan, dir *scratch.Dir) (*image.RGBA, error) {
	opts := p.opts

	base := p.base
	if opts.Logo != "" {
		src, err := imagefile.Open(opts.Logo)
		if err != nil {
			return nil, fmt.Errorf("logo: %w", err)
		}
		prepared, err := logo.Prepare(src, opts.RadiusRatio)
		if err != nil {
			return nil, err
		}
		base.Logo = dir.File(".png")
		if err = imagefile.Save(prepared, base.Logo); err != nil {
			return nil, err
		}
		s.logger.Debugf("Logo prepared at %s", base.Logo)
	}

	img, err := render(opts, base)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("Base rendered, %dpx", img.Bounds().Dx())

	for _, pass := range p.passes {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		variant, err := render(opts, pass.style)
		if err != nil {
			return nil, fmt.Errorf("%s eye: %w", pass.name, err)
		}
		mask, err := pass.mask(img.Bounds().Dx(), opts.BoxSize)
		if err != nil {
			return nil, fmt.Errorf("%s eye: %w", pass.name, err)
		}
		if img, err = composite.Apply(img, variant, mask); err != nil {
			return nil, fmt.Errorf("%s eye: %w", pass.name, err)
		}
		s.logger.Debugf("%s eye applied", pass.name)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Overlay.Icon != "" {
		icon, err := imagefile.Open(opts.Overlay.Icon)
		if err != nil {
			return nil, fmt.Errorf("overlay icon: %w", err)
		}
		if img, err = overlay.Icon(img, icon, opts.Overlay.Position, opts.Overlay.Scale); err != nil {
			return nil, err
		}
	}

	if opts.Caption.Text != "" {
		face, err := s.fonts.Face(opts.Caption.Font, opts.Caption.Size)
		if err != nil {
			return nil, err
		}
		img = overlay.Caption(img, face, opts.Caption)
	}

	return img, nil
}

func render(opts entity.Options, style entity.StyleConfig) (*image.RGBA, error) {
	cfg := qr.Config{
		Content: opts.Data,
		BoxSize: opts.BoxSize,
		Style:   style,
		Engine:  opts.Engine,
	}
	return cfg.Render()
}

// newPlan checks every parameter and resolves the eye fallbacks up front so
// that no stage has to look at unset fields later.
func newPlan(opts entity.Options) (*plan, error) {
	if opts.Data == "" {
		return nil, fmt.Errorf("empty payload: %w", errorz.InvalidParameter)
	}
	if !validator.OutputPath(opts.Outfile) {
		return nil, fmt.Errorf("output path %q: %w", opts.Outfile, errorz.InvalidParameter)
	}
	if !validator.BoxSize(opts.BoxSize) {
		return nil, fmt.Errorf("box size %d: %w", opts.BoxSize, errorz.InvalidParameter)
	}
	if !validator.Ratio(opts.RadiusRatio) {
		return nil, fmt.Errorf("radius ratio %v: %w", opts.RadiusRatio, errorz.InvalidParameter)
	}
	switch opts.Engine {
	case "", qr.EngineSkip2, qr.EngineStandard:
	default:
		return nil, fmt.Errorf("engine %q: %w", opts.Engine, errorz.UnsupportedStyle)
	}

	if opts.Overlay.Icon != "" {
		if !validator.Ratio(opts.Overlay.Scale) || opts.Overlay.Scale == 0 {
			return nil, fmt.Errorf("overlay scale %v: %w", opts.Overlay.Scale, errorz.InvalidParameter)
		}
		if !validPoint(opts.Overlay.Position) {
			return nil, fmt.Errorf("overlay position %v: %w", opts.Overlay.Position, errorz.InvalidParameter)
		}
	}
	if opts.Caption.Text != "" {
		if !validator.FontSize(opts.Caption.Size) {
			return nil, fmt.Errorf("caption size %d: %w", opts.Caption.Size, errorz.InvalidParameter)
		}
		if !validPoint(opts.Caption.Position) {
			return nil, fmt.Errorf("caption position %v: %w", opts.Caption.Position, errorz.InvalidParameter)
		}
	}

	base := opts.Style
	base.Logo = ""
	var err error
	if base.Shape, err = shapeOr(base.Shape, entity.Square); err != nil {
		return nil, err
	}
	if base.EyeShape, err = shapeOr(base.EyeShape, ""); err != nil {
		return nil, err
	}

	p := &plan{opts: opts, base: base}
	for _, e := range []struct {
		name  string
		style entity.EyeStyle
		mask  func(int, int) (*image.Alpha, error)
	}{
		{"outer", opts.OuterEye, eyemask.Outer},
		{"inner", opts.InnerEye, eyemask.Inner},
	} {
		if !e.style.IsSet() {
			continue
		}
		if e.style.Shape, err = shapeOr(e.style.Shape, ""); err != nil {
			return nil, fmt.Errorf("%s eye: %w", e.name, err)
		}
		p.passes = append(p.passes, eyePass{name: e.name, style: e.style.Apply(base), mask: e.mask})
	}
	return p, nil
}

func shapeOr(shape, fallback entity.ModuleShape) (entity.ModuleShape, error) {
	if strings.TrimSpace(string(shape)) == "" {
		return fallback, nil
	}
	return entity.ParseModuleShape(string(shape))
}

func validPoint(p entity.Point) bool {
	return validator.Ratio(p.X) && validator.Ratio(p.Y)
}
