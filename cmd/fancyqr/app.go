package fancyqr

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Badsnus/fancyqr/internal/adapters/config"
	"github.com/Badsnus/fancyqr/internal/adapters/fonts"
	"github.com/Badsnus/fancyqr/internal/domain/entity"
	"github.com/Badsnus/fancyqr/internal/domain/service"
	"github.com/Badsnus/fancyqr/pkg/logger"
	"github.com/Badsnus/fancyqr/pkg/logger/types"
)

type App struct {
	Generator *service.GeneratorService
	Options   entity.Options
	Logger    *types.Logger
}

func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	fontsLogger, err := logger.Named("fonts")
	if err != nil {
		return nil, err
	}
	generatorLogger, err := logger.Named("generator")
	if err != nil {
		return nil, err
	}

	dirs := append(fonts.SystemDirs(), cfg.FontDirs...)
	locator := fonts.Scan(dirs...)
	appLogger.Debugf("Indexed %d fonts", locator.Len())

	return &App{
		Generator: service.NewGeneratorService(fonts.NewLoader(locator, fontsLogger), generatorLogger, cfg.Scratch),
		Options:   cfg.Options,
		Logger:    appLogger,
	}, nil
}

// Run generates one image and stops early on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Generating %s", a.Options.Outfile)
	if err := a.Generator.Generate(ctx, a.Options); err != nil {
		a.Logger.Errorf("Failed to generate QR code: %v", err)
		return err
	}
	return nil
}
