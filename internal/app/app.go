package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/brewdoc/internal/beerxml"
	"github.com/vk/brewdoc/internal/config"
	"github.com/vk/brewdoc/internal/ctxlog"
	"github.com/vk/brewdoc/internal/registry"
)

// AppConfig holds everything an App instance needs to start.
type AppConfig struct {
	// JobFile is the path of the HCL job file to run.
	JobFile string

	// LogFormat is "text" or "json".
	LogFormat string

	// LogLevel, when non-empty, overrides the job file's log_level.
	LogLevel string
}

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
}

// NewApp constructs a fully initialized App: logger, validated format
// registry, and decoded job file. A failure at this stage means the binary
// cannot do anything useful, so it panics.
func NewApp(outW io.Writer, appConfig *AppConfig) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	model, err := config.Load(ctx, appConfig.JobFile)
	if err != nil {
		panic(fmt.Errorf("failed to load job file: %w", err))
	}
	if appConfig.LogLevel == "" {
		// The job file decides the level when the flag is silent.
		logger = newLogger(model.LogLevel, appConfig.LogFormat, outW)
	}
	logger.Debug("job file loaded", "path", appConfig.JobFile, "jobs", len(model.Jobs))

	reg := registry.New()
	beerxml.Register(reg)
	// Cross-checks every schema field against the type registries. Any
	// defect here is a programmer error in static format data.
	reg.Validate()
	logger.Debug("format registry validated", "kinds", len(reg.Names()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
	}
}

// Registry returns the application's format registry, primarily for tests.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
