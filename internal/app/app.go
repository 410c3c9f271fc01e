package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/quartzlaunch/internal/launcher"
)

// App encapsulates the orchestrator's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	runner launcher.Runner
}

// NewApp wires an App. Rendered documents are echoed to outW, log records
// go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, runner launcher.Runner) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		runner: runner,
	}
}

// Config returns the configuration the App was built with.
func (a *App) Config() *Config {
	return a.config
}
