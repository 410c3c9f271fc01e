package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/quartzlaunch/internal/app"
	"github.com/specialistvlad/quartzlaunch/internal/config"
	"github.com/specialistvlad/quartzlaunch/internal/ctxlog"
	"github.com/specialistvlad/quartzlaunch/internal/env"
	"github.com/specialistvlad/quartzlaunch/internal/runmode"
)

// LoaderFactory builds a settings loader that sees vars as its environment.
type LoaderFactory func(vars env.Vars) config.Loader

// Resolve builds the app.Config for opts from environ, an os.Environ-style
// process environment. Precedence, lowest first: built-in defaults, settings
// file, flags. The run mode comes from QUARTZ_TEST_RUN_MODE (process
// environment, then dotenv files) whenever it is set, otherwise from the
// settings file, otherwise the default.
func Resolve(ctx context.Context, opts *Options, environ []string, newLoader LoaderFactory) (*app.Config, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := app.DefaultConfig()
	cfg.WorkDir = opts.Dir

	vars, err := env.LoadDir(opts.Dir, environ)
	if err != nil {
		return nil, err
	}

	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = filepath.Join(opts.Dir, DefaultSettingsFile)
	} else if _, err := os.Stat(settingsPath); err != nil {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("settings not found: %v", err)}
	}

	settings, err := newLoader(vars).Load(ctx, settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(settings.Sources) > 0 {
		logger.Debug("Settings loaded.", "sources", settings.Sources)
	}
	applySettings(&cfg, settings)

	if _, ok := vars.Lookup(runmode.EnvVar); ok {
		cfg.RunMode = runmode.Resolve(vars.Lookup)
	}

	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Quiet {
		cfg.PrintConfigs = false
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return validated, nil
}

func applySettings(cfg *app.Config, s *config.Settings) {
	if s.RunDir != nil {
		cfg.RunDir = *s.RunDir
	}
	if s.ConfigDir != nil {
		cfg.ConfigDir = *s.ConfigDir
	}
	if s.Command != nil {
		cfg.Command = *s.Command
	}
	if s.Args != nil {
		cfg.Args = s.Args
	}
	if s.RunMode != nil {
		cfg.RunMode = *s.RunMode
	}
	if s.PrintConfigs != nil {
		cfg.PrintConfigs = *s.PrintConfigs
	}
	if s.LogLevel != nil {
		cfg.LogLevel = *s.LogLevel
	}
	if s.LogFormat != nil {
		cfg.LogFormat = *s.LogFormat
	}
}
