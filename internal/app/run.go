package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/quartzlaunch/internal/clientconfig"
	"github.com/specialistvlad/quartzlaunch/internal/ctxlog"
	"github.com/specialistvlad/quartzlaunch/internal/fsutil"
	"github.com/specialistvlad/quartzlaunch/internal/runmode"
)

// failureStatus is reported when the orchestrator itself fails before or
// while starting the external command.
const failureStatus = 1

// Run performs one launch and returns the exit status the process should
// end with. A non-nil error means the launch was aborted; nothing written up
// to that point is cleaned up.
func (a *App) Run(ctx context.Context) (int, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config
	a.logger.Debug("App.Run method started.", "run_mode", cfg.RunMode)

	if !runmode.Known(cfg.RunMode) {
		a.logger.Warn("Unknown run mode, passing it through unchanged.", "run_mode", cfg.RunMode)
	}

	docs, err := clientconfig.Documents(cfg.RunMode)
	if err != nil {
		return failureStatus, fmt.Errorf("failed to render client config: %w", err)
	}
	if cfg.PrintConfigs {
		for _, doc := range docs {
			fmt.Fprintln(a.outW, doc.Content)
		}
	}

	runDir := cfg.resolve(cfg.RunDir)
	configDir, err := fsutil.EnsureCleanDir(runDir, filepath.FromSlash(cfg.ConfigDir))
	if err != nil {
		return failureStatus, fmt.Errorf("failed to reset run directory: %w", err)
	}
	a.logger.Debug("Run directory reset.", "run_dir", runDir, "config_dir", configDir)

	for _, doc := range docs {
		if err := fsutil.WriteFile(configDir, doc.Name, doc.Content); err != nil {
			return failureStatus, fmt.Errorf("failed to write client config: %w", err)
		}
		a.logger.Debug("Client config written.", "file", filepath.Join(configDir, doc.Name))
	}
	a.logger.Info("Client config ready.", "dir", configDir, "run_mode", cfg.RunMode)

	a.logger.Info("Launching client.", "command", cfg.Command, "args", cfg.Args)
	code, err := a.runner.Run(ctx, cfg.Command, cfg.Args)
	if err != nil {
		return failureStatus, fmt.Errorf("failed to launch client: %w", err)
	}

	if code != 0 {
		a.logger.Warn("Client run finished with a failure status.", "exit_code", code)
	} else {
		a.logger.Info("Client run finished.", "exit_code", code)
	}
	return code, nil
}
