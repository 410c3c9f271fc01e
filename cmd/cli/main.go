package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/quartzlaunch/internal/app"
	"github.com/specialistvlad/quartzlaunch/internal/cli"
	"github.com/specialistvlad/quartzlaunch/internal/config"
	"github.com/specialistvlad/quartzlaunch/internal/env"
	"github.com/specialistvlad/quartzlaunch/internal/hcl"
	"github.com/specialistvlad/quartzlaunch/internal/launcher"
)

// main is the entrypoint for the quartzlaunch application.
func main() {
	// Use a minimal logger until the app's own one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:], os.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRunner builds the runner for the build command; tests swap it for a
// recording one.
var newRunner = func(dir string) launcher.Runner {
	return launcher.NewExecRunner(dir)
}

func newSettingsLoader(vars env.Vars) config.Loader {
	return hcl.NewLoader(vars)
}

// run holds the main logic. A failing client run comes back as an
// *cli.ExitError carrying the client's status and no message.
func run(ctx context.Context, outW, errW io.Writer, args []string, environ []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := cli.Resolve(ctx, opts, environ, newSettingsLoader)
	if err != nil {
		return err
	}

	launchApp := app.NewApp(outW, errW, cfg, newRunner(cfg.WorkDir))
	code, err := launchApp.Run(ctx)
	if err != nil {
		return err
	}
	if code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}
