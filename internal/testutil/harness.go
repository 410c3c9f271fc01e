// Package testutil runs the whole launcher, from settings resolution to the
// launch, against a scratch working directory and a recording runner.
package testutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/quartzlaunch/internal/app"
	"github.com/specialistvlad/quartzlaunch/internal/cli"
	"github.com/specialistvlad/quartzlaunch/internal/config"
	"github.com/specialistvlad/quartzlaunch/internal/env"
	"github.com/specialistvlad/quartzlaunch/internal/hcl"
	"github.com/specialistvlad/quartzlaunch/internal/launcher/launchertest"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Scenario describes one launcher invocation.
type Scenario struct {
	// Files are written below the working directory before the run. Keys
	// are slash-separated relative paths.
	Files map[string]string
	// Env is the process environment the launcher sees.
	Env map[string]string
	// Options are the parsed flags; Dir is always set to the scratch dir.
	Options cli.Options
	// Runner records the launch. A zero Recorder is used when nil.
	Runner *launchertest.Recorder
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	WorkDir   string
	Output    string
	LogOutput string
	ExitCode  int
	Err       error
	Config    *app.Config
	Runner    *launchertest.Recorder
}

// RunIntegrationTest runs sc with a background context.
func RunIntegrationTest(t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, sc)
}

// RunIntegrationTestWithContext prepares a scratch working directory, runs
// the launcher in it and reports what happened.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()

	workDir := t.TempDir()
	for name, content := range sc.Files {
		filePath := filepath.Join(workDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	runner := sc.Runner
	if runner == nil {
		runner = &launchertest.Recorder{}
	}

	opts := sc.Options
	opts.Dir = workDir
	if opts.LogLevel == "" {
		opts.LogLevel = "debug"
	}
	if opts.SettingsPath != "" && !filepath.IsAbs(opts.SettingsPath) {
		opts.SettingsPath = filepath.Join(workDir, filepath.FromSlash(opts.SettingsPath))
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	result := &HarnessResult{WorkDir: workDir, Runner: runner, ExitCode: 1}

	environ := make([]string, 0, len(sc.Env))
	for k, v := range sc.Env {
		environ = append(environ, k+"="+v)
	}
	newLoader := func(vars env.Vars) config.Loader {
		return hcl.NewLoader(vars)
	}

	cfg, err := cli.Resolve(ctx, &opts, environ, newLoader)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.Code
		}
		result.Err = err
		return result
	}
	result.Config = cfg

	code, err := app.NewApp(out, logs, cfg, runner).Run(ctx)
	result.ExitCode = code
	result.Err = err
	result.Output = out.String()
	result.LogOutput = logs.String()

	if os.Getenv("QUARTZLAUNCH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
