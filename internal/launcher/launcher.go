// Package launcher runs the external build command that takes over once the
// run directory is prepared.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/specialistvlad/quartzlaunch/internal/ctxlog"
)

// Runner runs command with args to completion and reports its exit status.
// A non-zero status is not an error; errors mean the command could not be
// run at all.
type Runner interface {
	Run(ctx context.Context, command string, args []string) (int, error)
}

// ExecRunner is the os/exec backed Runner. The child inherits the given
// streams, which default to the launcher's own.
type ExecRunner struct {
	Dir    string
	Env    []string // nil inherits the launcher's environment
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner wired to the process's standard streams.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the command and blocks until it exits. There is no timeout.
func (r *ExecRunner) Run(ctx context.Context, command string, args []string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = r.Dir
	cmd.Env = r.Env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Debug("Starting external command.", "command", command, "args", strings.Join(args, " "), "dir", r.Dir)
	err := cmd.Run()
	if err == nil {
		logger.Debug("External command finished.", "exit_code", 0)
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = 1
		}
		logger.Debug("External command finished.", "exit_code", code)
		return code, nil
	}

	return 1, fmt.Errorf("failed to run %s: %w", command, err)
}
