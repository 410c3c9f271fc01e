package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

// DefaultSettingsFile is looked up in the working directory when -settings
// is not given. Its absence is not an error.
const DefaultSettingsFile = "quartzlaunch.hcl"

// Options holds the parsed command line. Empty strings mean "not given".
type Options struct {
	Dir          string
	SettingsPath string
	LogFormat    string
	LogLevel     string
	Quiet        bool
}

// Parse processes command-line arguments. It returns the parsed Options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("quartzlaunch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
quartzlaunch - prepares a clean client run directory and starts a test run.

Usage:
  quartzlaunch [options]

Environment:
  QUARTZ_TEST_RUN_MODE
    Backend mode written to the client config (default "Automatic").
  ENV_FILE
    Dotenv file to read instead of .env and .env.local.

Options:
`)
		flagSet.PrintDefaults()
	}

	dirFlag := flagSet.String("dir", ".", "Working directory holding the build and the run directory.")
	settingsFlag := flagSet.String("settings", "", "Path to a settings file or directory (default ./"+DefaultSettingsFile+" if present).")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	quietFlag := flagSet.Bool("quiet", false, "Do not echo the generated config documents.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	opts := &Options{
		Dir:          *dirFlag,
		SettingsPath: *settingsFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Quiet:        *quietFlag,
	}
	slog.Debug("CLI parser finished successfully.", "options", opts)
	return opts, false, nil
}
