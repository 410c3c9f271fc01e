package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/quartzlaunch/internal/runmode"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RunMode string // written verbatim into the main config

	WorkDir   string // base for relative paths and the command's working directory
	RunDir    string // wiped and recreated on every run
	ConfigDir string // relative to RunDir

	Command string
	Args    []string

	LogFormat    string
	LogLevel     string
	PrintConfigs bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		RunMode:      runmode.Default,
		WorkDir:      ".",
		RunDir:       "run/client",
		ConfigDir:    "config/phosphophyllite",
		Command:      "./gradlew",
		Args:         []string{":runClient"},
		LogFormat:    "text",
		LogLevel:     "info",
		PrintConfigs: true,
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if strings.TrimSpace(cfg.RunDir) == "" {
		return nil, errors.New("RunDir is a required configuration field and cannot be empty")
	}
	if strings.TrimSpace(cfg.Command) == "" {
		return nil, errors.New("Command is a required configuration field and cannot be empty")
	}
	if err := checkRunDir(cfg.WorkDir, cfg.RunDir); err != nil {
		return nil, err
	}
	if filepath.IsAbs(cfg.ConfigDir) {
		return nil, fmt.Errorf("ConfigDir must be relative to RunDir, got %q", cfg.ConfigDir)
	}
	for _, part := range strings.Split(filepath.ToSlash(cfg.ConfigDir), "/") {
		if part == ".." {
			return nil, fmt.Errorf("ConfigDir must stay inside RunDir, got %q", cfg.ConfigDir)
		}
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.Args = append([]string{}, cfg.Args...)
	return &cfg, nil
}

// checkRunDir rejects a RunDir that is WorkDir itself or one of its
// ancestors; the run directory is removed recursively on every run.
func checkRunDir(workDir, runDir string) error {
	absWork, err := filepath.Abs(workDir)
	if err != nil {
		return fmt.Errorf("failed to resolve WorkDir %q: %w", workDir, err)
	}
	absRun := filepath.FromSlash(runDir)
	if !filepath.IsAbs(absRun) {
		absRun = filepath.Join(absWork, absRun)
	}
	absRun = filepath.Clean(absRun)

	rel, err := filepath.Rel(absRun, absWork)
	if err != nil {
		// Different volumes, so neither contains the other.
		return nil
	}
	// rel climbs out of absRun unless absRun is absWork or one of its ancestors.
	outside := rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
	if !outside {
		return fmt.Errorf("RunDir %q must not be the working directory or contain it", runDir)
	}
	return nil
}

// resolve makes p absolute against WorkDir unless it already is.
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.WorkDir, filepath.FromSlash(p))
}
