package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/quartzlaunch/internal/config"
	"github.com/specialistvlad/quartzlaunch/internal/ctxlog"
	"github.com/specialistvlad/quartzlaunch/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension searched for when a directory is loaded.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	vars map[string]string
}

// NewLoader creates a loader whose env variable and env() function read
// vars. A nil vars uses the process environment.
func NewLoader(vars map[string]string) *Loader {
	if vars == nil {
		vars = environ()
	}
	return &Loader{vars: vars}
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, e := range os.Environ() {
		if k, v, ok := strings.Cut(e, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// fileRoot is the schema of a settings file. Unknown attributes and any
// blocks are rejected by gohcl.
type fileRoot struct {
	RunDir       *string  `hcl:"run_dir,optional"`
	ConfigDir    *string  `hcl:"config_dir,optional"`
	Command      *string  `hcl:"command,optional"`
	Args         []string `hcl:"args,optional"`
	RunMode      *string  `hcl:"run_mode,optional"`
	PrintConfigs *bool    `hcl:"print_configs,optional"`
	LogLevel     *string  `hcl:"log_level,optional"`
	LogFormat    *string  `hcl:"log_format,optional"`
}

// Load parses every settings file found under paths and merges them in
// order. Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered settings files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()
	settings := &config.Settings{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		settings.Merge(translate(file, &root))
		logger.Debug("Settings file merged.", "file", file)
	}

	return settings, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(l.vars),
		},
		Functions: functions(l.vars),
	}
}

func translate(file string, root *fileRoot) *config.Settings {
	return &config.Settings{
		RunDir:       root.RunDir,
		ConfigDir:    root.ConfigDir,
		Command:      root.Command,
		Args:         root.Args,
		RunMode:      root.RunMode,
		PrintConfigs: root.PrintConfigs,
		LogLevel:     root.LogLevel,
		LogFormat:    root.LogFormat,
		Sources:      []string{file},
	}
}

// findAllHCLFiles expands directories into the .hcl files below them.
// Files named explicitly are used whatever their extension.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}
