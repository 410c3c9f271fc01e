// Package env layers dotenv files underneath the process environment.
//
// Files are chosen the same way the service loaders do it:
//
//  1. ENV_FILE (if set, only this file is read)
//  2. .env.local (overrides .env)
//  3. .env
//
// Variables already present in the process environment always win. Unlike
// godotenv.Load, nothing is written back into the process environment; the
// merged variables are returned to whoever needs them.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// FileVar names the variable that points at a single dotenv file.
const FileVar = "ENV_FILE"

// Vars is a set of environment variables.
type Vars map[string]string

// Lookup has the shape of os.LookupEnv.
func (v Vars) Lookup(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}

// ParseEnviron turns os.Environ-style KEY=VALUE pairs into Vars. Entries
// without '=' are ignored.
func ParseEnviron(environ []string) Vars {
	vars := make(Vars, len(environ))
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			vars[pair[0]] = pair[1]
		}
	}
	return vars
}

// Files returns the dotenv files to read for dir, lowest priority first.
func Files(dir string, process Vars) []string {
	if file, ok := process.Lookup(FileVar); ok && file != "" {
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		return []string{file}
	}
	return []string{filepath.Join(dir, ".env"), filepath.Join(dir, ".env.local")}
}

// Load reads the given dotenv files in order, later files overriding earlier
// ones, and overlays process on top. Missing files are skipped.
func Load(process Vars, files ...string) (Vars, error) {
	merged := make(Vars)
	for _, file := range files {
		vars, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load env file %s: %w", file, err)
		}
		for k, v := range vars {
			merged[k] = v
		}
	}
	for k, v := range process {
		merged[k] = v
	}
	return merged, nil
}

// LoadDir is Load over Files(dir, process) for the given os.Environ-style
// process environment.
func LoadDir(dir string, environ []string) (Vars, error) {
	process := ParseEnviron(environ)
	return Load(process, Files(dir, process)...)
}
