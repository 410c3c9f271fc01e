package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_AllAttributes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := writeFile(t, dir, "quartzlaunch.hcl", `
run_dir       = "build/run"
config_dir    = "config/quartz"
command       = "gradle"
args          = [":runClient", "--offline"]
run_mode      = "OpenGL46"
print_configs = false
log_level     = "debug"
log_format    = "json"
`)

	// --- Act ---
	settings, err := NewLoader(map[string]string{}).Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "build/run", *settings.RunDir)
	require.Equal(t, "config/quartz", *settings.ConfigDir)
	require.Equal(t, "gradle", *settings.Command)
	require.Equal(t, []string{":runClient", "--offline"}, settings.Args)
	require.Equal(t, "OpenGL46", *settings.RunMode)
	require.False(t, *settings.PrintConfigs)
	require.Equal(t, "debug", *settings.LogLevel)
	require.Equal(t, "json", *settings.LogFormat)
	require.Equal(t, []string{path}, settings.Sources)
}

func TestLoader_UnsetAttributesStayNil(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `command = "gradle"`)

	settings, err := NewLoader(map[string]string{}).Load(context.Background(), path)

	require.NoError(t, err)
	require.Equal(t, "gradle", *settings.Command)
	require.Nil(t, settings.RunDir)
	require.Nil(t, settings.RunMode)
	require.Nil(t, settings.Args)
	require.Nil(t, settings.PrintConfigs)
}

func TestLoader_EnvFunction(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `
run_mode = env("QUARTZ_TEST_RUN_MODE")
command  = env("GRADLE", "./gradlew")
run_dir  = env("MISSING")
`)
	vars := map[string]string{"QUARTZ_TEST_RUN_MODE": "Vulkan10"}

	settings, err := NewLoader(vars).Load(context.Background(), path)

	require.NoError(t, err)
	require.Equal(t, "Vulkan10", *settings.RunMode)
	require.Equal(t, "./gradlew", *settings.Command, "default is used when the variable is unset")
	require.Nil(t, settings.RunDir, "an unset variable without default leaves the setting unset")
}

func TestLoader_DirectoryMergesInOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, dir, "10-base.hcl", `
command = "./gradlew"
args    = [":runClient"]
`)
	writeFile(t, dir, "20-local.hcl", `command = "gradle"`)
	writeFile(t, dir, "README.md", `not hcl`)

	// --- Act ---
	settings, err := NewLoader(map[string]string{}).Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "gradle", *settings.Command)
	require.Equal(t, []string{":runClient"}, settings.Args)
	require.Len(t, settings.Sources, 2)
}

func TestLoader_MissingPathIsSkipped(t *testing.T) {
	t.Parallel()

	settings, err := NewLoader(map[string]string{}).Load(context.Background(), filepath.Join(t.TempDir(), "quartzlaunch.hcl"))

	require.NoError(t, err)
	require.Empty(t, settings.Sources)
	require.Nil(t, settings.Command)
}

func TestLoader_InvalidSyntax(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `command = "gradle`)

	_, err := NewLoader(map[string]string{}).Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestLoader_UnknownAttribute(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `timeout = 30`)

	_, err := NewLoader(map[string]string{}).Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode HCL file")
}

func TestLoader_WrongType(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `args = "not-a-list"`)

	_, err := NewLoader(map[string]string{}).Load(context.Background(), path)

	require.Error(t, err)
}

func TestLoader_EnvVariable(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `
run_mode = env.QUARTZ_TEST_RUN_MODE
run_dir  = "${env.BUILD_ROOT}/run"
`)
	vars := map[string]string{"QUARTZ_TEST_RUN_MODE": "OpenGL46", "BUILD_ROOT": "build"}

	// --- Act ---
	settings, err := NewLoader(vars).Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "OpenGL46", *settings.RunMode)
	require.Equal(t, "build/run", *settings.RunDir)
}

func TestLoader_EnvVariableUnset(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `run_mode = env.QUARTZ_TEST_RUN_MODE`)

	_, err := NewLoader(map[string]string{"OTHER": "x"}).Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode HCL file")
}

func TestLoader_EnvFunctionRejectsExtraDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "quartzlaunch.hcl", `command = env("GRADLE", "./gradlew", "gradle")`)

	_, err := NewLoader(map[string]string{}).Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "at most one default")
}

func TestNewLoader_NilUsesProcessEnvironment(t *testing.T) {
	t.Parallel()

	l := NewLoader(nil)

	require.NotNil(t, l.vars)
}
