package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/specialistvlad/quartzlaunch/internal/launcher/launchertest"
	"github.com/stretchr/testify/require"
)

// ConfigDir is where the client config lands with the default layout.
const ConfigDir = "run/client/config/phosphophyllite"

// ReadFile returns the content of a slash-separated path below the run's
// working directory.
func ReadFile(t *testing.T, result *HarnessResult, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(result.WorkDir, filepath.FromSlash(rel)))
	require.NoError(t, err, "expected %s to be readable", rel)
	return string(b)
}

// AssertDirEntries checks that dir holds exactly the given names.
func AssertDirEntries(t *testing.T, result *HarnessResult, rel string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(result.WorkDir, filepath.FromSlash(rel)))
	require.NoError(t, err)

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name())
	}
	sort.Strings(got)
	sort.Strings(want)
	require.Equal(t, want, got, "unexpected entries in %s", rel)
}

// AssertLaunched checks that exactly one command was launched.
func AssertLaunched(t *testing.T, result *HarnessResult, command string, args ...string) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	calls := result.Runner.Calls()
	require.Len(t, calls, 1, "expected exactly one launch")
	got := calls[0]
	if got.Args == nil {
		got.Args = []string{}
	}
	require.Equal(t, launchertest.Call{Command: command, Args: args}, got)
}

// AssertNotLaunched checks that nothing was launched.
func AssertNotLaunched(t *testing.T, result *HarnessResult) {
	t.Helper()
	require.Empty(t, result.Runner.Calls(), "no command should have been launched")
}
