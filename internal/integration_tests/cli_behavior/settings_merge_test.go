package cli_behavior

import (
	"testing"

	"github.com/specialistvlad/quartzlaunch/internal/cli"
	"github.com/specialistvlad/quartzlaunch/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestSettings_DefaultFileIsPickedUp validates that quartzlaunch.hcl in the
// working directory changes the layout and the launched command.
func TestSettings_DefaultFileIsPickedUp(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		cli.DefaultSettingsFile: `
run_dir    = "build/run"
config_dir = "config"
command    = "gradle"
args       = [":runClient", "--offline"]
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, testutil.Scenario{Files: files})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertDirEntries(t, result, "build/run/config", "quartz-client.json5", "quartz-testing-client.json5")
	testutil.AssertLaunched(t, result, "gradle", ":runClient", "--offline")
}

// TestSettings_DirectoryIsMergedInOrder validates that every .hcl file in a
// settings directory is applied, later files winning.
func TestSettings_DirectoryIsMergedInOrder(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"settings/10-base.hcl":  `command = "./gradlew"` + "\n" + `run_mode = "OpenGL33"`,
		"settings/20-local.hcl": `run_mode = "OpenGL46"`,
	}

	result := testutil.RunIntegrationTest(t, testutil.Scenario{
		Files:   files,
		Options: cli.Options{SettingsPath: "settings"},
	})

	require.NoError(t, result.Err)
	require.Contains(t, testutil.ReadFile(t, result, testutil.ConfigDir+"/quartz-client.json5"), `mode: "OpenGL46"`)
}

// TestSettings_EnvironmentOverridesRunMode validates that the environment
// variable always decides the run mode when it is set.
func TestSettings_EnvironmentOverridesRunMode(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, testutil.Scenario{
		Files: map[string]string{cli.DefaultSettingsFile: `run_mode = "OpenGL33"`},
		Env:   map[string]string{"QUARTZ_TEST_RUN_MODE": "Vulkan10"},
	})

	require.NoError(t, result.Err)
	require.Equal(t, "Vulkan10", result.Config.RunMode)
}

// TestSettings_DotenvFile validates that a .env file next to the build
// supplies the run mode when the environment does not.
func TestSettings_DotenvFile(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, testutil.Scenario{
		Files: map[string]string{
			".env":       "QUARTZ_TEST_RUN_MODE=OpenGL33\n",
			".env.local": "QUARTZ_TEST_RUN_MODE=Vulkan10\n",
		},
	})

	require.NoError(t, result.Err)
	require.Contains(t, testutil.ReadFile(t, result, testutil.ConfigDir+"/quartz-client.json5"), `mode: "Vulkan10"`)
}

// TestSettings_QuietSuppressesEcho validates the -quiet flag.
func TestSettings_QuietSuppressesEcho(t *testing.T) {
	t.Parallel()

	loud := testutil.RunIntegrationTest(t, testutil.Scenario{})
	quiet := testutil.RunIntegrationTest(t, testutil.Scenario{Options: cli.Options{Quiet: true}})

	require.NoError(t, loud.Err)
	require.NoError(t, quiet.Err)
	require.Contains(t, loud.Output, "Enabled: true")
	require.Empty(t, quiet.Output)
}
