package runmode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lookupFrom(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{name: "unset falls back to default", vars: map[string]string{}, want: "Automatic"},
		{name: "set value is returned", vars: map[string]string{EnvVar: "Manual"}, want: "Manual"},
		{name: "empty value is kept", vars: map[string]string{EnvVar: ""}, want: ""},
		{name: "quotes are not touched", vars: map[string]string{EnvVar: `a"b`}, want: `a"b`},
		{name: "other variables are ignored", vars: map[string]string{"OTHER": "Vulkan10"}, want: "Automatic"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Resolve(lookupFrom(tc.vars)))
		})
	}
}

func TestResolve_NilLookup(t *testing.T) {
	t.Parallel()
	require.Equal(t, Default, Resolve(nil))
}

func TestKnown(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"Vulkan10", "OpenGL46", "OpenGL33", "Automatic"} {
		require.True(t, Known(mode), mode)
	}
	require.False(t, Known("Manual"))
	require.False(t, Known("automatic"))
}
