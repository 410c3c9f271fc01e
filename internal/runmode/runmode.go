// Package runmode resolves the client backend mode for a test run.
package runmode

// EnvVar is the environment variable that selects the run mode.
const EnvVar = "QUARTZ_TEST_RUN_MODE"

// Default is used when EnvVar is not set.
const Default = "Automatic"

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// known lists the backend modes the client understands.
var known = map[string]struct{}{
	"Vulkan10":  {},
	"OpenGL46":  {},
	"OpenGL33":  {},
	"Automatic": {},
}

// Resolve returns the value of EnvVar verbatim when it is set, even when it
// is set to an empty string, and Default otherwise.
func Resolve(lookup LookupFunc) string {
	if lookup == nil {
		return Default
	}
	if mode, ok := lookup(EnvVar); ok {
		return mode
	}
	return Default
}

// Known reports whether mode is one of the client's backend modes. Unknown
// modes are still passed through; this only drives a warning.
func Known(mode string) bool {
	_, ok := known[mode]
	return ok
}
