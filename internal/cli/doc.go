// Package cli turns command-line arguments and the environment into an
// app.Config. The launcher needs no arguments at all; every flag only
// overrides a default.
package cli
