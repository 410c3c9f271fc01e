// Package config defines the format-agnostic model of the launcher's
// settings file and the Loader interface that produces it.
//
// Every field of Settings is optional; a nil field means "keep the
// built-in default". Concrete loaders, such as the HCL one, live in
// separate packages.
package config
