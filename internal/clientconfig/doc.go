// Package clientconfig renders the two relaxed-JSON (json5) documents the
// client reads at startup: its main backend config and the testing config
// that switches on automatic test runs.
//
// Keys are unquoted and every field carries a trailing comma, matching what
// the client's config manager writes itself. Values are substituted as-is;
// a mode containing a double quote yields a document the client cannot
// parse.
package clientconfig
