// Package app is the test launch orchestrator. It renders the client's
// config documents, resets the run directory, writes the documents into it
// and hands over to the external build command, reporting that command's
// exit status as its own.
//
// Everything the orchestrator needs arrives through Config and the injected
// launcher.Runner; it never reads the process environment itself.
package app
