// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNoToken indicates no GitHub access token was provided via flag or environment.
	// Maps to exit code 2.
	ErrNoToken = errors.New("no github token provided")

	// ErrContactNotFound indicates the directory lookup returned no usable entry
	// for the requested login. Maps to exit code 3.
	ErrContactNotFound = errors.New("contact not found in directory")

	// ErrNoBuildContext indicates the Jenkins pull request environment variables
	// are absent, so no target PR can be determined. Maps to exit code 2.
	ErrNoBuildContext = errors.New("pull request build environment not set")
)
