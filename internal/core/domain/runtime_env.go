package domain

import (
	"io"
	"maps"
	"slices"
)

// RuntimeEnvironment is the outcome of one resolution pass. Path fields that
// could not be resolved are left empty; see Resolved and HasCompatData.
type RuntimeEnvironment struct {
	AppID AppID
	// LibraryRoot is the absolute library folder holding the application.
	LibraryRoot string
	// ManifestPath is the appmanifest file that confirmed the installation.
	ManifestPath string
	// AppName is the display name recorded in the manifest, if any.
	AppName string
	// CompatDataPath is <library_root>/steamapps/compatdata/<app_id>.
	CompatDataPath string
	// CompatDataExists reports whether CompatDataPath is present on disk.
	CompatDataExists bool
	// RuntimeVersion is the Proton version read from the version marker.
	RuntimeVersion string
	// RuntimeDir is the "Proton <version>" directory that was found.
	RuntimeDir string
	// RuntimeBinaryPath is <RuntimeDir>/proton.
	RuntimeBinaryPath string
	// Environment holds the variables a process needs to run in the prefix.
	Environment map[string]string
}

// Resolved reports whether a runtime binary was found.
func (e *RuntimeEnvironment) Resolved() bool {
	return e != nil && e.RuntimeBinaryPath != ""
}

// LaunchCommand prepends the runtime binary and its runinprefix verb to
// command. The command itself is not inspected.
func (e *RuntimeEnvironment) LaunchCommand(command []string) []string {
	out := make([]string, 0, len(command)+2)
	out = append(out, e.RuntimeBinaryPath, RunInPrefixVerb)
	return append(out, command...)
}

// EnvironmentKeys returns the environment variable names in sorted order.
func (e *RuntimeEnvironment) EnvironmentKeys() []string {
	return slices.Sorted(maps.Keys(e.Environment))
}

// LaunchRequest describes a process to start inside a prefix.
type LaunchRequest struct {
	// Args is the full argument vector; Args[0] is the program.
	Args []string
	// Env is laid over the inherited process environment.
	Env map[string]string
	// Dir is the working directory. Empty means inherit.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
