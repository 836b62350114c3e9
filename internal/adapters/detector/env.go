// Package detector chooses how log records are rendered for the current
// environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat is the rendering used for log records.
type LogFormat int

const (
	// FormatPretty renders coloured single-line records for humans.
	FormatPretty LogFormat = iota
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// String returns the flag value that selects the format.
func (f LogFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "pretty"
}

// DetectEnvironment returns the recommended log format. Records go to stderr,
// so pretty output is only chosen when stderr is a terminal outside CI.
func DetectEnvironment() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	if !isTTY || isCI() {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the --log-format flag to the detected format.
// userFlag is one of "auto", "pretty", "json" or empty.
func ResolveFormat(autoDetected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return autoDetected
	}
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
