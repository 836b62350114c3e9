package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidAppID is returned when an application id is not a decimal number.
	ErrInvalidAppID = zerr.New("invalid app id, expected a decimal Steam app id")

	// ErrInvalidPort is returned when the configured port is out of range.
	ErrInvalidPort = zerr.New("invalid port, expected 1-65535")

	// ErrInvalidLogFormat is returned for an unknown log format.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrHomeDirUnavailable is returned when no home directory can be determined.
	ErrHomeDirUnavailable = zerr.New("failed to determine home directory")

	// ErrDocumentNotFound is returned when a key/value document does not exist.
	ErrDocumentNotFound = zerr.New("document not found")

	// ErrDocumentReadFailed is returned when a key/value document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrRequiredFileMissing is returned when a file that Steam always writes is absent.
	ErrRequiredFileMissing = zerr.New("required file missing")

	// ErrManifestNotFound is returned when the located application has no manifest.
	ErrManifestNotFound = zerr.New("application manifest not found")

	// ErrVersionMarkerReadFailed is returned when the prefix version marker cannot be read.
	ErrVersionMarkerReadFailed = zerr.New("failed to read prefix version marker")

	// ErrPathStatFailed is returned when stating a path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrLibraryPathInvalid is returned when a library path cannot be made absolute.
	ErrLibraryPathInvalid = zerr.New("failed to resolve library path")

	// ErrEnvironmentResolutionFailed wraps every unexpected failure of a resolution pass.
	ErrEnvironmentResolutionFailed = zerr.New("environment resolution failed")

	// ErrRuntimeNotFound is returned when a command needs a runtime that was not resolved.
	ErrRuntimeNotFound = zerr.New("runtime not found")

	// ErrNoCommand is returned when run is invoked without a command.
	ErrNoCommand = zerr.New("no command specified")

	// ErrLaunchFailed is returned when the child process cannot be started.
	ErrLaunchFailed = zerr.New("failed to launch process")

	// ErrQuoteFailed is returned when an argument cannot be shell-quoted.
	ErrQuoteFailed = zerr.New("failed to quote argument")

	// ErrOutputFailed is returned when writing command output fails.
	ErrOutputFailed = zerr.New("failed to write output")

	// ErrInvalidOutputFormat is returned for an unknown output format.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'shell' or 'yaml'")
)
