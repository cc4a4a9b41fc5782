package domain

import "go.trai.ch/zerr"

var (
	// ErrScanFailed is returned when the link-dependency scanner could not run or exited abnormally.
	ErrScanFailed = zerr.New("failed to scan binary for missing libraries")

	// ErrLocatorFailed is returned when the candidate index is unreadable or returns malformed entries.
	ErrLocatorFailed = zerr.New("failed to locate library providers")

	// ErrUnresolvable is returned when a library has no known provider.
	ErrUnresolvable = zerr.New("no package provides library")

	// ErrSelectionCancelled is returned when an interactive provider choice is abandoned.
	ErrSelectionCancelled = zerr.New("provider selection cancelled")

	// ErrEmissionFailed is returned when the environment expression cannot be rendered.
	ErrEmissionFailed = zerr.New("failed to emit environment expression")

	// ErrScriptWriteFailed is returned when the launcher script cannot be written.
	ErrScriptWriteFailed = zerr.New("failed to write launcher script")

	// ErrUnknownStrategy is returned when a selection strategy identifier is not recognised.
	ErrUnknownStrategy = zerr.New("unknown selection strategy, expected 'all' or 'interactive'")

	// ErrNoBinarySpecified is returned when a command needs a binary path but none was given.
	ErrNoBinarySpecified = zerr.New("no binary specified")

	// ErrNoLibrarySpecified is returned when a command needs library names but none were given.
	ErrNoLibrarySpecified = zerr.New("no library specified")

	// ErrBinaryNotFound is returned when the binary path cannot be resolved.
	ErrBinaryNotFound = zerr.New("binary not found")

	// ErrConfigReadFailed is returned when a config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a merged configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")
)
