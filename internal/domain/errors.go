package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning indicates a start was attempted while a timer is active.
	ErrAlreadyRunning = errors.New("a timer is already running, stop it before starting a new one")

	// ErrNoActiveSession indicates there is no running timer to act on.
	ErrNoActiveSession = errors.New("no active timer found, start a timer first using the 'start' command")

	// ErrNothingToExport indicates the session log is empty.
	ErrNothingToExport = errors.New("no sessions to export")

	// ErrDirectoryMissing indicates the export target directory does not exist.
	// Returned wrapped in a *DirectoryMissingError.
	ErrDirectoryMissing = errors.New("directory does not exist")

	// ErrMalformedStore indicates a store file could not be parsed. Reads
	// recover from it locally; appending refuses to overwrite a log that is
	// valid JSON but not a list.
	ErrMalformedStore = errors.New("malformed session store")

	// ErrNoData indicates a summary window contains no sessions.
	ErrNoData = errors.New("no sessions found")

	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrEmptyTask         = errors.New("task description is required")
)

// DirectoryMissingError names the directory an export could not write into.
type DirectoryMissingError struct {
	Dir string
}

func (e *DirectoryMissingError) Error() string {
	return fmt.Sprintf("directory '%s' does not exist", e.Dir)
}

func (e *DirectoryMissingError) Unwrap() error {
	return ErrDirectoryMissing
}
