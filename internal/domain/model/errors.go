package model

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned by a content store when the path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrMissingResponse means the page side returned nothing for a request.
	ErrMissingResponse = errors.New("no response from page")
	// ErrInvalidSettings means the persisted settings cannot be used to publish.
	ErrInvalidSettings = errors.New("invalid settings")
)

// RemoteCheckError is an unexpected status from the existence check.
type RemoteCheckError struct {
	Status int
}

func (e *RemoteCheckError) Error() string {
	return fmt.Sprintf("GitHub API responded with status %d", e.Status)
}

// RemoteWriteError is a non-2xx response to a create or update.
type RemoteWriteError struct {
	Status  int
	Message string
}

func (e *RemoteWriteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GitHub API error: status %d", e.Status)
	}
	return fmt.Sprintf("GitHub API error: %s", e.Message)
}
