package service

import "errors"

var (
	// ErrSessionNotFound is surfaced identically by every component that
	// looks up a session identifier.
	ErrSessionNotFound = errors.New("Session not found")

	// ErrUnsupportedFormat rejects uploads before any parsing is attempted.
	ErrUnsupportedFormat = errors.New("Only CSV or XLSX files are supported")

	// ErrInvalidRender marks a render failure caused by the request (absent
	// column, type-incompatible selection), not by the server.
	ErrInvalidRender = errors.New("chart error")
)
