package server

import "errors"

var (
	// ErrMissingAddress is returned when the listen address is empty.
	ErrMissingAddress = errors.New("server address is required")
	// ErrServerAlreadyRunning is returned by Start on a running server.
	ErrServerAlreadyRunning = errors.New("server is already running")
	// ErrMissingParam is returned when a required query parameter is absent.
	ErrMissingParam = errors.New("missing query parameter")
	// ErrInvalidParam is returned when a query parameter is malformed.
	ErrInvalidParam = errors.New("invalid query parameter")
)
