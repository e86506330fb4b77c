package eragen

import "errors"

var (
	// ErrFetch is returned when the source page cannot be downloaded.
	ErrFetch = errors.New("failed to fetch era list")
	// ErrNoEras is returned when no era rows could be extracted.
	ErrNoEras = errors.New("no eras found in source")
	// ErrWrite is returned when the table cannot be written to its destination.
	ErrWrite = errors.New("failed to write era table")
	// ErrAbbrExhausted is returned when an era has no unused character left for its abbreviation.
	ErrAbbrExhausted = errors.New("no unique abbreviation available")
)
