package eratime

import (
	"errors"

	"github.com/dmitrymomot/eradate/pkg/era"
)

var (
	// ErrFormatMismatch is returned when the input does not match the layout in full.
	ErrFormatMismatch = errors.New("input does not match layout")
	// ErrUnknownEra is returned when an era designator is not in the table.
	ErrUnknownEra = era.ErrUnknownEra
	// ErrIncompleteDate is returned when year, month or day cannot be resolved.
	ErrIncompleteDate = errors.New("incomplete date: year, month and day are required")
	// ErrInvalidDate is returned when the matched fields do not form a calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrEraOutOfRange is returned in strict mode when a date falls outside its era.
	ErrEraOutOfRange = errors.New("date outside of era")
	// ErrUnsupportedDirective is returned for format codes the parser cannot match.
	ErrUnsupportedDirective = errors.New("unsupported format directive")
	// ErrDuplicateDirective is returned when a layout sets the same field twice.
	ErrDuplicateDirective = errors.New("duplicate format directive")
)
