package era

import "errors"

var (
	// ErrUnknownEra is returned when a name or abbreviation is not present in the table.
	ErrUnknownEra = errors.New("unknown era")
	// ErrEmptyTable is returned when a table is built from no records.
	ErrEmptyTable = errors.New("era table is empty")
	// ErrInvalidRecord is returned when a source record fails validation.
	ErrInvalidRecord = errors.New("invalid era record")
	// ErrDuplicateName is returned when two eras share a native or romanized name.
	ErrDuplicateName = errors.New("duplicate era name")
	// ErrDuplicateAbbr is returned when two eras share a native abbreviation.
	ErrDuplicateAbbr = errors.New("duplicate era abbreviation")
	// ErrUnorderedTable is returned when start dates are not strictly increasing.
	ErrUnorderedTable = errors.New("era start dates must be strictly increasing")
)
