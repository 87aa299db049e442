package domain

import "errors"

// Error kinds surfaced to the presentation layer. Repository failures wrap
// ErrDataAccess; rejected filter parameters wrap ErrInvalidArgument. Neither
// is retried. A dangling foreign key is not an error at all: the joined row
// is returned with nil fields and logged as a referential anomaly.
var (
	ErrDataAccess      = errors.New("data access failure")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)
