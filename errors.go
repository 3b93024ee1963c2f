package shadow

import "errors"

// Common errors returned by the package. Errors are wrapped with context;
// test for them with errors.Is.
var (
	// ErrInvalidArgument is returned for an elevation outside [0, 5], a
	// negative blur radius, negative dimensions or a nil pixmap.
	ErrInvalidArgument = errors.New("shadow: invalid argument")

	// ErrAllocation is returned when a pixel buffer of the requested size
	// cannot be allocated.
	ErrAllocation = errors.New("shadow: allocation failed")

	// ErrInvalidConfig is returned when a configuration file cannot be
	// parsed or describes invalid curves.
	ErrInvalidConfig = errors.New("shadow: invalid config")
)
