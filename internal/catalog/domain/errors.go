package domain

import "errors"

// Sentinel errors raised by the catalog services. Handlers translate these to
// HTTP status codes at the delivery boundary.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPayload is returned for malformed or out-of-range input,
	// e.g. an undecodable inline image or a percentage discount above 100.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrCategoryHasProducts is returned when deleting a category that still
	// has products linked to it.
	ErrCategoryHasProducts = errors.New("category has linked products")
)
