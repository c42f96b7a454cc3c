package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, out-of-range numeric value,
// unknown status value).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrNoFields is returned by the package update operation when the caller
// supplied no fields to change. No write is issued in that case.
// Handlers should map this to HTTP 400 Bad Request.
var ErrNoFields = errors.New("no fields to update")
