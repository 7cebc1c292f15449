package services

import "errors"

// ErrNotFound is returned when an entry does not exist in the store.
var ErrNotFound = errors.New("entry not found")

// ErrInvalidInput is returned when a request carries an unparseable value,
// such as a malformed date.
var ErrInvalidInput = errors.New("invalid input")
