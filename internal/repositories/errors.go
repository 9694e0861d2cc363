package repositories

import "errors"

// ErrNotFound is returned when no document matches the requested ID.
var ErrNotFound = errors.New("record not found")
