package repository

import "errors"

// ErrNotFound is returned when a record is absent from a store.
var ErrNotFound = errors.New("record not found")
