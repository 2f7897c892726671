package repository

import "errors"

// ErrNotFound is returned by any repository when a lookup matches no row.
var ErrNotFound = errors.New("not found")
