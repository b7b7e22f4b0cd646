package service

import (
	"errors"
	"fmt"
)

// Outcome sentinels. Handlers translate these to status codes; storage
// failures are returned as plain wrapped errors and map to an internal
// outcome.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("already exists")
	ErrForbidden = errors.New("forbidden")

	// ErrListNotFound and ErrUserNotFound both match ErrNotFound; share
	// and unshare report which of the two references was missing, with
	// the list checked first.
	ErrListNotFound = fmt.Errorf("task list %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
)
