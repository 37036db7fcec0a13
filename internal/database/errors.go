package database

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the store was never configured (no
// DATABASE_URL at startup). Reads degrade to empty results instead.
var ErrNotConfigured = errors.New("document store not configured")

// PersistenceError wraps a failed store operation. Handlers map it to HTTP 500.
type PersistenceError struct {
	Op  string // "insert", "find", "count"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err is (or wraps) a PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
