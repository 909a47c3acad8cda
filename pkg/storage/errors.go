package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when a transaction is requested on a handle
	// that is already transactional. Units of work do not nest.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called on a
	// non-transactional handle.
	ErrNotInTx = errors.New("not in tx")
)
