package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already bound
	// to a transaction, and by Health which needs the pool.
	ErrAlreadyInTx = errors.New("storage: handle is already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback on a pool handle.
	ErrNotInTx = errors.New("storage: handle is not in a transaction")
)
