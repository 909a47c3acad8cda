// Package uow runs a batch of writes atomically against one transactional
// storage handle.
package uow

import (
	"context"
	"registry/pkg/storage"
)

// Work performs writes through the scoped storage handle. The handle must not
// be retained after the function returns.
type Work[T any] func(tx storage.AllStorage) (T, error)

// Execute begins a transaction, runs work and commits when work succeeds. When
// work fails the transaction is rolled back and work's error is returned
// unchanged. A panic inside work rolls back and keeps panicking. Nested use is
// rejected with storage.ErrAlreadyInTx.
func Execute[T any](ctx context.Context, s storage.Storage, work Work[T]) (T, error) {
	var out T
	err := s.WithTx(ctx, func(tx storage.AllStorage) error {
		v, err := work(tx)
		if err != nil {
			return err
		}
		out = v

		return nil
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return out, nil
}

// UnitOfWork is the value-less form of Execute, for callers that only need
// the all-or-nothing guarantee.
type UnitOfWork interface {
	Do(ctx context.Context, work func(tx storage.AllStorage) error) error
}

type unitOfWork struct {
	storage storage.Storage
}

func New(s storage.Storage) UnitOfWork {
	return &unitOfWork{storage: s}
}

func (u *unitOfWork) Do(ctx context.Context, work func(tx storage.AllStorage) error) error {
	_, err := Execute(ctx, u.storage, func(tx storage.AllStorage) (struct{}, error) {
		return struct{}{}, work(tx)
	})

	return err
}
