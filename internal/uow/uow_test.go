package uow_test

import (
	"context"
	"errors"
	"registry/internal/uow"
	"registry/pkg/domain"
	"registry/pkg/storage"
	mockstorage "registry/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passThroughTx mimics a storage WithTx: it hands tx to the callback and
// returns its error unchanged.
func passThroughTx(tx storage.AllStorage) func(context.Context, func(storage.AllStorage) error) error {
	return func(_ context.Context, cb func(storage.AllStorage) error) error {
		return cb(tx)
	}
}

func TestExecute_ReturnsWorkValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	s.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(passThroughTx(tx))
	tx.EXPECT().ImageByID(ctx, domain.ImageID(3)).Return(&domain.Image{ID: 3, Link: "a"}, nil)

	img, err := uow.Execute(ctx, s, func(tx storage.AllStorage) (*domain.Image, error) {
		return tx.ImageByID(ctx, 3)
	})
	require.NoError(t, err)
	require.Equal(t, domain.ImageID(3), img.ID)
}

func TestExecute_PropagatesOriginalErrorAndZeroValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	boom := errors.New("boom")

	s.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(passThroughTx(tx))

	v, err := uow.Execute(ctx, s, func(storage.AllStorage) (int, error) {
		return 42, boom
	})
	require.Same(t, boom, err)
	require.Zero(t, v)
}

func TestExecute_CommitFailureDiscardsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	commitErr := errors.New("serialization failure")

	s.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, cb func(storage.AllStorage) error) error {
		require.NoError(t, cb(tx))

		return commitErr
	})

	v, err := uow.Execute(ctx, s, func(storage.AllStorage) (string, error) {
		return "done", nil
	})
	require.ErrorIs(t, err, commitErr)
	require.Empty(t, v)
}

func TestUnitOfWork_Do(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	s.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(passThroughTx(tx)).Times(2)

	called := false
	require.NoError(t, uow.New(s).Do(ctx, func(got storage.AllStorage) error {
		called = true
		require.Same(t, tx, got)

		return nil
	}))
	require.True(t, called)

	require.ErrorIs(t, uow.New(s).Do(ctx, func(storage.AllStorage) error {
		return storage.ErrAlreadyInTx
	}), storage.ErrAlreadyInTx)
}
