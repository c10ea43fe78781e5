package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/boardsvc/internal/apperrors"
	"github.com/nkiryanov/boardsvc/internal/repository"
	"github.com/nkiryanov/boardsvc/internal/testutil"
)

func Test_StorageInTx(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	t.Run("commit on success", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			s := NewStorage(tx)

			err := s.InTx(t.Context(), func(s repository.Storage) error {
				_, err := s.User().CreateUser(t.Context(), "committed", "hash")
				return err
			})
			require.NoError(t, err)

			_, err = s.User().GetUserByName(t.Context(), "committed")
			require.NoError(t, err, "user created in committed tx should be visible")
		})
	})

	t.Run("rollback on error", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			s := NewStorage(tx)
			boom := errors.New("boom")

			err := s.InTx(t.Context(), func(s repository.Storage) error {
				_, err := s.User().CreateUser(t.Context(), "rolledback", "hash")
				require.NoError(t, err)
				return boom
			})
			require.ErrorIs(t, err, boom)

			_, err = s.User().GetUserByName(t.Context(), "rolledback")
			require.ErrorIs(t, err, apperrors.ErrUserNotFound, "user created in rolled back tx should not be visible")
		})
	})
}
