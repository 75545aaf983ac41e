package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"syscall"
	"testing"

	domainerrors "destinos/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refusedDial() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "refused dial", err: refusedDial(), want: true},
		{name: "wrapped refused dial", err: errors.Wrap(refusedDial(), "failed to begin transaction"), want: true},
		{name: "bad conn", err: driver.ErrBadConn, want: true},
		{name: "pgconn connect failure", err: errors.New("failed to connect to `user=destinos database=destinos`: server error"), want: true},
		{name: "connection exception class", err: errors.New("ERROR: terminating connection (SQLSTATE 08006)"), want: true},
		{name: "admin shutdown", err: errors.New("FATAL: terminating connection due to administrator command (SQLSTATE 57P01)"), want: true},
		{name: "unique violation", err: errors.New("ERROR: duplicate key value (SQLSTATE 23505)"), want: false},
		{name: "canceled", err: context.Canceled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConnectionError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("connection failure is unavailable", func(t *testing.T) {
		cause := refusedDial()
		err := storeError(cause, "failed to sum points")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 503, appErr.HTTPCode())
		assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
		assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
		assert.True(t, errors.Is(err, syscall.ECONNREFUSED))
	})

	t.Run("statement failure is a database error", func(t *testing.T) {
		err := storeError(errors.New("ERROR: column \"x\" does not exist (SQLSTATE 42703)"), "failed to list rewards")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.HTTPCode())
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
		assert.False(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	})
}

func TestTransactionError(t *testing.T) {
	unreachable := transactionError(refusedDial(), "failed to begin transaction")
	assert.True(t, errors.Is(unreachable, domainerrors.ErrStoreUnavailable))

	serialization := transactionError(errors.New("ERROR: could not serialize access (SQLSTATE 40001)"), "failed to commit transaction")
	assert.True(t, errors.Is(serialization, domainerrors.ErrTransactionFailed))
	assert.False(t, errors.Is(serialization, domainerrors.ErrStoreUnavailable))
}
