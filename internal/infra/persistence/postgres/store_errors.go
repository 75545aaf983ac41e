package postgres

import (
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"

	domainerrors "destinos/internal/domain/errors"

	"github.com/pkg/errors"
)

// SQLSTATE class 08 covers connection exceptions; 57P01 and 57P03 are server shutdown and startup.
const (
	sqlStateClassConnection = "08"
	sqlStateAdminShutdown   = "57P01"
	sqlStateCannotConnect   = "57P03"
)

// storeError classifies a driver failure: connection failures become STORE_UNAVAILABLE,
// anything else is a failed statement.
func storeError(err error, details string) error {
	if isConnectionError(err) {
		return domainerrors.NewStoreError(domainerrors.ErrStoreUnavailable, err, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// transactionError classifies a failed BEGIN or COMMIT.
func transactionError(err error, details string) error {
	if isConnectionError(err) {
		return domainerrors.NewStoreError(domainerrors.ErrStoreUnavailable, err, details)
	}

	return domainerrors.NewStoreError(domainerrors.ErrTransactionFailed, err, details)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	if hasSQLState(err, sqlStateClassConnection) || hasSQLState(err, sqlStateAdminShutdown) || hasSQLState(err, sqlStateCannotConnect) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "failed to connect") || strings.Contains(msg, "connection refused")
}
