package exec

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// classify maps a transport error onto the Kind taxonomy. The original error
// stays wrapped; classification only decides whether the failure came from
// the environment or from the statement itself.
func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindConnection
	}
	if errors.Is(err, driver.ErrBadConn) {
		return KindConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// SQLSTATE class 08 is connection_exception, 28 is invalid
		// authorization; everything else the server said about the
		// statement itself.
		if len(pgErr.Code) >= 2 {
			if class := pgErr.Code[:2]; class == "08" || class == "28" {
				return KindConnection
			}
		}
		return KindQuery
	}
	if pgconn.Timeout(err) {
		return KindConnection
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1040, 1044, 1045, 1152, 1203: // too many connections, access denied, aborted, user limit
			return KindConnection
		}
		return KindQuery
	}
	if errors.Is(err, mysql.ErrInvalidConn) {
		return KindConnection
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrAuth, sqlite3.ErrPerm, sqlite3.ErrBusy, sqlite3.ErrLocked:
			return KindConnection
		}
		return KindQuery
	}

	// database/sql surfaces some driver dial failures as plain strings.
	// Matching a bare "timeout" here would misfile server-side statement
	// timeouts, which the SQLSTATE checks above already classify.
	if strings.Contains(err.Error(), "connection refused") {
		return KindConnection
	}

	return KindQuery
}
