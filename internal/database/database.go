package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DSN assembles a PostgreSQL connection string. A non-empty databaseURL
// (cloud platforms hand out a single URL) wins over the discrete parameters.
func DSN(databaseURL, host, port, name, user, password string) string {
	if databaseURL != "" {
		return databaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, name)
}

// Open creates the connection pool without dialing; the first statement
// establishes the first connection. Pool saturation surfaces to callers as
// an acquisition error, there is no queuing beyond database/sql's own.
func Open(dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	return db, nil
}

// IsUnavailable reports whether err means the database could not be
// reached at all, as opposed to a statement failing. Handlers map these
// to 503 instead of 500.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
