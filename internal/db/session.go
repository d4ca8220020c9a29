package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Executor is the query surface shared by *sqlx.DB, *sqlx.Conn and *sqlx.Tx.
type Executor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

type sessionKey struct{}

type txKey struct{}

// WithSession binds a request-scoped connection to ctx.
func WithSession(ctx context.Context, conn *sqlx.Conn) context.Context {
	return context.WithValue(ctx, sessionKey{}, conn)
}

func SessionFrom(ctx context.Context) (*sqlx.Conn, bool) {
	conn, ok := ctx.Value(sessionKey{}).(*sqlx.Conn)
	return conn, ok && conn != nil
}

// Conn returns the executor for ctx: the open transaction, else the request
// session, else the pool.
func Conn(ctx context.Context, pool *sqlx.DB) Executor {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	if conn, ok := SessionFrom(ctx); ok {
		return conn
	}
	return pool
}

// Transactor runs a function inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) Transactor {
	return &transactor{db: db}
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
// Nested calls join the outer transaction.
func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return fn(ctx)
	}

	var (
		tx  *sqlx.Tx
		err error
	)
	if conn, ok := SessionFrom(ctx); ok {
		tx, err = conn.BeginTxx(ctx, nil)
	} else {
		tx, err = t.db.BeginTxx(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
