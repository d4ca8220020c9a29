package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbook/internal/db"
	"fitbook/internal/db/dbtest"
)

func userCount(t *testing.T, database *sqlx.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM users`))
	return n
}

func TestConn_ResolvesExecutor(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()

	assert.Same(t, database, db.Conn(ctx, database))

	conn, err := database.Connx(ctx)
	require.NoError(t, err)
	defer conn.Close()

	sessionCtx := db.WithSession(ctx, conn)
	got, ok := db.SessionFrom(sessionCtx)
	require.True(t, ok)
	assert.Same(t, conn, got)
	assert.Same(t, conn, db.Conn(sessionCtx, database))

	err = db.NewTransactor(database).WithinTx(sessionCtx, func(txCtx context.Context) error {
		_, isTx := db.Conn(txCtx, database).(*sqlx.Tx)
		assert.True(t, isTx)
		return nil
	})
	require.NoError(t, err)
}

func TestWithinTx_Commit(t *testing.T) {
	database := dbtest.Open(t)

	err := db.NewTransactor(database).WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := db.Conn(ctx, database).ExecContext(ctx, `INSERT INTO users (name, email, hashed_password) VALUES ('a', 'a@x.com', 'h')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, userCount(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database := dbtest.Open(t)
	boom := errors.New("boom")

	err := db.NewTransactor(database).WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := db.Conn(ctx, database).ExecContext(ctx, `INSERT INTO users (name, email, hashed_password) VALUES ('a', 'a@x.com', 'h')`)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, userCount(t, database))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database := dbtest.Open(t)

	assert.Panics(t, func() {
		_ = db.NewTransactor(database).WithinTx(context.Background(), func(ctx context.Context) error {
			_, err := db.Conn(ctx, database).ExecContext(ctx, `INSERT INTO users (name, email, hashed_password) VALUES ('a', 'a@x.com', 'h')`)
			require.NoError(t, err)
			panic("handler bug")
		})
	})
	assert.Equal(t, 0, userCount(t, database))
}

func TestWithinTx_Nested(t *testing.T) {
	database := dbtest.Open(t)
	tr := db.NewTransactor(database)

	err := tr.WithinTx(context.Background(), func(outer context.Context) error {
		outerTx := db.Conn(outer, database)
		return tr.WithinTx(outer, func(inner context.Context) error {
			assert.Same(t, outerTx, db.Conn(inner, database))
			return nil
		})
	})
	require.NoError(t, err)
}
