package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
)

func newDB(t *testing.T) *dbmetrics.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return dbmetrics.Wrap(db, nil)
}

func countItems(t *testing.T, db *dbmetrics.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestDo_CommitRunsHooks(t *testing.T) {
	db := newDB(t)
	m := NewTransactionManager(db)

	var fired []string
	err := m.Do(context.Background(), func(ctx context.Context) error {
		require.True(t, dbmetrics.IsInTransaction(ctx))

		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
		require.NoError(t, err)

		RunAfterCommit(ctx, func() { fired = append(fired, "first") })

		// Вложенный Do переиспользует транзакцию и ее хуки
		return m.Do(ctx, func(inner context.Context) error {
			RunAfterCommit(inner, func() { fired = append(fired, "second") })
			assert.Empty(t, fired, "hooks must wait for commit")
			return nil
		})
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, 1, countItems(t, db))
}

func TestDo_RollbackDropsHooks(t *testing.T) {
	db := newDB(t)
	m := NewTransactionManager(db)
	errBoom := errors.New("boom")

	fired := false
	err := m.Do(context.Background(), func(ctx context.Context) error {
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
		require.NoError(t, err)
		RunAfterCommit(ctx, func() { fired = true })
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.False(t, fired)
	assert.Equal(t, 0, countItems(t, db))
}

func TestRunAfterCommit_OutsideTransaction(t *testing.T) {
	fired := false
	RunAfterCommit(context.Background(), func() { fired = true })
	assert.True(t, fired)
}
