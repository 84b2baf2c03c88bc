package testfixtures

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-SlotService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
)

// SQLite тестовая база на файле во временной директории теста
type SQLite struct {
	DB      *dbmetrics.DB
	Builder psqlbuilder.Builder
}

// NewSQLite открывает новую базу, применяет схему и закрывает ее по окончании теста.
// Пул ограничен одним соединением: SQLite сериализует запись, а конкурентные
// транзакции на разных соединениях получали бы SQLITE_BUSY.
func NewSQLite(tb testing.TB) *SQLite {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "slots.db") + "?_time_format=sqlite"
	db, err := sql.Open("sqlite", path)
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = db.Close() })

	if err := schema.Apply(context.Background(), db, psqlbuilder.DialectSQLite); err != nil {
		tb.Fatalf("apply schema: %v", err)
	}

	return &SQLite{
		DB:      dbmetrics.Wrap(db, nil),
		Builder: psqlbuilder.MustNew(psqlbuilder.DialectSQLite),
	}
}
