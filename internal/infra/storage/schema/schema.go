package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
)

var (
	//go:embed postgres.sql
	postgresSchema string

	//go:embed sqlite.sql
	sqliteSchema string
)

// Apply создает таблицы и индексы, если их еще нет.
// Все выражения идемпотентны (IF NOT EXISTS), поэтому повторный запуск безопасен.
func Apply(ctx context.Context, db dbmetrics.DBExecutor, dialect psqlbuilder.Dialect) error {
	var script string
	switch dialect {
	case psqlbuilder.DialectPostgres:
		script = postgresSchema
	case psqlbuilder.DialectSQLite:
		script = sqliteSchema
	default:
		return fmt.Errorf("schema: unsupported dialect %q", dialect)
	}

	for i, stmt := range splitStatements(script) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: statement %d failed: %w", i+1, err)
		}
	}
	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	statements := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
