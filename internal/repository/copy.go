package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/news-board-api/internal/database"
)

// copyIn bulk loads rows into table with PostgreSQL COPY inside a single
// transaction. afterSQL, when non-empty, runs in the same transaction once the
// rows are in (used to move serial sequences past explicitly seeded ids).
func copyIn(ctx context.Context, db *database.DB, table string, columns []string, rows [][]interface{}, afterSQL string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, fmt.Errorf("prepare copy into %s: %w", table, err)
	}

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			stmt.Close()
			return 0, fmt.Errorf("copy row %d into %s: %w", i, table, err)
		}
	}

	// Execute the COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("flush copy into %s: %w", table, err)
	}
	if err := stmt.Close(); err != nil {
		return 0, err
	}

	if afterSQL != "" {
		if _, err := tx.ExecContext(ctx, afterSQL); err != nil {
			return 0, fmt.Errorf("finalize %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// syncSequenceSQL moves a serial column's sequence past the largest stored id
func syncSequenceSQL(table, column string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%[1]s', '%[2]s'), COALESCE(MAX(%[2]s), 1), MAX(%[2]s) IS NOT NULL) FROM %[1]s",
		table, column,
	)
}
