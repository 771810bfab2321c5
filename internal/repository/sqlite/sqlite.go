// Package sqlite implements the domain repositories on an embedded SQLite
// database. It mirrors the postgresql package and is used for local runs
// (DB_DRIVER=sqlite) and for tests against ":memory:".
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS employees (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT     NOT NULL UNIQUE,
		full_name   TEXT     NOT NULL,
		email       TEXT     NOT NULL UNIQUE,
		department  TEXT     NOT NULL,
		created_at  DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT     NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE,
		date        TEXT     NOT NULL,
		status      TEXT     NOT NULL CHECK (status IN ('Present', 'Absent')),
		marked_at   DATETIME NOT NULL,
		UNIQUE (employee_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date);
	CREATE INDEX IF NOT EXISTS idx_attendance_marked_at ON attendance (marked_at DESC);
`

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *database.SQLiteDB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// withTransaction executes fn inside a database transaction
func withTransaction(ctx context.Context, db *database.SQLiteDB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("rollback error during panic recovery", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// constraintError unwraps err into a sqlite3.Error with the given extended code.
func constraintError(err error, code sqlite3.ErrNoExtended) (sqlite3.Error, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == code {
		return sqliteErr, true
	}
	return sqlite3.Error{}, false
}
