package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

const schema = `
	CREATE TABLE IF NOT EXISTS employees (
		id          BIGSERIAL PRIMARY KEY,
		employee_id VARCHAR(50)  NOT NULL,
		full_name   VARCHAR(100) NOT NULL,
		email       VARCHAR(100) NOT NULL,
		department  VARCHAR(100) NOT NULL,
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		CONSTRAINT employees_employee_id_key UNIQUE (employee_id),
		CONSTRAINT employees_email_key UNIQUE (email)
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id          BIGSERIAL PRIMARY KEY,
		employee_id VARCHAR(50) NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE,
		date        VARCHAR(10) NOT NULL,
		status      VARCHAR(10) NOT NULL CHECK (status IN ('Present', 'Absent')),
		marked_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT attendance_employee_date_key UNIQUE (employee_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date);
	CREATE INDEX IF NOT EXISTS idx_attendance_marked_at ON attendance (marked_at DESC);
`

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
