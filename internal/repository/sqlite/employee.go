package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/mattn/go-sqlite3"
)

type employeeRepository struct {
	db  *database.SQLiteDB
	now func() time.Time
}

func NewEmployeeRepository(db *database.SQLiteDB) employee.EmployeeRepository {
	return &employeeRepository{db: db, now: time.Now}
}

const employeeColumns = `id, employee_id, full_name, email, department, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt)
	return emp, err
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	created := newEmployee
	created.CreatedAt = r.now().UTC()

	query := `
		INSERT INTO employees (employee_id, full_name, email, department, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		created.EmployeeID, created.FullName, created.Email, created.Department, created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		if sqliteErr, ok := constraintError(err, sqlite3.ErrConstraintUnique); ok {
			msg := sqliteErr.Error()
			switch {
			case strings.Contains(msg, "employees.employee_id"):
				return employee.Employee{}, employee.ErrEmployeeIDExists
			case strings.Contains(msg, "employees.email"):
				return employee.Employee{}, employee.ErrEmailExists
			default:
				return employee.Employee{}, employee.ErrEmployeeExists
			}
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = ?`

	found, err := scanEmployee(r.db.QueryRowContext(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return found, nil
}

func (r *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = ?)`, employeeID)
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = ?)`, email)
}

func (r *employeeRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	return withTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM attendance WHERE employee_id = ?`, employeeID); err != nil {
			return fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = ?`, employeeID)
		if err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}
