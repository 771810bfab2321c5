package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_id, full_name, email, department, created_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	))
	if err != nil {
		if pgErr, ok := pgError(err, uniqueViolation); ok {
			switch pgErr.ConstraintName {
			case "employees_employee_id_key":
				return employee.Employee{}, employee.ErrEmployeeIDExists
			case "employees_email_key":
				return employee.Employee{}, employee.ErrEmailExists
			default:
				return employee.Employee{}, employee.ErrEmployeeExists
			}
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return found, nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return e.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`, employeeID)
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return e.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email)
}

func (e *employeeRepositoryImpl) exists(ctx context.Context, query string, arg string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	if err := q.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC, id DESC`

	rows, err := q.Query(ctx, query)
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

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Delete implements employee.EmployeeRepository.
// Attendance rows are removed explicitly in the same transaction as the
// employee, so the result does not depend on the FK cascade being present.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	return WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		q := GetQuerier(txCtx, e.db)

		if _, err := q.Exec(txCtx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID); err != nil {
			return fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
		if err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}
