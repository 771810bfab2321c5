package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates and stores a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees returns all employees, most recently created first
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by business key
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee together with its attendance records
	DeleteEmployee(ctx context.Context, employeeID string) (DeleteEmployeeResponse, error)
}
