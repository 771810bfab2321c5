package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee. Unique violations are returned as
	// ErrEmployeeIDExists, ErrEmailExists or ErrEmployeeExists.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByEmployeeID returns ErrEmployeeNotFound when no row matches.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns every employee, newest first.
	List(ctx context.Context) ([]Employee, error)

	// Delete removes the employee and all of its attendance records atomically.
	Delete(ctx context.Context, employeeID string) error
}
