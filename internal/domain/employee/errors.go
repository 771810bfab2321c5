package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee ID already exists")
	ErrEmailExists      = errors.New("email already registered")
	// ErrEmployeeExists is reported when the store rejects an insert on a
	// uniqueness constraint it cannot attribute to a single field.
	ErrEmployeeExists = errors.New("employee with this ID or email already exists")
)
