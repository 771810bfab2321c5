package employee

import "time"

// Employee is a directory record. EmployeeID is the business key; ID is the
// storage identity and only used for ordering.
type Employee struct {
	ID         int64
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
}
