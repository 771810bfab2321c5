package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

var validStatuses = []string{string(StatusPresent), string(StatusAbsent)}

// Attendance is one mark per employee per calendar day. Date is stored as
// YYYY-MM-DD text so range filters compare lexically.
type Attendance struct {
	ID         int64
	EmployeeID string
	Date       string
	Status     Status
	MarkedAt   time.Time
}

// AttendanceWithEmployee is the read-side join with the employee directory.
type AttendanceWithEmployee struct {
	Attendance
	EmployeeName string
}

type StatusCounts struct {
	Present int64
	Absent  int64
}
