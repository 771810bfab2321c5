package employee

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

const (
	maxEmployeeIDLength = 50
	maxNameLength       = 100
	maxEmailLength      = 100
	maxDepartmentLength = 100
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Validate trims every field, lower-cases the email and checks the result.
func (r *CreateEmployeeRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)

	var errs validator.ValidationErrors

	requiredText := []struct {
		field string
		value string
		max   int
	}{
		{"employee_id", r.EmployeeID, maxEmployeeIDLength},
		{"full_name", r.FullName, maxNameLength},
		{"department", r.Department, maxDepartmentLength},
	}
	for _, f := range requiredText {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		} else if validator.ExceedsLength(f.value, f.max) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " must not exceed " + strconv.Itoa(f.max) + " characters",
			})
		}
	}

	switch {
	case validator.IsEmpty(r.Email):
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	case validator.ExceedsLength(r.Email, maxEmailLength):
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed " + strconv.Itoa(maxEmailLength) + " characters",
		})
	case !validator.IsValidEmail(r.Email):
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type DeleteEmployeeResponse struct {
	Message string `json:"message"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
