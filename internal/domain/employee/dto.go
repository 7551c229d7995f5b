package employee

import (
	"strings"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
}

// Validate normalizes the request in place (trimmed fields, lowercased email)
// and reports every failing field.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)

	switch {
	case r.EmployeeCode == "":
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID is required"})
	case len(r.EmployeeCode) > 50:
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID must be at most 50 characters"})
	case !validator.IsValidEmployeeCode(r.EmployeeCode):
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID can only contain letters, numbers, hyphens, and underscores"})
	}

	switch {
	case r.FullName == "":
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name cannot be empty"})
	case len(r.FullName) < 2:
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name must be at least 2 characters"})
	case len(r.FullName) > 100:
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name must be at most 100 characters"})
	}

	switch {
	case r.Email == "":
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	case len(r.Email) > 100:
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be at most 100 characters"})
	case !validator.IsValidEmail(r.Email):
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	switch {
	case r.Department == "":
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department cannot be empty"})
	case len(r.Department) > 50:
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be at most 50 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Skip   int
	Limit  int
	Search string
}

type EmployeeResponse struct {
	ID           int64   `json:"id"`
	EmployeeCode string  `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Department   string  `json:"department"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    *string `json:"updated_at,omitempty"`
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
}
