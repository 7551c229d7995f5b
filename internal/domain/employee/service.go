package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates the request, enforces code/email uniqueness
	// and persists the new employee.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by internal id
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// ListEmployees lists employees (search overrides pagination)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// DeleteEmployee removes the employee and all of its attendance entries
	DeleteEmployee(ctx context.Context, id int64) error
}
