package employee

import "context"

type EmployeeRepository interface {
	// Create persists a new employee and returns it with the assigned
	// id and timestamps. Unique violations surface as ErrEmployeeCodeExists
	// or ErrEmailExists.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// GetAll returns employees ordered by creation time descending.
	GetAll(ctx context.Context, skip, limit int) ([]Employee, error)
	// GetByID returns nil when no employee matches.
	GetByID(ctx context.Context, id int64) (*Employee, error)
	// GetByEmployeeCode returns nil when no employee matches. Lookup is
	// case-sensitive, codes are unique on their exact string.
	GetByEmployeeCode(ctx context.Context, code string) (*Employee, error)
	// GetByEmail returns nil when no employee matches. Lookup is
	// case-insensitive, stored emails are lowercased.
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	// Delete removes the employee row and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	// Search matches full name, employee code, or department as a
	// case-insensitive substring.
	Search(ctx context.Context, query string) ([]Employee, error)
}
