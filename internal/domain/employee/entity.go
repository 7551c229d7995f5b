package employee

import "time"

type Employee struct {
	ID           int64
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
