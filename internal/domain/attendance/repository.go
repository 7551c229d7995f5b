package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create persists a new entry. A (employee_id, date) unique violation
	// surfaces as ErrAttendanceExists, a missing employee foreign key as
	// employee.ErrEmployeeNotFound.
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	// GetByEmployee returns entries for one employee, optionally bounded
	// inclusively by startDate/endDate, ordered by date descending.
	GetByEmployee(ctx context.Context, employeeID int64, startDate, endDate *time.Time) ([]Attendance, error)
	// GetByDate returns all entries for one calendar date.
	GetByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	// GetByEmployeeAndDate returns nil when no entry exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)
	// UpdateStatus sets the status of an entry and returns the updated row,
	// or nil when the entry does not exist.
	UpdateStatus(ctx context.Context, id int64, status Status) (*Attendance, error)
	// Delete removes the entry and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
	// DeleteByEmployee removes all entries owned by one employee and
	// returns the number of rows removed.
	DeleteByEmployee(ctx context.Context, employeeID int64) (int64, error)
	// GetAll returns entries joined with the owning employee's display
	// fields, optionally filtered to one date, ordered by date descending.
	GetAll(ctx context.Context, skip, limit int, date *time.Time) ([]AttendanceWithEmployee, error)
	// GetSummary aggregates total/present counts for one employee.
	GetSummary(ctx context.Context, employeeID int64) (SummaryStats, error)
}
