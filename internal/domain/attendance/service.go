package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance validates the request, confirms the employee exists
	// and no entry exists for the (employee, date) pair, then persists it.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance lists entries enriched with employee display fields
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetEmployeeAttendance returns one employee's entries plus summary
	GetEmployeeAttendance(ctx context.Context, employeeID int64, startDate, endDate *time.Time) (EmployeeAttendanceResponse, error)

	// UpdateStatus changes the status of an existing entry
	UpdateStatus(ctx context.Context, id int64, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes one entry by id
	DeleteAttendance(ctx context.Context, id int64) error
}
