package attendance

import (
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`

	// Set by Validate.
	ParsedDate   time.Time `json:"-"`
	ParsedStatus Status    `json:"-"`
}

// Validate parses the date and status and rejects future-dated entries.
func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID must be a positive integer"})
	}

	if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	} else {
		// Parsed dates are UTC midnight; build today from the server's
		// local calendar date so the comparison is day against day.
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.After(today) {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "cannot mark attendance for future dates"})
		}
		r.ParsedDate = date
	}

	status := Status(r.Status)
	if !status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Present or Absent"})
	} else {
		r.ParsedStatus = status
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	Status string `json:"status"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	if !Status(r.Status).IsValid() {
		return validator.ValidationErrors{
			{Field: "status", Message: "status must be Present or Absent"},
		}
	}
	return nil
}

type AttendanceFilter struct {
	Skip  int
	Limit int
	Date  *time.Time
}

type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type AttendanceWithEmployeeResponse struct {
	AttendanceResponse
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

type ListAttendanceResponse struct {
	Records []AttendanceWithEmployeeResponse `json:"records"`
	Total   int64                            `json:"total"`
}

type SummaryResponse struct {
	TotalDays            int64   `json:"total_days"`
	PresentDays          int64   `json:"present_days"`
	AbsentDays           int64   `json:"absent_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// EmployeeAttendanceResponse bundles an employee's history with its summary.
type EmployeeAttendanceResponse struct {
	Employee          employee.EmployeeResponse `json:"employee"`
	AttendanceRecords []AttendanceResponse      `json:"attendance_records"`
	Summary           SummaryResponse           `json:"summary"`
}
