package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// IsValid reports whether s is one of the two closed status variants.
func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
}

// AttendanceWithEmployee carries the owning employee's display fields
// alongside the entry, for list views.
type AttendanceWithEmployee struct {
	Attendance
	EmployeeName string
	EmployeeCode string
	Department   string
}

// SummaryStats aggregates one employee's attendance history.
type SummaryStats struct {
	TotalDays   int64
	PresentDays int64
	AbsentDays  int64
	Percentage  float64
}
