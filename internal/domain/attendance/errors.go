package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance already marked for this date")
	ErrFutureDate         = errors.New("cannot mark attendance for future dates")
)
