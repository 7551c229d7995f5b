package postgresql

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, date, status, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// translateAttendancePgError maps constraint violations the pre-checks can
// race against: the (employee_id, date) unique pair and the employee
// foreign key.
func translateAttendancePgError(err error) error {
	code, constraint := pgErrorCode(err)
	switch {
	case code == uniqueViolationCode && constraint == attendanceDateConstraint:
		return attendance.ErrAttendanceExists
	case code == foreignKeyViolationCode && constraint == attendanceEmployeeFK:
		return employee.ErrEmployeeNotFound
	default:
		return err
	}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.EmployeeID, newAttendance.Date, newAttendance.Status,
	))
	if err != nil {
		return attendance.Attendance{}, translateAttendancePgError(err)
	}
	return created, nil
}

// GetByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployee(ctx context.Context, employeeID int64, startDate, endDate *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by employee: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE date = $1`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no existing attendance for this pair
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &att, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateStatus(ctx context.Context, id int64, status attendance.Status) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET status = $1
		WHERE id = $2
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update attendance status: %w", err)
	}
	return &att, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance by employee: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetAll(ctx context.Context, skip, limit int, date *time.Time) ([]attendance.AttendanceWithEmployee, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			   e.full_name, e.employee_code, e.department
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE ($1::date IS NULL OR a.date = $1)
		ORDER BY a.date DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := q.Query(ctx, query, date, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceWithEmployee
	for rows.Next() {
		var rec attendance.AttendanceWithEmployee
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt,
			&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetSummary implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetSummary(ctx context.Context, employeeID int64) (attendance.SummaryStats, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*) AS total,
			   COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present
		FROM attendance
		WHERE employee_id = $1
	`

	var stats attendance.SummaryStats
	err := q.QueryRow(ctx, query, employeeID).Scan(&stats.TotalDays, &stats.PresentDays)
	if err != nil {
		return attendance.SummaryStats{}, fmt.Errorf("failed to get attendance summary: %w", err)
	}

	stats.AbsentDays = stats.TotalDays - stats.PresentDays
	if stats.TotalDays > 0 {
		stats.Percentage = math.Round(float64(stats.PresentDays)/float64(stats.TotalDays)*100*100) / 100
	}
	return stats, nil
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
