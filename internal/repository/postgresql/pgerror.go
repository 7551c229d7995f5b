package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// Constraint names declared in the migrations.
const (
	employeeCodeConstraint   = "employees_employee_code_key"
	employeeEmailConstraint  = "employees_email_key"
	attendanceDateConstraint = "unique_employee_date"
	attendanceEmployeeFK     = "attendance_employee_id_fkey"
)

// pgErrorCode extracts the SQLSTATE code and constraint name from err, or
// empty strings when err is not a *pgconn.PgError.
func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}
