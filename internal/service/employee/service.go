package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/postgresql"
)

const timestampFormat = "2006-01-02 15:04:05"

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var updatedAt *string
	if emp.UpdatedAt != nil {
		s := emp.UpdatedAt.Format(timestampFormat)
		updatedAt = &s
	}

	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Department:   emp.Department,
		CreatedAt:    emp.CreatedAt.Format(timestampFormat),
		UpdatedAt:    updatedAt,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	existing, err = s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	// The repository translates a unique violation that races past the
	// pre-checks back into the same conflict errors.
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return mapEmployeeToResponse(*emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 100
	}

	var (
		employees []employee.Employee
		err       error
	)
	if filter.Search != "" {
		employees, err = s.employeeRepo.Search(ctx, filter.Search)
	} else {
		employees, err = s.employeeRepo.GetAll(ctx, filter.Skip, filter.Limit)
	}
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	results := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		results = append(results, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{Employees: results, Total: total}, nil
}

// DeleteEmployee implements employee.EmployeeService. The employee's
// attendance entries are removed in the same transaction.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		removed, err := s.attendanceRepo.DeleteByEmployee(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete attendance for employee: %w", err)
		}

		found, err := s.employeeRepo.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if !found {
			return employee.ErrEmployeeNotFound
		}

		if removed > 0 {
			slog.Info("removed attendance entries with employee", "employee_id", id, "entries", removed)
		}
		return nil
	})
}
