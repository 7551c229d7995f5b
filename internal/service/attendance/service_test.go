package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) GetAll(_ context.Context, _, _ int) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*employee.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.employees[id]; !ok {
		return false, nil
	}
	delete(r.employees, id)
	return true, nil
}

func (r *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

func (r *fakeEmployeeRepo) Search(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

type fakeAttendanceRepo struct {
	records map[int64]attendance.Attendance
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[int64]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range r.records {
		if existing.EmployeeID == a.EmployeeID && existing.Date.Equal(a.Date) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
	}
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	r.records[a.ID] = a
	return a, nil
}

func (r *fakeAttendanceRepo) GetByEmployee(_ context.Context, employeeID int64, startDate, endDate *time.Time) ([]attendance.Attendance, error) {
	var results []attendance.Attendance
	for _, a := range r.records {
		if a.EmployeeID != employeeID {
			continue
		}
		if startDate != nil && a.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && a.Date.After(*endDate) {
			continue
		}
		results = append(results, a)
	}
	return results, nil
}

func (r *fakeAttendanceRepo) GetByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	var results []attendance.Attendance
	for _, a := range r.records {
		if a.Date.Equal(date) {
			results = append(results, a)
		}
	}
	return results, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	for _, a := range r.records {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) UpdateStatus(_ context.Context, id int64, status attendance.Status) (*attendance.Attendance, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	a.Status = status
	r.records[id] = a
	return &a, nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *fakeAttendanceRepo) DeleteByEmployee(_ context.Context, employeeID int64) (int64, error) {
	var removed int64
	for id, a := range r.records {
		if a.EmployeeID == employeeID {
			delete(r.records, id)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeAttendanceRepo) GetAll(_ context.Context, skip, limit int, date *time.Time) ([]attendance.AttendanceWithEmployee, error) {
	var results []attendance.AttendanceWithEmployee
	for _, a := range r.records {
		if date != nil && !a.Date.Equal(*date) {
			continue
		}
		results = append(results, attendance.AttendanceWithEmployee{
			Attendance:   a,
			EmployeeName: "John Doe",
			EmployeeCode: "EMP-001",
			Department:   "Engineering",
		})
	}
	if skip >= len(results) {
		return nil, nil
	}
	results = results[skip:]
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (r *fakeAttendanceRepo) GetSummary(_ context.Context, employeeID int64) (attendance.SummaryStats, error) {
	var stats attendance.SummaryStats
	for _, a := range r.records {
		if a.EmployeeID != employeeID {
			continue
		}
		stats.TotalDays++
		if a.Status == attendance.StatusPresent {
			stats.PresentDays++
		}
	}
	stats.AbsentDays = stats.TotalDays - stats.PresentDays
	if stats.TotalDays > 0 {
		stats.Percentage = float64(stats.PresentDays) / float64(stats.TotalDays) * 100
	}
	return stats, nil
}

var testEmployee = employee.Employee{
	ID:           1,
	EmployeeCode: "EMP-001",
	FullName:     "John Doe",
	Email:        "john.doe@example.com",
	Department:   "Engineering",
	CreatedAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
}

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo) *AttendanceServiceImpl {
	svc := NewAttendanceService(attRepo, empRepo)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAttendanceService_MarkAttendance_Success(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee))

	result, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-15",
		Status:     "Present",
	})
	require.NoError(t, err)

	assert.NotZero(t, result.ID)
	assert.Equal(t, int64(1), result.EmployeeID)
	assert.Equal(t, "2024-01-15", result.Date)
	assert.Equal(t, "Present", result.Status)
}

func TestAttendanceService_MarkAttendance_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 99,
		Date:       "2024-01-15",
		Status:     "Present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_MarkAttendance_DuplicateDay(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee))

	req := attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-01-15", Status: "Present"}
	_, err := svc.MarkAttendance(context.Background(), req)
	require.NoError(t, err)

	req = attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-01-15", Status: "Absent"}
	_, err = svc.MarkAttendance(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)
}

func TestAttendanceService_MarkAttendance_FutureDateBackstop(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee))
	// Clock pinned before the requested date; DTO validation against the
	// wall clock passes, the service check must still reject it.
	svc.now = func() time.Time {
		return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	}

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-15",
		Status:     "Present",
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestAttendanceService_MarkAttendance_TodayEastOfUTC(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee))
	// Shortly after local midnight in a zone ahead of UTC the instant is
	// still the previous day in UTC; the local calendar date must count.
	ist := time.FixedZone("IST", 5*3600+1800)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 1, 0, 0, 0, ist)
	}

	result, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-15",
		Status:     "Present",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", result.Date)
}

func TestAttendanceService_MarkAttendance_TomorrowWestOfUTC(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee))
	// Late evening west of UTC the instant is already the next day in
	// UTC, but the local calendar still reads the 15th.
	pst := time.FixedZone("PST", -8*3600)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 23, 0, 0, 0, pst)
	}

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-16",
		Status:     "Present",
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestAttendanceService_GetEmployeeAttendance_Summary(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee))

	days := []attendance.Status{
		attendance.StatusPresent, attendance.StatusPresent,
		attendance.StatusPresent, attendance.StatusAbsent,
	}
	for i, status := range days {
		_, err := attRepo.Create(context.Background(), attendance.Attendance{
			EmployeeID: 1,
			Date:       time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC),
			Status:     status,
		})
		require.NoError(t, err)
	}

	result, err := svc.GetEmployeeAttendance(context.Background(), 1, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", result.Employee.EmployeeCode)
	assert.Len(t, result.AttendanceRecords, 4)
	assert.Equal(t, int64(4), result.Summary.TotalDays)
	assert.Equal(t, int64(3), result.Summary.PresentDays)
	assert.Equal(t, int64(1), result.Summary.AbsentDays)
	assert.InDelta(t, 75.0, result.Summary.AttendancePercentage, 0.001)
}

func TestAttendanceService_GetEmployeeAttendance_NoEntries(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee))

	result, err := svc.GetEmployeeAttendance(context.Background(), 1, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Summary.TotalDays)
	assert.Zero(t, result.Summary.AttendancePercentage)
}

func TestAttendanceService_GetEmployeeAttendance_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	_, err := svc.GetEmployeeAttendance(context.Background(), 7, nil, nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_GetEmployeeAttendance_DateRange(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee))

	for day := 1; day <= 10; day++ {
		_, err := attRepo.Create(context.Background(), attendance.Attendance{
			EmployeeID: 1,
			Date:       time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	result, err := svc.GetEmployeeAttendance(context.Background(), 1, &start, &end)
	require.NoError(t, err)

	// Bounds are inclusive.
	assert.Len(t, result.AttendanceRecords, 3)
}

func TestAttendanceService_UpdateStatus(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee))

	created, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 1,
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	result, err := svc.UpdateStatus(context.Background(), created.ID, attendance.UpdateAttendanceRequest{Status: "Absent"})
	require.NoError(t, err)
	assert.Equal(t, "Absent", result.Status)

	// Status transitions freely back.
	result, err = svc.UpdateStatus(context.Background(), created.ID, attendance.UpdateAttendanceRequest{Status: "Present"})
	require.NoError(t, err)
	assert.Equal(t, "Present", result.Status)
}

func TestAttendanceService_UpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	_, err := svc.UpdateStatus(context.Background(), 404, attendance.UpdateAttendanceRequest{Status: "Present"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	_, err := svc.UpdateStatus(context.Background(), 1, attendance.UpdateAttendanceRequest{Status: "Vacation"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAttendanceService_DeleteAttendance_NotFound(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	err := svc.DeleteAttendance(context.Background(), 404)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_ListAttendance_Enriched(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee))

	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 1,
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	result, err := svc.ListAttendance(context.Background(), attendance.AttendanceFilter{})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "John Doe", result.Records[0].EmployeeName)
	assert.Equal(t, "EMP-001", result.Records[0].EmployeeCode)
	assert.Equal(t, "Engineering", result.Records[0].Department)
	assert.Equal(t, int64(1), result.Total)
}
