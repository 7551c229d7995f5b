package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	employeeRepo  employee.EmployeeRepository
	now           func() time.Time
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, employeeRepo employee.EmployeeRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		employeeRepo:  employeeRepo,
		now:           time.Now,
	}
}

// GetTodayStats returns the organization-wide today aggregate. The employee
// count and day aggregates run in parallel goroutines.
func (s *DashboardServiceImpl) GetTodayStats(ctx context.Context) (*dashboard.TodayStatsResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		totalEmployees int64
		dayStats       *dashboard.DayStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.employeeRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		dayStats, err = s.dashboardRepo.GetDayStats(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to get today attendance stats: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// NotMarked is reported as computed, even when inconsistent data
	// drives it negative.
	return &dashboard.TodayStatsResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   dayStats.Present,
		AbsentToday:    dayStats.Absent,
		NotMarked:      totalEmployees - dayStats.Present - dayStats.Absent,
	}, nil
}
