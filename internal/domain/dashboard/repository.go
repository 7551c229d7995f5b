package dashboard

import (
	"context"
	"time"
)

// DayStats combines present/absent counts for one calendar date
type DayStats struct {
	Present int64
	Absent  int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetDayStats returns present/absent counts for a date in a single query
	GetDayStats(ctx context.Context, date time.Time) (*DayStats, error)
}
