package dashboard

import "context"

// DashboardService defines business logic for dashboard aggregates
type DashboardService interface {
	// GetTodayStats returns total/present/absent/not-marked counts for today
	GetTodayStats(ctx context.Context) (*TodayStatsResponse, error)
}
