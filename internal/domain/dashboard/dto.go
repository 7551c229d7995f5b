package dashboard

// TodayStatsResponse is the organization-wide today-only aggregate.
// NotMarked is a display value: it can go negative when attendance rows
// reference phantom employees, and is reported as-is rather than clamped.
type TodayStatsResponse struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	AbsentToday    int64 `json:"absent_today"`
	NotMarked      int64 `json:"not_marked"`
}
