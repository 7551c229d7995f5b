package http

import (
	"net/http"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetTodayStats returns organization-wide today-only counts
	GetTodayStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetTodayStats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) GetTodayStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTodayStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
