package http

import (
	"net/http"

	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
)

// HealthCheck reports service liveness; no core logic involved.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"status":  "healthy",
		"service": "hrms-lite-api",
	})
}
