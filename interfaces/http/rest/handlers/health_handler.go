package handlers

import (
	"net/http"

	"textanalysis/pkg/common"
	"textanalysis/pkg/utils"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	_ = common.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: utils.NowISO8601(),
	})
}

// Ready handles GET /ready. The service has no dependencies that must be up
// before it can answer.
func Ready(w http.ResponseWriter, r *http.Request) {
	_ = common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
