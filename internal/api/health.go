package api

import (
	"net/http"
	"runtime"
	"time"

	"moodmate/internal/api/response"
)

// healthStatus is the health check payload
type healthStatus struct {
	Status       string `json:"status"`
	Uptime       string `json:"uptime"`
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
}

// handleHealth reports liveness
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	response.WriteSuccess(w, http.StatusOK, healthStatus{
		Status:       "healthy",
		Uptime:       time.Since(r.startTime).Round(time.Second).String(),
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
	})
}
