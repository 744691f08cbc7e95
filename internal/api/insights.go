package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"moodmate/internal/api/response"
)

// handleInsights returns the user's analysis report. Insufficient history is
// a 200 with sufficient=false and progress counters, never an error.
func (r *Router) handleInsights(w http.ResponseWriter, req *http.Request) {
	userID := chi.URLParam(req, "userID")

	report, err := r.insights.Get(req.Context(), userID)
	if err != nil {
		r.logger.Error("insight computation failed", "user_id", userID, "error", err)
		response.WriteError(w, http.StatusServiceUnavailable, response.ErrorCodeServiceUnavailable, "mood history is unavailable")
		return
	}

	response.WriteSuccess(w, http.StatusOK, report)
}
