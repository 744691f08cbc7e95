package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"moodmate/internal/api/response"
	"moodmate/pkg/types"
)

// logMoodRequest is the POST /moods body. Date defaults to today when
// omitted; ratings outside 1-5 are clamped, not rejected.
type logMoodRequest struct {
	Date    string `json:"date,omitempty"` // YYYY-MM-DD
	Rating  int    `json:"rating"`
	Details string `json:"details,omitempty"`
}

// handleLogMood records a mood for a day. Free-tier users get one summary
// per day (upsert); premium users log detailed sub-entries that are
// averaged into the summary.
func (r *Router) handleLogMood(w http.ResponseWriter, req *http.Request) {
	userID := chi.URLParam(req, "userID")

	var body logMoodRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.ErrorCodeBadRequest, "invalid JSON body", err.Error())
		return
	}
	if body.Rating == 0 {
		response.WriteError(w, http.StatusBadRequest, response.ErrorCodeValidationFailed, "rating is required")
		return
	}

	date := r.now().UTC()
	if body.Date != "" {
		parsed, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			response.WriteError(w, http.StatusBadRequest, response.ErrorCodeValidationFailed, "date must be YYYY-MM-DD", err.Error())
			return
		}
		date = parsed
	}

	rating := types.ClampRating(body.Rating)

	tier, err := r.entitlements.GetTier(req.Context(), userID)
	if err != nil {
		r.logger.Warn("entitlement lookup failed, assuming free tier", "user_id", userID, "error", err)
		tier = types.TierFree
	}

	var stored *types.MoodEntry
	if tier == types.TierPremium {
		stored, err = r.history.AddDetailedEntry(req.Context(), &types.DetailedMoodEntry{
			UserID:  userID,
			Date:    date,
			Rating:  rating,
			Details: body.Details,
		})
	} else {
		stored, err = r.history.UpsertEntry(req.Context(), &types.MoodEntry{
			UserID:  userID,
			Date:    date,
			Rating:  rating,
			Details: body.Details,
		})
	}
	if err != nil {
		r.logger.Error("failed to store mood entry", "user_id", userID, "error", err)
		response.WriteError(w, http.StatusInternalServerError, response.ErrorCodeInternalError, "failed to store mood entry")
		return
	}

	// The day's insight report is stale now.
	r.insights.Invalidate(req.Context(), userID)

	response.WriteSuccess(w, http.StatusCreated, stored)
}

// handleListMoods returns the user's recent summary entries, oldest first.
// The days query parameter defaults to 30.
func (r *Router) handleListMoods(w http.ResponseWriter, req *http.Request) {
	userID := chi.URLParam(req, "userID")

	days := 30
	if raw := req.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.WriteError(w, http.StatusBadRequest, response.ErrorCodeValidationFailed, "days must be a positive integer")
			return
		}
		days = parsed
	}

	entries, err := r.history.GetRecentEntries(req.Context(), userID, days)
	if err != nil {
		r.logger.Error("failed to list mood entries", "user_id", userID, "error", err)
		response.WriteError(w, http.StatusInternalServerError, response.ErrorCodeInternalError, "failed to list mood entries")
		return
	}
	if entries == nil {
		entries = []types.MoodEntry{}
	}

	response.WriteSuccess(w, http.StatusOK, entries)
}
