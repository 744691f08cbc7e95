package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"moodmate/internal/api/response"
	"moodmate/internal/catalog"
	"moodmate/internal/recommend"
)

// recommendationItem is the wire shape of one recommendation
type recommendationItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
}

// handleRecommendations returns the recommendation list for the user. The
// kind query parameter selects the catalog and defaults to exercises.
func (r *Router) handleRecommendations(w http.ResponseWriter, req *http.Request) {
	userID := chi.URLParam(req, "userID")

	kind := recommend.Kind(req.URL.Query().Get("kind"))
	if kind == "" {
		kind = recommend.KindExercises
	}
	if !kind.Valid() {
		response.WriteError(w, http.StatusBadRequest, response.ErrorCodeValidationFailed,
			"kind must be exercises or activities")
		return
	}

	items, err := r.recommender.Recommend(req.Context(), userID, kind)
	if err != nil {
		r.logger.Error("recommendation failed", "user_id", userID, "kind", string(kind), "error", err)
		response.WriteError(w, http.StatusInternalServerError, response.ErrorCodeInternalError, "failed to build recommendations")
		return
	}

	response.WriteSuccess(w, http.StatusOK, toWire(items))
}

func toWire(items []catalog.Recommendable) []recommendationItem {
	out := make([]recommendationItem, 0, len(items))
	for _, item := range items {
		meta := item.Meta()
		out = append(out, recommendationItem{
			ID:              meta.ID,
			Title:           meta.Title,
			Description:     meta.Description,
			Category:        string(meta.Category),
			DurationMinutes: meta.DurationMinutes,
		})
	}
	return out
}
