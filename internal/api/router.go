// Package api provides the HTTP layer of the mood service: a chi router
// with mood logging, recommendation, and insight endpoints.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"moodmate/internal/api/response"
	"moodmate/internal/insights"
	"moodmate/internal/logging"
	"moodmate/internal/recommend"
	"moodmate/internal/storage"
)

// Router is the main API router and its dependencies
type Router struct {
	mux          *chi.Mux
	logger       logging.Logger
	history      storage.HistoryStore
	entitlements storage.EntitlementStore
	recommender  *recommend.Service
	insights     *insights.Service
	startTime    time.Time
	now          func() time.Time
}

// NewRouter creates the API router with middleware and routes
func NewRouter(
	history storage.HistoryStore,
	entitlements storage.EntitlementStore,
	recommender *recommend.Service,
	insightsSvc *insights.Service,
	logger logging.Logger,
) *Router {
	r := &Router{
		mux:          chi.NewRouter(),
		logger:       logger.WithComponent("api"),
		history:      history,
		entitlements: entitlements,
		recommender:  recommender,
		insights:     insightsSvc,
		startTime:    time.Now(),
		now:          time.Now,
	}
	r.setupMiddleware()
	r.setupRoutes()
	return r
}

// SetNow overrides the router clock, used to resolve "today" in tests
func (r *Router) SetNow(now func() time.Time) {
	r.now = now
}

// Handler returns the HTTP handler
func (r *Router) Handler() http.Handler {
	return r.mux
}

func (r *Router) setupMiddleware() {
	r.mux.Use(chimiddleware.Recoverer)
	r.mux.Use(chimiddleware.RequestID)
	r.mux.Use(r.requestLogger)
	r.mux.Use(chimiddleware.Timeout(30 * time.Second))
}

func (r *Router) setupRoutes() {
	r.mux.Get("/healthz", r.handleHealth)

	r.mux.Route("/api/v1/users/{userID}", func(mux chi.Router) {
		mux.Post("/moods", r.handleLogMood)
		mux.Get("/moods", r.handleListMoods)
		mux.Get("/recommendations", r.handleRecommendations)
		mux.Get("/insights", r.handleInsights)
	})

	r.mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.WriteError(w, http.StatusNotFound, response.ErrorCodeNotFound, "route not found")
	})
}

// requestLogger logs one line per request with status and duration
func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		r.logger.Info("request handled",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", chimiddleware.GetReqID(req.Context()),
		)
	})
}
