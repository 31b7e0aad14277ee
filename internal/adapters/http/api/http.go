// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/ecotrace/internal/domain/habit"
	"github.com/okian/ecotrace/internal/domain/model"
	"github.com/okian/ecotrace/internal/domain/scoring"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// SubmitSurvey scores a category survey and persists the record.
	SubmitSurvey(ctx context.Context, userID string, cat model.Category, answers model.AnswerSet) (scoring.Result, error)

	// Footprint aggregates the user's total footprint across categories.
	Footprint(ctx context.Context, userID string) (model.Footprint, error)

	// Habit operations back the progress cards.
	CompleteHabit(ctx context.Context, userID, title, quantity, points string) error
	Habits(ctx context.Context, userID string) ([]habit.Card, error)
	Actions() []habit.Action
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	surveysHandler   *SurveysHandler
	footprintHandler *FootprintHandler
	habitsHandler    *HabitsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		surveysHandler:   NewSurveysHandler(deps),
		footprintHandler: NewFootprintHandler(deps),
		habitsHandler:    NewHabitsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/surveys/", MetricsMiddleware(s.surveysHandler.HandlePostSurvey, "surveys"))
	mux.HandleFunc("/footprint/", MetricsMiddleware(s.footprintHandler.HandleGetFootprint, "footprint"))
	mux.HandleFunc("/habits/completions", MetricsMiddleware(s.habitsHandler.HandlePostCompletion, "habit_completions"))
	mux.HandleFunc("/habits/actions", MetricsMiddleware(s.habitsHandler.HandleGetActions, "habit_actions"))
	mux.HandleFunc("/habits/", MetricsMiddleware(s.habitsHandler.HandleGetHabits, "habits"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
// This stays generic to avoid tight coupling with specific packages.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// pathParam extracts the single path segment after prefix, rejecting empty
// or nested paths.
func pathParam(r *http.Request, prefix string) (string, error) {
	p := strings.TrimPrefix(r.URL.Path, prefix)
	if p == "" || strings.Contains(p, "/") {
		return "", errors.New("missing path parameter")
	}
	return p, nil
}
