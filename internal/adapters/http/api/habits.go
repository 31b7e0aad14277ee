// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/ecotrace/internal/domain/habit"
)

// HabitsHandler handles habit completion and progress requests.
type HabitsHandler struct {
	deps Dependencies
}

// NewHabitsHandler creates a new habits handler.
func NewHabitsHandler(deps Dependencies) *HabitsHandler {
	return &HabitsHandler{deps: deps}
}

// completionRequest mirrors the request schema for POST /habits/completions.
type completionRequest struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Quantity string `json:"quantity"`
	Points   string `json:"points"`
}

func (c completionRequest) validate() error {
	switch {
	case strings.TrimSpace(c.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(c.Title) == "":
		return errors.New("missing title")
	}
	return nil
}

// habitsResponse mirrors the response schema for GET /habits/{user_id}.
type habitsResponse struct {
	UserID string       `json:"user_id"`
	Cards  []habit.Card `json:"cards"`
}

// HandlePostCompletion handles POST /habits/completions requests.
func (h *HabitsHandler) HandlePostCompletion(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_habit_completion"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req completionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	err := h.deps.CompleteHabit(r.Context(), req.UserID, req.Title, req.Quantity, req.Points)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
	case errors.Is(err, habit.ErrEmptyTitle):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// HandleGetHabits handles GET /habits/{user_id} requests.
func (h *HabitsHandler) HandleGetHabits(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_habits"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	userID, err := pathParam(r, "/habits/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	cards, err := h.deps.Habits(r.Context(), userID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if cards == nil {
		cards = []habit.Card{}
	}
	writeJSON(w, http.StatusOK, habitsResponse{UserID: userID, Cards: cards})
}

// HandleGetActions handles GET /habits/actions requests.
func (h *HabitsHandler) HandleGetActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Actions())
}
