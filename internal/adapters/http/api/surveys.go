// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	service "github.com/okian/ecotrace/internal/app"
	"github.com/okian/ecotrace/internal/domain/model"
	"github.com/okian/ecotrace/internal/domain/scoring"
)

// SurveysHandler handles category survey submissions.
type SurveysHandler struct {
	deps Dependencies
}

// NewSurveysHandler creates a new surveys handler.
func NewSurveysHandler(deps Dependencies) *SurveysHandler {
	return &SurveysHandler{deps: deps}
}

// surveyRequest mirrors the request schema for POST /surveys/{category}.
type surveyRequest struct {
	UserID  string            `json:"user_id"`
	Answers map[string]string `json:"answers"`
}

func (s surveyRequest) validate() error {
	switch {
	case strings.TrimSpace(s.UserID) == "":
		return errors.New("missing user_id")
	case len(s.Answers) == 0:
		return errors.New("missing answers")
	}
	return nil
}

// surveyResponse echoes the scored emissions back to the client.
type surveyResponse struct {
	Category     string             `json:"category"`
	WeeklyKg     float64            `json:"weekly_kg"`
	AnnualTons   float64            `json:"annual_tons"`
	PerQuestion  map[string]float64 `json:"per_question_weekly_kg"`
	Unrecognized []string           `json:"unrecognized,omitempty"`
	Persisted    bool               `json:"persisted"`
}

// HandlePostSurvey handles POST /surveys/{category} requests.
func (h *SurveysHandler) HandlePostSurvey(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_survey"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	rawCat, err := pathParam(r, "/surveys/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	cat, err := model.ParseCategory(rawCat)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_category", WrapKind(op, ErrBadRequest, err))
		return
	}

	var req surveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.SubmitSurvey(r.Context(), req.UserID, cat, model.AnswerSet(req.Answers))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resultResponse(result, true))
	case errors.Is(err, scoring.ErrIncompleteAnswers):
		writeError(w, http.StatusBadRequest, "incomplete_answers", err)
	case errors.Is(err, service.ErrEmptyUserID):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, service.ErrPersistSurvey):
		// The survey was scored but the record write failed; return the
		// computed numbers with a degraded-write flag.
		writeJSON(w, http.StatusOK, resultResponse(result, false))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

func resultResponse(result scoring.Result, persisted bool) surveyResponse {
	return surveyResponse{
		Category:     string(result.Category),
		WeeklyKg:     result.WeeklyKg,
		AnnualTons:   result.AnnualTons,
		PerQuestion:  result.PerWeekKg,
		Unrecognized: result.Unrecognized,
		Persisted:    persisted,
	}
}
