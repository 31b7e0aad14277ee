// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/okian/ecotrace/internal/domain/aggregate"
	"github.com/okian/ecotrace/internal/domain/model"
)

// FootprintHandler handles total footprint reads.
type FootprintHandler struct {
	deps Dependencies
}

// NewFootprintHandler creates a new footprint handler.
func NewFootprintHandler(deps Dependencies) *FootprintHandler {
	return &FootprintHandler{deps: deps}
}

// footprintResponse mirrors the response schema for GET /footprint/{user_id}.
type footprintResponse struct {
	UserID     string             `json:"user_id"`
	ByCategory map[string]float64 `json:"by_category"`
	TotalTons  float64            `json:"total_tons"`
	Impact     string             `json:"impact"`
	UpdatedAt  string             `json:"updated_at"`
	Persisted  bool               `json:"persisted"`
}

// HandleGetFootprint handles GET /footprint/{user_id} requests.
func (h *FootprintHandler) HandleGetFootprint(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_footprint"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	userID, err := pathParam(r, "/footprint/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	fp, err := h.deps.Footprint(r.Context(), userID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, footprintToResponse(userID, fp, true))
	case errors.Is(err, aggregate.ErrPersistTotal):
		// Aggregation succeeded but the cached total could not be written;
		// the computed snapshot is still current.
		writeJSON(w, http.StatusOK, footprintToResponse(userID, fp, false))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

func footprintToResponse(userID string, fp model.Footprint, persisted bool) footprintResponse {
	byCat := make(map[string]float64, len(model.Categories()))
	for _, cat := range model.Categories() {
		byCat[string(cat)] = fp.Value(cat)
	}
	return footprintResponse{
		UserID:     userID,
		ByCategory: byCat,
		TotalTons:  fp.Total,
		Impact:     fp.Impact,
		UpdatedAt:  fp.UpdatedAt.Format(time.RFC3339),
		Persisted:  persisted,
	}
}
