package api

import (
	"net/http"
	"time"

	"github.com/user/moodlog/internal/period"
	"github.com/user/moodlog/pkg/models"
	"github.com/user/moodlog/pkg/repository"
)

// Fatigue ratings run 1 (very bad) to 5 (very good); the label table in the
// analysis prompt depends on this bound.
const (
	minFatigue = 1
	maxFatigue = 5
)

type RecordsHandler struct {
	records repository.RecordRepo
}

func NewRecordsHandler(rr repository.RecordRepo) *RecordsHandler {
	return &RecordsHandler{records: rr}
}

type postRecordRequest struct {
	UserID  string  `json:"user_id"`
	Date    string  `json:"date"`
	Fatigue int     `json:"fatigue"`
	Notes   *string `json:"notes,omitempty"`
}

// CreateRecord upserts one day's entry for a user. All validation happens
// before the store is touched, so a rejected request never leaves a partial
// write.
func (h *RecordsHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req postRecordRequest
	if err := decodeValid(r.Context(), r.Body, recordSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), map[string]any{
			"required": []string{"user_id", "date", "fatigue"},
		})
		return
	}

	if req.Fatigue < minFatigue || req.Fatigue > maxFatigue {
		writeError(w, http.StatusBadRequest, "Fatigue must be between 1-5", nil)
		return
	}
	if _, err := time.Parse(period.DateLayout, req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be a valid YYYY-MM-DD calendar date", nil)
		return
	}

	rec := &models.Record{
		UserID:  req.UserID,
		Date:    req.Date,
		Fatigue: req.Fatigue,
		Notes:   req.Notes,
	}
	stored, err := h.records.UpsertRecord(r.Context(), rec)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, map[string]any{"success": true, "data": stored}, http.StatusOK)
}
