package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/user/moodlog/internal/period"
	"github.com/user/moodlog/pkg/models"
	"github.com/user/moodlog/pkg/repository"
)

// Engine is the analysis surface the handlers depend on.
type Engine interface {
	AnalyzeRecords(ctx context.Context, recs []models.Record) (string, error)
	Chat(ctx context.Context, message string) (string, error)
}

type AnalyzeHandler struct {
	records repository.RecordRepo
	engine  Engine

	// now is swappable in tests
	now func() time.Time
}

func NewAnalyzeHandler(rr repository.RecordRepo, engine Engine) *AnalyzeHandler {
	return &AnalyzeHandler{records: rr, engine: engine, now: time.Now}
}

type analyzeRequest struct {
	Range  string `json:"range,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	UserID string `json:"user_id,omitempty"`
}

// Analyze resolves the requested period, fetches the matching records and
// relays them to the model. GET reads query parameters, POST a JSON body.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		req = analyzeRequest{Range: q.Get("range"), From: q.Get("from"), To: q.Get("to"), UserID: q.Get("user_id")}
	} else {
		if err := decodeValid(r.Context(), r.Body, analyzeSchema, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	if req.UserID == "" {
		req.UserID = userFromContext(r.Context())
	}

	rng, err := period.Resolve(period.Query{Range: req.Range, From: req.From, To: req.To}, h.now())
	if err != nil {
		h.writeResolveError(w, err)
		return
	}

	var recs []models.Record
	if req.UserID != "" {
		recs, err = h.records.ListByUserAndDateRange(r.Context(), req.UserID, rng.From, rng.To)
	} else {
		recs, err = h.records.ListByDateRange(r.Context(), rng.From, rng.To)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	result, err := h.engine.AnalyzeRecords(r.Context(), recs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Analysis error", map[string]any{"details": err.Error()})
		return
	}

	writeJSON(w, map[string]any{"result": result}, http.StatusOK)
}

func (h *AnalyzeHandler) writeResolveError(w http.ResponseWriter, err error) {
	var ir *period.InvalidRangeError
	switch {
	case errors.Is(err, period.ErrMissingParams):
		writeError(w, http.StatusBadRequest, "Missing range or from/to parameters", map[string]any{
			"examples": []map[string]string{
				{"range": "daily"},
				{"from": "2025-09-01", "to": "2025-09-07"},
			},
		})
	case errors.Is(err, period.ErrConflictingParams):
		writeError(w, http.StatusBadRequest, "Provide either range or from/to, not both", nil)
	case errors.As(err, &ir):
		writeError(w, http.StatusBadRequest, "Invalid range value", map[string]any{
			"allowed": period.AllowedRanges,
		})
	default:
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	}
}
