package api

import (
	"net/http"
	"time"

	"github.com/user/moodlog/internal/weekly"
	"github.com/user/moodlog/pkg/models"
)

type WeeklyHandler struct {
	checker *weekly.Checker

	now func() time.Time
}

func NewWeeklyHandler(checker *weekly.Checker) *WeeklyHandler {
	return &WeeklyHandler{checker: checker, now: time.Now}
}

type weeklyStatusResponse struct {
	models.WeeklyStatus
	ProposeAnalysis bool `json:"propose_analysis"`
}

// Status reports the completion state of the current ISO week for a user.
// propose_analysis is true at most once per user per week within this
// process; the client uses it to offer the weekly analysis exactly once.
func (h *WeeklyHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = userFromContext(r.Context())
	}
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	status, propose, err := h.checker.Evaluate(r.Context(), userID, h.now())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, weeklyStatusResponse{WeeklyStatus: status, ProposeAnalysis: propose}, http.StatusOK)
}
