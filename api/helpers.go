package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeError renders the uniform error envelope. extra carries
// route-specific hints such as the allowed value set or request examples.
func writeError(w http.ResponseWriter, status int, msg string, extra map[string]any) {
	body := map[string]any{"error": msg}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, body, status)
}

// writeStoreError reports a failed store call. A request deadline hit is
// surfaced as a timeout so the client can tell it apart from a store fault.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		writeError(w, http.StatusGatewayTimeout, "Request timed out", nil)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error(), nil)
}
