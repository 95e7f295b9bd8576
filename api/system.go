package api

import (
	"fmt"
	"net/http"
	"time"
)

type SystemHandler struct{}

// RootHandler reports server status; the mobile client probes it on startup.
func (h *SystemHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"message":   "API server is running",
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok","service":"moodlog"}`)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{
			"version":   version,
			"buildTime": buildTime,
		}, http.StatusOK)
	}
}
