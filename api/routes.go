package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/user/moodlog/internal/config"
	"github.com/user/moodlog/internal/db"
	"github.com/user/moodlog/internal/repository/sqlite"
	"github.com/user/moodlog/internal/weekly"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB, engine Engine) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(TimeoutMiddleware(cfg.APITimeout))
	r.Use(NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.Max).Middleware)
	r.Use(OptionalJWTMiddleware(cfg.JWTSecret))

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	recordsHandler := NewRecordsHandler(repo)
	analyzeHandler := NewAnalyzeHandler(repo, engine)
	chatHandler := NewChatHandler(repo, engine)
	weeklyHandler := NewWeeklyHandler(weekly.NewChecker(repo, weekly.NewGate()))

	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")

	r.HandleFunc("/record", recordsHandler.CreateRecord).Methods("POST")
	r.HandleFunc("/analyze", analyzeHandler.Analyze).Methods("GET", "POST")
	r.HandleFunc("/chat", chatHandler.Chat).Methods("POST")
	r.HandleFunc("/weekly/status", weeklyHandler.Status).Methods("GET")

	// Auth endpoints
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")
	r.HandleFunc("/v1/auth/signout", authHandler.Signout).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)

	return r
}

// NotFoundHandler lists the available endpoints for unmatched routes; the
// mobile client surfaces this hint during development.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found", map[string]any{
		"available_endpoints": []string{
			"GET /",
			"GET /health",
			"GET /version",
			"POST /record",
			"GET|POST /analyze",
			"POST /chat",
			"GET /weekly/status",
		},
	})
}
