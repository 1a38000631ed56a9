package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scripturemastery/server/internal/api/handler"
	"github.com/scripturemastery/server/internal/api/middleware"
	"github.com/scripturemastery/server/internal/services/auth"
	"github.com/scripturemastery/server/internal/services/challenge"
	"github.com/scripturemastery/server/internal/services/daily"
	"github.com/scripturemastery/server/internal/services/grading"
	"github.com/scripturemastery/server/internal/services/leaderboard"
	"github.com/scripturemastery/server/internal/services/profile"
	"github.com/scripturemastery/server/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	AuthService         *auth.Service
	ProfileService      *profile.Service
	ChallengeController challenge.ControllerInterface
	LeaderboardService  *leaderboard.Service
	DailyService        *daily.Service
	GradingService      *grading.Service
	HubManager          *sse.HubManager
	Broadcaster         *sse.Broadcaster
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService)
	challengeHandler := handler.NewChallengeHandler(
		cfg.ChallengeController, cfg.ProfileService, cfg.LeaderboardService,
		cfg.HubManager, cfg.Broadcaster)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.ProfileService)
	dailyHandler := handler.NewDailyHandler(cfg.DailyService)
	scriptureHandler := handler.NewScriptureHandler(cfg.GradingService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/link", playerHandler.LinkAccount).Methods(http.MethodPost)
	playerProtected.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)
	playerProtected.HandleFunc("/me/profile", profileHandler.GetProfile).Methods(http.MethodGet)
	playerProtected.HandleFunc("/me/nickname", profileHandler.SetNickname).Methods(http.MethodPut)
	playerProtected.HandleFunc("/me/photo", profileHandler.SetPhoto).Methods(http.MethodPut)
	playerProtected.HandleFunc("/me/leaderboard-opt-in", profileHandler.SetLeaderboardOptIn).Methods(http.MethodPut)

	// Challenge routes (all require auth)
	challenges := api.PathPrefix("/challenges").Subrouter()
	challenges.Use(authMiddleware)
	challenges.HandleFunc("", challengeHandler.Create).Methods(http.MethodPost)
	challenges.HandleFunc("/{code}", challengeHandler.Get).Methods(http.MethodGet)
	challenges.HandleFunc("/{code}/join", challengeHandler.Join).Methods(http.MethodPost)
	challenges.HandleFunc("/{code}/score", challengeHandler.SubmitScore).Methods(http.MethodPost)
	challenges.HandleFunc("/{code}/events", challengeHandler.Events).Methods(http.MethodGet)

	// Leaderboard routes (all require auth)
	lb := api.PathPrefix("/leaderboard").Subrouter()
	lb.Use(authMiddleware)
	lb.HandleFunc("/scores", leaderboardHandler.Submit).Methods(http.MethodPost)
	lb.HandleFunc("/{difficulty}", leaderboardHandler.Top).Methods(http.MethodGet)
	lb.HandleFunc("/{difficulty}/me", leaderboardHandler.Best).Methods(http.MethodGet)

	// Daily challenge routes (all require auth)
	dailyRoutes := api.PathPrefix("/daily").Subrouter()
	dailyRoutes.Use(authMiddleware)
	dailyRoutes.HandleFunc("", dailyHandler.GetSet).Methods(http.MethodGet)
	dailyRoutes.HandleFunc("/stats", dailyHandler.GetStats).Methods(http.MethodGet)
	dailyRoutes.HandleFunc("/complete", dailyHandler.Complete).Methods(http.MethodPost)

	// Scripture dataset and grading (no auth; the dataset is static)
	api.HandleFunc("/scriptures", scriptureHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/scriptures/grade", scriptureHandler.Grade).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
