package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/scripturemastery/server/internal/api/middleware"
	"github.com/scripturemastery/server/internal/api/request"
	"github.com/scripturemastery/server/internal/api/response"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/leaderboard"
	"github.com/scripturemastery/server/internal/services/profile"
)

// LeaderboardHandler handles leaderboard-related endpoints
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
	profileService     *profile.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service, profileService *profile.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		profileService:     profileService,
	}
}

// Submit handles POST /api/v1/leaderboard/scores
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitLeaderboardScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Score < 0 {
		WriteError(w, NewInvalidRequestError("score must not be negative"))
		return
	}

	player := middleware.MustGetPlayer(r.Context())
	difficulty := model.Difficulty(req.Difficulty)

	improved, err := h.leaderboardService.Submit(r.Context(), player.ID, difficulty, req.Score)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Keep the cached personal best in the profile in sync
	_, _ = h.profileService.UpdateHighScore(r.Context(), player.ID, difficulty, req.Score)

	response.JSON(w, http.StatusOK, response.LeaderboardSubmit{Improved: improved})
}

// Top handles GET /api/v1/leaderboard/{difficulty}
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	difficulty := model.Difficulty(mux.Vars(r)["difficulty"])

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardService.Top(r.Context(), difficulty, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}

// Best handles GET /api/v1/leaderboard/{difficulty}/me
func (h *LeaderboardHandler) Best(w http.ResponseWriter, r *http.Request) {
	difficulty := model.Difficulty(mux.Vars(r)["difficulty"])
	player := middleware.MustGetPlayer(r.Context())

	entry, err := h.leaderboardService.Best(r.Context(), player.ID, difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardEntryFromModel(entry))
}
