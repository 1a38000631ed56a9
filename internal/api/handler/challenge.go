package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/scripturemastery/server/internal/api/middleware"
	"github.com/scripturemastery/server/internal/api/request"
	"github.com/scripturemastery/server/internal/api/response"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/challenge"
	"github.com/scripturemastery/server/internal/services/leaderboard"
	"github.com/scripturemastery/server/internal/services/profile"
	"github.com/scripturemastery/server/internal/sse"
)

// ChallengeHandler handles challenge-related endpoints
type ChallengeHandler struct {
	challenges  challenge.ControllerInterface
	profiles    *profile.Service
	leaderboard *leaderboard.Service
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(
	challenges challenge.ControllerInterface,
	profiles *profile.Service,
	leaderboardService *leaderboard.Service,
	hubManager *sse.HubManager,
	broadcaster *sse.Broadcaster,
) *ChallengeHandler {
	return &ChallengeHandler{
		challenges:  challenges,
		profiles:    profiles,
		leaderboard: leaderboardService,
		hubManager:  hubManager,
		broadcaster: broadcaster,
	}
}

// Create handles POST /api/v1/challenges
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player := middleware.MustGetPlayer(r.Context())
	ch, err := h.challenges.Create(r.Context(), player.ID, model.Difficulty(req.Difficulty), req.QuestionCount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ChallengeFromModel(ch, player.ID))
}

// Get handles GET /api/v1/challenges/{code}
func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.ChallengeCode(mux.Vars(r)["code"])
	player := middleware.MustGetPlayer(r.Context())

	ch, err := h.challenges.Get(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChallengeFromModel(ch, player.ID))
}

// Join handles POST /api/v1/challenges/{code}/join
func (h *ChallengeHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := model.ChallengeCode(mux.Vars(r)["code"])
	player := middleware.MustGetPlayer(r.Context())

	ch, err := h.challenges.Join(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastChallengerJoined(ch)

	response.JSON(w, http.StatusOK, response.ChallengeFromModel(ch, player.ID))
}

// SubmitScore handles POST /api/v1/challenges/{code}/score
func (h *ChallengeHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitChallengeScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Score < 0 {
		WriteError(w, NewInvalidRequestError("score must not be negative"))
		return
	}
	if req.TimeTakenMS < 0 {
		WriteError(w, NewInvalidRequestError("time_taken_ms must not be negative"))
		return
	}

	code := model.ChallengeCode(mux.Vars(r)["code"])
	player := middleware.MustGetPlayer(r.Context())

	ch, err := h.challenges.SubmitScore(r.Context(), code, player.ID,
		req.Score, time.Duration(req.TimeTakenMS)*time.Millisecond)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastScorePosted(ch, player.ID)
	if ch.Status == model.ChallengeStatusCompleted {
		h.broadcaster.BroadcastWinnerDetermined(ch)
	}

	// A challenge score also counts toward the player's personal best and,
	// when opted in, the public leaderboard. Neither is allowed to fail the
	// submission itself, which has already been recorded.
	_, _ = h.profiles.UpdateHighScore(r.Context(), player.ID, ch.Difficulty, req.Score)
	_, _ = h.leaderboard.Submit(r.Context(), player.ID, ch.Difficulty, req.Score)

	response.JSON(w, http.StatusOK, response.ChallengeFromModel(ch, player.ID))
}

// Events handles GET /api/v1/challenges/{code}/events.
// Streams challenge updates to the player over SSE until the connection
// closes.
func (h *ChallengeHandler) Events(w http.ResponseWriter, r *http.Request) {
	code := model.ChallengeCode(mux.Vars(r)["code"])
	player := middleware.MustGetPlayer(r.Context())

	ch, err := h.challenges.Get(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	if ch.ParticipantFor(player.ID) == nil {
		WriteError(w, NewUnauthorizedError())
		return
	}

	hub := h.hubManager.GetOrCreateHub(ch.Code)
	sse.ServeSSE(w, r, hub, player.ID)
}
