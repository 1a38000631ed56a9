package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scripturemastery/server/internal/api/middleware"
	"github.com/scripturemastery/server/internal/api/request"
	"github.com/scripturemastery/server/internal/api/response"
	"github.com/scripturemastery/server/internal/services/profile"
)

// ProfileHandler handles profile-related endpoints
type ProfileHandler struct {
	profileService *profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET /api/v1/players/me/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	p, err := h.profileService.Get(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}

// SetNickname handles PUT /api/v1/players/me/nickname
func (h *ProfileHandler) SetNickname(w http.ResponseWriter, r *http.Request) {
	var req request.SetNicknameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player := middleware.MustGetPlayer(r.Context())
	p, err := h.profileService.SetNickname(r.Context(), player.ID, req.Nickname)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}

// SetPhoto handles PUT /api/v1/players/me/photo
func (h *ProfileHandler) SetPhoto(w http.ResponseWriter, r *http.Request) {
	var req request.SetPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player := middleware.MustGetPlayer(r.Context())
	p, err := h.profileService.SetPhotoURL(r.Context(), player.ID, req.PhotoURL)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}

// SetLeaderboardOptIn handles PUT /api/v1/players/me/leaderboard-opt-in
func (h *ProfileHandler) SetLeaderboardOptIn(w http.ResponseWriter, r *http.Request) {
	var req request.SetLeaderboardOptInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player := middleware.MustGetPlayer(r.Context())
	p, err := h.profileService.SetLeaderboardOptIn(r.Context(), player.ID, req.OptIn)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}
