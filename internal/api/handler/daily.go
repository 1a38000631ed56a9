package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scripturemastery/server/internal/api/middleware"
	"github.com/scripturemastery/server/internal/api/request"
	"github.com/scripturemastery/server/internal/api/response"
	"github.com/scripturemastery/server/internal/services/daily"
)

// DailyHandler handles daily-challenge endpoints
type DailyHandler struct {
	dailyService *daily.Service
}

// NewDailyHandler creates a new daily handler
func NewDailyHandler(dailyService *daily.Service) *DailyHandler {
	return &DailyHandler{
		dailyService: dailyService,
	}
}

// GetSet handles GET /api/v1/daily.
// Every player receives the same question set for a given calendar day.
func (h *DailyHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	date, scriptures, err := h.dailyService.TodaysSet(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DailySet{
		Date:       date,
		Scriptures: response.ScripturesFromModel(scriptures),
	})
}

// GetStats handles GET /api/v1/daily/stats
func (h *DailyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	stats, err := h.dailyService.Stats(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DailyStatsFromModel(stats))
}

// Complete handles POST /api/v1/daily/complete
func (h *DailyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteDailyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player := middleware.MustGetPlayer(r.Context())
	stats, earned, err := h.dailyService.Complete(r.Context(), player.ID, req.Correct)
	if err != nil {
		WriteError(w, err)
		return
	}

	badges := make([]string, len(earned))
	for i, b := range earned {
		badges[i] = string(b)
	}

	response.JSON(w, http.StatusOK, response.DailyComplete{
		Stats:        response.DailyStatsFromModel(stats),
		BadgesEarned: badges,
	})
}
