package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scripturemastery/server/internal/api/request"
	"github.com/scripturemastery/server/internal/api/response"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/scriptures"
	"github.com/scripturemastery/server/internal/services/grading"
)

// ScriptureHandler handles the static scripture dataset and answer grading
type ScriptureHandler struct {
	gradingService *grading.Service
}

// NewScriptureHandler creates a new scripture handler
func NewScriptureHandler(gradingService *grading.Service) *ScriptureHandler {
	return &ScriptureHandler{
		gradingService: gradingService,
	}
}

// List handles GET /api/v1/scriptures
func (h *ScriptureHandler) List(w http.ResponseWriter, r *http.Request) {
	all := scriptures.All()
	if canon := r.URL.Query().Get("canon"); canon != "" {
		all = scriptures.ByCanon(model.Canon(canon))
	}

	response.JSON(w, http.StatusOK, response.ScripturesFromModel(all))
}

// Grade handles POST /api/v1/scriptures/grade.
// The client sends the player's guess alongside the actual reference so the
// server applies the difficulty's matching rules in one place.
func (h *ScriptureHandler) Grade(w http.ResponseWriter, r *http.Request) {
	var req request.GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	difficulty := model.Difficulty(req.Difficulty)
	if !model.ValidDifficulty(difficulty) {
		WriteError(w, NewInvalidRequestError("difficulty must be easy, medium, or hard"))
		return
	}

	guess := model.Reference{Book: req.Guess.Book, Chapter: req.Guess.Chapter, Verse: req.Guess.Verse}
	actual := model.Reference{Book: req.Actual.Book, Chapter: req.Actual.Chapter, Verse: req.Actual.Verse}

	response.JSON(w, http.StatusOK, response.Grade{
		Correct: h.gradingService.Match(guess, actual, difficulty),
	})
}
