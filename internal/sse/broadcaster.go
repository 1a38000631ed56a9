package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/scripturemastery/server/internal/model"
)

// Event names sent to challenge watchers
const (
	EventChallengerJoined = "challenger_joined"
	EventScorePosted      = "score_posted"
	EventWinnerDetermined = "winner_determined"
)

// Broadcaster pushes challenge lifecycle events to SSE clients as JSON
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

type challengerJoinedEvent struct {
	Code     string `json:"code"`
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type scorePostedEvent struct {
	Code     string `json:"code"`
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

type winnerDeterminedEvent struct {
	Code     string `json:"code"`
	WinnerID string `json:"winner_id,omitempty"`
	IsTie    bool   `json:"is_tie"`
}

// BroadcastChallengerJoined tells watchers that an opponent has accepted
func (b *Broadcaster) BroadcastChallengerJoined(challenge *model.Challenge) {
	if challenge.Challenger == nil {
		return
	}
	b.send(challenge.Code, EventChallengerJoined, challengerJoinedEvent{
		Code:     string(challenge.Code),
		PlayerID: string(challenge.Challenger.PlayerID),
		Nickname: challenge.Challenger.Nickname,
		PhotoURL: challenge.Challenger.PhotoURL,
	})
}

// BroadcastScorePosted tells watchers that one side has submitted
func (b *Broadcaster) BroadcastScorePosted(challenge *model.Challenge, playerID model.PlayerID) {
	participant := challenge.ParticipantFor(playerID)
	if participant == nil || participant.Score == nil {
		return
	}
	b.send(challenge.Code, EventScorePosted, scorePostedEvent{
		Code:     string(challenge.Code),
		PlayerID: string(playerID),
		Nickname: participant.Nickname,
		Score:    *participant.Score,
	})
}

// BroadcastWinnerDetermined tells watchers the challenge has been resolved
func (b *Broadcaster) BroadcastWinnerDetermined(challenge *model.Challenge) {
	b.send(challenge.Code, EventWinnerDetermined, winnerDeterminedEvent{
		Code:     string(challenge.Code),
		WinnerID: string(challenge.Winner),
		IsTie:    challenge.IsTie,
	})
}

func (b *Broadcaster) send(code model.ChallengeCode, event string, payload any) {
	hub := b.hubManager.GetHub(code)
	if hub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("sse failed to marshal event",
			slog.String("challenge", string(code)),
			slog.String("event", event),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(event, string(data))
}
