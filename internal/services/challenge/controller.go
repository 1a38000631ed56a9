package challenge

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scripturemastery/server/internal/dependencies/clock"
	"github.com/scripturemastery/server/internal/dependencies/random"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/selection"
	"github.com/scripturemastery/server/internal/storage"
)

const (
	// CodeLength is the length of generated challenge codes
	CodeLength = 6
	// CodeAlphabet is the characters used in challenge codes
	// (excludes 0/O and 1/I/L, which read ambiguously when shared aloud)
	CodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	// codeAttempts bounds collision regeneration before giving up
	codeAttempts = 10
	// ExpiryWindow is how long a pending challenge waits for an opponent
	ExpiryWindow = 7 * 24 * time.Hour
)

// Controller manages the challenge lifecycle: create, join, score
// submission, and outcome resolution. Winner and tie are decided here and
// nowhere else; clients only ever read them.
type Controller struct {
	storage   storage.Storage
	selection *selection.Service
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new challenge Controller
func NewController(
	storage storage.Storage,
	selection *selection.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		selection: selection,
		clock:     clock,
		random:    random,
		logger:    logger,
	}
}

// Create starts a new pending challenge for the given player.
// The question set is derived from the generated code, so an opponent
// joining with nothing but the code plays the identical scriptures.
func (c *Controller) Create(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty, questionCount int) (*model.Challenge, error) {
	if !model.ValidDifficulty(difficulty) {
		return nil, model.ErrInvalidDifficulty
	}
	if !model.ValidQuestionCount(questionCount) {
		return nil, model.ErrInvalidQuestionCount
	}

	profile, err := c.requireNickname(ctx, playerID)
	if err != nil {
		return nil, err
	}

	code, err := c.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	picked, err := c.selection.Select(string(code), questionCount)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	challenge := &model.Challenge{
		ID:            model.ChallengeID(uuid.NewString()),
		Code:          code,
		Difficulty:    difficulty,
		QuestionCount: questionCount,
		Scriptures:    picked,
		Creator: model.Participant{
			PlayerID: playerID,
			Nickname: profile.Nickname,
			PhotoURL: profile.PhotoURL,
		},
		Status:    model.ChallengeStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(ExpiryWindow),
		UpdatedAt: now,
	}

	if err := c.storage.SaveChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	c.logger.Info("challenge created",
		slog.String("challenge_id", string(challenge.ID)),
		slog.String("code", string(code)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("question_count", questionCount),
	)

	return challenge, nil
}

// generateCode produces a unique join code, regenerating on collision with
// any non-terminal challenge. After codeAttempts collisions it fails loudly
// rather than knowingly reissuing a live code.
func (c *Controller) generateCode(ctx context.Context) (model.ChallengeCode, error) {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := model.ChallengeCode(c.random.String(CodeLength, CodeAlphabet))
		_, err := c.storage.GetActiveChallengeByCode(ctx, code)
		if errors.Is(err, model.ErrChallengeNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", model.ErrCodeGeneration
}

// Get returns the challenge for a code regardless of status, lazily expiring
// a pending challenge whose 7-day window has elapsed.
func (c *Controller) Get(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error) {
	challenge, err := c.storage.GetChallengeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return c.expireIfStale(ctx, challenge)
}

// FindJoinable returns the pending challenge for a code, or
// ErrChallengeNotFound if the code matches nothing that can still be joined.
func (c *Controller) FindJoinable(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error) {
	challenge, err := c.storage.GetActiveChallengeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	challenge, err = c.expireIfStale(ctx, challenge)
	if err != nil {
		return nil, err
	}
	if challenge.Status != model.ChallengeStatusPending {
		return nil, model.ErrChallengeUnavailable
	}
	return challenge, nil
}

// expireIfStale transitions a pending challenge past its expiry to expired
// and reports it not found, mirroring how the code index releases it.
func (c *Controller) expireIfStale(ctx context.Context, challenge *model.Challenge) (*model.Challenge, error) {
	if challenge.Status != model.ChallengeStatusPending || c.clock.Now().Before(challenge.ExpiresAt) {
		return challenge, nil
	}

	now := c.clock.Now()
	_, err := c.storage.UpdateChallenge(ctx, challenge.ID, func(ch *model.Challenge) error {
		if ch.Status != model.ChallengeStatusPending {
			return nil // Someone joined between our read and this write
		}
		ch.Status = model.ChallengeStatusExpired
		ch.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("challenge expired",
		slog.String("challenge_id", string(challenge.ID)),
		slog.String("code", string(challenge.Code)),
	)
	return nil, model.ErrChallengeNotFound
}

// Join accepts a pending challenge as the challenger
func (c *Controller) Join(ctx context.Context, code model.ChallengeCode, playerID model.PlayerID) (*model.Challenge, error) {
	profile, err := c.requireNickname(ctx, playerID)
	if err != nil {
		return nil, err
	}

	found, err := c.FindJoinable(ctx, code)
	if err != nil {
		return nil, err
	}
	if found.Creator.PlayerID == playerID {
		return nil, model.ErrCannotJoinOwnChallenge
	}

	now := c.clock.Now()
	updated, err := c.storage.UpdateChallenge(ctx, found.ID, func(ch *model.Challenge) error {
		// Re-check under the transaction; another joiner may have won the race
		if ch.Status != model.ChallengeStatusPending {
			return model.ErrChallengeUnavailable
		}
		ch.Status = model.ChallengeStatusAccepted
		ch.Challenger = &model.Participant{
			PlayerID: playerID,
			Nickname: profile.Nickname,
			PhotoURL: profile.PhotoURL,
		}
		ch.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("challenge accepted",
		slog.String("challenge_id", string(updated.ID)),
		slog.String("code", string(code)),
		slog.String("challenger_id", string(playerID)),
	)

	return updated, nil
}

// SubmitScore records one side's result. The write is a transactional
// read-modify-write so a resubmission or a concurrent opponent write cannot
// lose an update. Once both sides are in, the outcome is resolved here, on
// the server, and the challenge completes.
func (c *Controller) SubmitScore(ctx context.Context, code model.ChallengeCode, playerID model.PlayerID, score int, timeTaken time.Duration) (*model.Challenge, error) {
	found, err := c.storage.GetChallengeByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	updated, err := c.storage.UpdateChallenge(ctx, found.ID, func(ch *model.Challenge) error {
		switch ch.Status {
		case model.ChallengeStatusAccepted:
			// playable
		case model.ChallengeStatusPending:
			return model.ErrChallengeNotStarted
		default:
			return model.ErrChallengeUnavailable
		}

		side := ch.ParticipantFor(playerID)
		if side == nil {
			return model.ErrNotParticipant
		}
		if side.Submitted() {
			return model.ErrScoreAlreadySubmitted
		}

		s := score
		side.Score = &s
		side.TimeTaken = timeTaken
		side.SubmittedAt = now
		ch.UpdatedAt = now

		if ch.BothSubmitted() {
			resolveOutcome(ch)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == model.ChallengeStatusCompleted {
		c.logger.Info("challenge completed",
			slog.String("challenge_id", string(updated.ID)),
			slog.String("code", string(code)),
			slog.String("winner", string(updated.Winner)),
			slog.Bool("tie", updated.IsTie),
		)
	}

	return updated, nil
}

// resolveOutcome is the single authoritative winner decision: higher score
// wins, equal scores break on faster completion, equal on both is a tie.
func resolveOutcome(ch *model.Challenge) {
	ch.Status = model.ChallengeStatusCompleted

	creatorScore := *ch.Creator.Score
	challengerScore := *ch.Challenger.Score

	switch {
	case creatorScore > challengerScore:
		ch.Winner = ch.Creator.PlayerID
	case challengerScore > creatorScore:
		ch.Winner = ch.Challenger.PlayerID
	case ch.Creator.TimeTaken < ch.Challenger.TimeTaken:
		ch.Winner = ch.Creator.PlayerID
	case ch.Challenger.TimeTaken < ch.Creator.TimeTaken:
		ch.Winner = ch.Challenger.PlayerID
	default:
		ch.IsTie = true
	}
}

// requireNickname loads the player's profile and enforces the non-empty
// nickname precondition for creating or joining challenges.
func (c *Controller) requireNickname(ctx context.Context, playerID model.PlayerID) (*model.Profile, error) {
	profile, err := c.storage.GetProfile(ctx, playerID)
	if errors.Is(err, model.ErrProfileNotFound) {
		return nil, model.ErrNicknameMissing
	}
	if err != nil {
		return nil, err
	}
	if profile.Nickname == "" {
		return nil, model.ErrNicknameMissing
	}
	return profile, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty, questionCount int) (*model.Challenge, error)
	Get(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error)
	FindJoinable(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error)
	Join(ctx context.Context, code model.ChallengeCode, playerID model.PlayerID) (*model.Challenge, error)
	SubmitScore(ctx context.Context, code model.ChallengeCode, playerID model.PlayerID, score int, timeTaken time.Duration) (*model.Challenge, error)
}

var _ ControllerInterface = (*Controller)(nil)
