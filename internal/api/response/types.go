package response

import (
	"time"

	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/auth"
)

// Player is the API representation of a player
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model player to its API representation
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is returned from login, registration, and guest creation
type AuthResponse struct {
	Token     string    `json:"token"`
	Player    Player    `json:"player"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponseFromSession converts an auth session to its API representation
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Token:     s.Token,
		Player:    PlayerFromModel(&s.Player),
		ExpiresAt: s.ExpiresAt,
	}
}

// Profile is the API representation of a player profile
type Profile struct {
	PlayerID         string         `json:"player_id"`
	Nickname         string         `json:"nickname"`
	PhotoURL         string         `json:"photo_url,omitempty"`
	HighScores       map[string]int `json:"high_scores"`
	LeaderboardOptIn bool           `json:"leaderboard_opt_in"`
}

// ProfileFromModel converts a model profile to its API representation
func ProfileFromModel(p *model.Profile) Profile {
	scores := make(map[string]int, len(p.HighScores))
	for d, s := range p.HighScores {
		scores[string(d)] = s
	}
	return Profile{
		PlayerID:         string(p.PlayerID),
		Nickname:         p.Nickname,
		PhotoURL:         p.PhotoURL,
		HighScores:       scores,
		LeaderboardOptIn: p.LeaderboardOptIn,
	}
}

// Scripture is the API representation of a scripture passage
type Scripture struct {
	Text      string          `json:"text"`
	Reference model.Reference `json:"reference"`
	Canon     string          `json:"canon"`
}

// ScriptureFromModel converts a model scripture to its API representation
func ScriptureFromModel(s model.Scripture) Scripture {
	return Scripture{
		Text:      s.Text,
		Reference: s.Reference,
		Canon:     string(s.Canon),
	}
}

// ScripturesFromModel converts a slice of scriptures
func ScripturesFromModel(scriptures []model.Scripture) []Scripture {
	out := make([]Scripture, len(scriptures))
	for i, s := range scriptures {
		out[i] = ScriptureFromModel(s)
	}
	return out
}

// Participant is one side of a challenge. Score and time are omitted for
// the opponent until the challenge completes, so a player cannot see the
// target to beat before submitting their own result.
type Participant struct {
	PlayerID    string `json:"player_id"`
	Nickname    string `json:"nickname"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Submitted   bool   `json:"submitted"`
	Score       *int   `json:"score,omitempty"`
	TimeTakenMS *int64 `json:"time_taken_ms,omitempty"`
}

func participantFromModel(p *model.Participant, reveal bool) Participant {
	out := Participant{
		PlayerID:  string(p.PlayerID),
		Nickname:  p.Nickname,
		PhotoURL:  p.PhotoURL,
		Submitted: p.Submitted(),
	}
	if p.Submitted() && reveal {
		out.Score = p.Score
		ms := p.TimeTaken.Milliseconds()
		out.TimeTakenMS = &ms
	}
	return out
}

// Challenge is the API representation of a challenge, rendered for the
// viewing player
type Challenge struct {
	ID            string       `json:"id"`
	Code          string       `json:"code"`
	Difficulty    string       `json:"difficulty"`
	QuestionCount int          `json:"question_count"`
	Scriptures    []Scripture  `json:"scriptures"`
	Creator       Participant  `json:"creator"`
	Challenger    *Participant `json:"challenger,omitempty"`
	Status        string       `json:"status"`
	WinnerID      string       `json:"winner_id,omitempty"`
	IsTie         bool         `json:"is_tie,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	ExpiresAt     time.Time    `json:"expires_at"`
}

// ChallengeFromModel converts a challenge to its API representation.
// viewerID controls score visibility: a player always sees their own score,
// and sees the opponent's only once the challenge is completed.
func ChallengeFromModel(c *model.Challenge, viewerID model.PlayerID) Challenge {
	completed := c.Status == model.ChallengeStatusCompleted
	out := Challenge{
		ID:            string(c.ID),
		Code:          string(c.Code),
		Difficulty:    string(c.Difficulty),
		QuestionCount: c.QuestionCount,
		Scriptures:    ScripturesFromModel(c.Scriptures),
		Creator:       participantFromModel(&c.Creator, completed || c.Creator.PlayerID == viewerID),
		Status:        string(c.Status),
		WinnerID:      string(c.Winner),
		IsTie:         c.IsTie,
		CreatedAt:     c.CreatedAt,
		ExpiresAt:     c.ExpiresAt,
	}
	if c.Challenger != nil {
		ch := participantFromModel(c.Challenger, completed || c.Challenger.PlayerID == viewerID)
		out.Challenger = &ch
	}
	return out
}

// LeaderboardEntry is the API representation of a leaderboard row
type LeaderboardEntry struct {
	Rank      int    `json:"rank,omitempty"`
	PlayerID  string `json:"player_id"`
	Nickname  string `json:"nickname"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Score     int    `json:"score"`
	UpdatedAt string `json:"updated_at"`
}

// LeaderboardEntryFromModel converts a single entry without a rank
func LeaderboardEntryFromModel(e *model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		PlayerID:  string(e.PlayerID),
		Nickname:  e.Nickname,
		PhotoURL:  e.PhotoURL,
		Score:     e.Score,
		UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// LeaderboardFromModel converts ordered entries to API rows with ranks
func LeaderboardFromModel(entries []*model.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryFromModel(e)
		out[i].Rank = i + 1
	}
	return out
}

// LeaderboardSubmit reports whether a submitted score became the new best
type LeaderboardSubmit struct {
	Improved bool `json:"improved"`
}

// DailyStats is the API representation of daily-challenge progress
type DailyStats struct {
	PlayerID          string   `json:"player_id"`
	CurrentStreak     int      `json:"current_streak"`
	LongestStreak     int      `json:"longest_streak"`
	TotalCompleted    int      `json:"total_completed"`
	TotalCorrect      int      `json:"total_correct"`
	LastCompletedDate string   `json:"last_completed_date,omitempty"`
	Badges            []string `json:"badges"`
}

// DailyStatsFromModel converts daily stats to their API representation
func DailyStatsFromModel(s *model.DailyStats) DailyStats {
	badges := make([]string, len(s.Badges))
	for i, b := range s.Badges {
		badges[i] = string(b)
	}
	return DailyStats{
		PlayerID:          string(s.PlayerID),
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		TotalCompleted:    s.TotalCompleted,
		TotalCorrect:      s.TotalCorrect,
		LastCompletedDate: s.LastCompletedDate,
		Badges:            badges,
	}
}

// DailySet is today's daily challenge question set
type DailySet struct {
	Date       string      `json:"date"`
	Scriptures []Scripture `json:"scriptures"`
}

// DailyComplete is returned after completing the daily challenge
type DailyComplete struct {
	Stats        DailyStats `json:"stats"`
	BadgesEarned []string   `json:"badges_earned"`
}

// Grade reports whether a reference guess matched
type Grade struct {
	Correct bool `json:"correct"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
