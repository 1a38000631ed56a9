package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Profile:
		o.printProfile(v)
	case Challenge:
		o.printChallenge(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case LeaderboardEntry:
		o.printLeaderboardEntry(v, false)
	case DailySet:
		o.printDailySet(v)
	case DailyStats:
		o.printDailyStats(v)
	case DailyComplete:
		o.printDailyComplete(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Token  string `json:"token"`
	Player Player `json:"player"`
}

// Profile response type
type Profile struct {
	PlayerID         string         `json:"player_id"`
	Nickname         string         `json:"nickname"`
	PhotoURL         string         `json:"photo_url,omitempty"`
	HighScores       map[string]int `json:"high_scores"`
	LeaderboardOptIn bool           `json:"leaderboard_opt_in"`
}

// Reference response type
type Reference struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   string `json:"verse"`
}

// Scripture response type
type Scripture struct {
	Text      string    `json:"text"`
	Reference Reference `json:"reference"`
	Canon     string    `json:"canon"`
}

// Participant response type
type Participant struct {
	PlayerID    string `json:"player_id"`
	Nickname    string `json:"nickname"`
	Submitted   bool   `json:"submitted"`
	Score       *int   `json:"score,omitempty"`
	TimeTakenMS *int64 `json:"time_taken_ms,omitempty"`
}

// Challenge response type
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
	ExpiresAt     string       `json:"expires_at"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank     int    `json:"rank,omitempty"`
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

// DailySet response type
type DailySet struct {
	Date       string      `json:"date"`
	Scriptures []Scripture `json:"scriptures"`
}

// DailyStats response type
type DailyStats struct {
	CurrentStreak     int      `json:"current_streak"`
	LongestStreak     int      `json:"longest_streak"`
	TotalCompleted    int      `json:"total_completed"`
	TotalCorrect      int      `json:"total_correct"`
	LastCompletedDate string   `json:"last_completed_date,omitempty"`
	Badges            []string `json:"badges"`
}

// DailyComplete response type
type DailyComplete struct {
	Stats        DailyStats `json:"stats"`
	BadgesEarned []string   `json:"badges_earned"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("Nickname: %s (%s)\n", p.Nickname, p.PlayerID)
	if p.PhotoURL != "" {
		fmt.Printf("Photo: %s\n", p.PhotoURL)
	}
	optStr := "no"
	if p.LeaderboardOptIn {
		optStr = "yes"
	}
	fmt.Printf("Leaderboard opt-in: %s\n", optStr)
	if len(p.HighScores) > 0 {
		fmt.Println("High scores:")
		for _, d := range []string{"easy", "medium", "hard"} {
			if score, ok := p.HighScores[d]; ok {
				fmt.Printf("  %s: %d\n", d, score)
			}
		}
	}
}

func (o *Output) printParticipant(label string, p Participant) {
	line := fmt.Sprintf("%s: %s (%s)", label, p.Nickname, p.PlayerID)
	if p.Score != nil {
		line += fmt.Sprintf(" - %d points", *p.Score)
		if p.TimeTakenMS != nil {
			line += fmt.Sprintf(" in %.1fs", float64(*p.TimeTakenMS)/1000)
		}
	} else if p.Submitted {
		line += " - submitted"
	} else {
		line += " - not submitted"
	}
	fmt.Println(line)
}

func (o *Output) printChallenge(c Challenge) {
	fmt.Printf("Challenge: %s\n", c.Code)
	fmt.Printf("Status: %s\n", c.Status)
	fmt.Printf("Difficulty: %s (%d questions)\n", c.Difficulty, c.QuestionCount)
	fmt.Printf("Expires: %s\n", c.ExpiresAt)

	o.printParticipant("Creator", c.Creator)
	if c.Challenger != nil {
		o.printParticipant("Challenger", *c.Challenger)
	}

	if c.Status == "completed" {
		if c.IsTie {
			fmt.Println("Result: tie")
		} else {
			fmt.Printf("Winner: %s\n", c.WinnerID)
		}
	}

	if len(c.Scriptures) > 0 {
		fmt.Printf("Scriptures (%d):\n", len(c.Scriptures))
		for i, s := range c.Scriptures {
			text := s.Text
			if len(text) > 60 {
				text = text[:60] + "..."
			}
			fmt.Printf("  %d. %s\n", i+1, text)
		}
	}
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}
	for _, e := range entries {
		o.printLeaderboardEntry(e, true)
	}
}

func (o *Output) printLeaderboardEntry(e LeaderboardEntry, ranked bool) {
	if ranked {
		fmt.Printf("%3d. %s - %d points\n", e.Rank, e.Nickname, e.Score)
	} else {
		fmt.Printf("%s - %d points\n", e.Nickname, e.Score)
	}
}

func (o *Output) printDailySet(d DailySet) {
	fmt.Printf("Daily challenge for %s (%d scriptures):\n", d.Date, len(d.Scriptures))
	for i, s := range d.Scriptures {
		text := s.Text
		if len(text) > 60 {
			text = text[:60] + "..."
		}
		fmt.Printf("  %d. %s\n", i+1, text)
	}
}

func (o *Output) printDailyStats(s DailyStats) {
	fmt.Printf("Current streak: %d\n", s.CurrentStreak)
	fmt.Printf("Longest streak: %d\n", s.LongestStreak)
	fmt.Printf("Completed: %d (%d correct answers)\n", s.TotalCompleted, s.TotalCorrect)
	if s.LastCompletedDate != "" {
		fmt.Printf("Last completed: %s\n", s.LastCompletedDate)
	}
	if len(s.Badges) > 0 {
		fmt.Printf("Badges: %s\n", strings.Join(s.Badges, ", "))
	}
}

func (o *Output) printDailyComplete(d DailyComplete) {
	o.printDailyStats(d.Stats)
	if len(d.BadgesEarned) > 0 {
		fmt.Printf("New badges: %s\n", strings.Join(d.BadgesEarned, ", "))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
