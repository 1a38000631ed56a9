package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LinkAccountRequest is the request body for upgrading a guest account
type LinkAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetNicknameRequest is the request body for setting a nickname
type SetNicknameRequest struct {
	Nickname string `json:"nickname"`
}

// SetPhotoRequest is the request body for setting a profile photo
type SetPhotoRequest struct {
	PhotoURL string `json:"photo_url"`
}

// SetLeaderboardOptInRequest is the request body for the leaderboard flag
type SetLeaderboardOptInRequest struct {
	OptIn bool `json:"opt_in"`
}

// CreateChallengeRequest is the request body for creating a challenge
type CreateChallengeRequest struct {
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}

// SubmitChallengeScoreRequest is the request body for posting a score
type SubmitChallengeScoreRequest struct {
	Score       int   `json:"score"`
	TimeTakenMS int64 `json:"time_taken_ms"`
}

// SubmitLeaderboardScoreRequest is the request body for a leaderboard score
type SubmitLeaderboardScoreRequest struct {
	Difficulty string `json:"difficulty"`
	Score      int    `json:"score"`
}

// CompleteDailyRequest is the request body for completing the daily challenge
type CompleteDailyRequest struct {
	Correct int `json:"correct"`
}

// Reference is a scripture reference in a grading request
type Reference struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   string `json:"verse"`
}

// GradeRequest is the request body for grading a reference guess
type GradeRequest struct {
	Guess      Reference `json:"guess"`
	Actual     Reference `json:"actual"`
	Difficulty string    `json:"difficulty"`
}
