package dto

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Rank     int     `json:"rank" example:"1"`
	Medal    string  `json:"medal" example:"gold"`
	Username string  `json:"username" example:"maya_r"`
	Score    float64 `json:"score" example:"42"`
}

// LeaderboardResponse is the full ordered board.
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// MyRankResponse reports the caller's own rank. Ranked is false when
// the user has no contributions at all.
type MyRankResponse struct {
	Ranked   bool    `json:"ranked"`
	Rank     int     `json:"rank,omitempty" example:"7"`
	Score    float64 `json:"score,omitempty" example:"15"`
	Username string  `json:"username" example:"maya_r"`
}
