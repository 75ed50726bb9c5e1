package dto

// LeaderboardEntryDTO is one ranked row of the leaderboard. Rank is the true
// 1-based position in the full standings, also when the entry is the
// requester appended below the top-10 band.
type LeaderboardEntryDTO struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalScore int    `json:"total_score"`
}
