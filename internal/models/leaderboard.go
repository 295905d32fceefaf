package models

// LeaderboardEntry is the read-only ranking projection of a user.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Stars    int    `json:"stars"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
	Class    int    `json:"class"`
}
