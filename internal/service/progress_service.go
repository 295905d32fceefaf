package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"eduquest/internal/models"
	"eduquest/internal/store"
)

var ErrUnknownTopic = errors.New("unknown subject or topic")

// ProgressService applies the gamification rules on top of the progress
// store: video completion rewards, puzzle rewards, streaks and levels.
type ProgressService struct {
	store *store.Store
}

// NewProgressService creates a new progress service
func NewProgressService(st *store.Store) *ProgressService {
	return &ProgressService{store: st}
}

// CompletionResult describes the outcome of one completed video.
type CompletionResult struct {
	User           *models.User `json:"user"`
	StarsEarned    int          `json:"starsEarned"`
	MinutesSpent   int          `json:"minutesSpent"`
	TopicCompleted bool         `json:"topicCompleted"`
	TopicPercent   int          `json:"topicPercent"`
	LeveledUp      bool         `json:"leveledUp"`
}

// CompleteVideo records one watched video for the given topic: bumps
// the topic's watch count, adds watch time, awards 15-35 stars, and
// updates streak and level. The daily goal counter is monotonic; the
// original application never resets it per calendar day and that
// behavior is preserved.
func (s *ProgressService) CompleteVideo(username, subject, topic string) (*CompletionResult, error) {
	user, err := s.store.User(username)
	if err != nil {
		return nil, err
	}

	topics, ok := user.Progress[subject]
	if !ok {
		return nil, ErrUnknownTopic
	}
	tp, ok := topics[topic]
	if !ok {
		return nil, ErrUnknownTopic
	}

	if tp.VideosWatched < tp.TotalVideos {
		tp.VideosWatched++
	}
	tp.RecalcPercent()

	minutes := rand.Intn(16) + 10 // 10-25 minutes
	tp.TimeSpent += minutes
	now := time.Now().UTC()
	tp.LastAccessed = &now

	starsEarned := rand.Intn(21) + 15 // 15-35 stars

	stars := user.Stars + starsEarned
	totalVideos := user.TotalVideosWatched + 1
	dailyGoal := user.DailyGoal + 1
	studyTime := user.StudyTime + minutes

	streak := user.Streak
	if dailyGoal >= 3 {
		streak++
	}

	level := user.Level
	achievements := user.Achievements
	leveledUp := false
	if newLevel := totalVideos/10 + 1; newLevel > level {
		level = newLevel
		leveledUp = true
		achievements = append(achievements, fmt.Sprintf("Reached Level %d", newLevel))
	}

	updated, err := s.store.UpdateUser(username, models.UserUpdate{
		Stars:              &stars,
		Streak:             &streak,
		Level:              &level,
		TotalVideosWatched: &totalVideos,
		DailyGoal:          &dailyGoal,
		StudyTime:          &studyTime,
		Progress:           user.Progress,
		Achievements:       achievements,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendActivity(username, models.Activity{
		Icon:        "📹",
		Title:       fmt.Sprintf("Completed Video: %s", topic),
		Description: fmt.Sprintf("Video %d of %d completed", tp.VideosWatched, tp.TotalVideos),
		Stars:       starsEarned,
	}); err != nil {
		return nil, err
	}

	return &CompletionResult{
		User:           updated,
		StarsEarned:    starsEarned,
		MinutesSpent:   minutes,
		TopicCompleted: tp.Completed,
		TopicPercent:   tp.Percent,
		LeveledUp:      leveledUp,
	}, nil
}

// PuzzleResult describes the outcome of a puzzle attempt.
type PuzzleResult struct {
	User        *models.User `json:"user"`
	Correct     bool         `json:"correct"`
	StarsEarned int          `json:"starsEarned"`
}

// SolvePuzzle awards 25-75 stars for a correct puzzle answer and logs
// the activity. Incorrect answers change nothing.
func (s *ProgressService) SolvePuzzle(username, subject string, correct bool) (*PuzzleResult, error) {
	user, err := s.store.User(username)
	if err != nil {
		return nil, err
	}

	if !correct {
		return &PuzzleResult{User: user}, nil
	}

	starsEarned := rand.Intn(51) + 25 // 25-75 stars
	stars := user.Stars + starsEarned

	updated, err := s.store.UpdateUser(username, models.UserUpdate{Stars: &stars})
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendActivity(username, models.Activity{
		Icon:        "🧩",
		Title:       "Puzzle Solved!",
		Description: fmt.Sprintf("Correctly answered %s puzzle", subject),
		Stars:       starsEarned,
	}); err != nil {
		return nil, err
	}

	return &PuzzleResult{User: updated, Correct: true, StarsEarned: starsEarned}, nil
}

// OpenTopic stamps a topic as accessed so continue-learning can find it.
func (s *ProgressService) OpenTopic(username, subject, topic string) error {
	user, err := s.store.User(username)
	if err != nil {
		return err
	}

	topics, ok := user.Progress[subject]
	if !ok {
		return ErrUnknownTopic
	}
	tp, ok := topics[topic]
	if !ok {
		return ErrUnknownTopic
	}

	now := time.Now().UTC()
	tp.LastAccessed = &now

	_, err = s.store.UpdateUser(username, models.UserUpdate{Progress: user.Progress})
	return err
}

// ContinueLearning returns the most recently accessed (subject, topic)
// pair, or ok=false when the user has not opened anything yet.
func (s *ProgressService) ContinueLearning(username string) (subject, topic string, ok bool, err error) {
	user, err := s.store.User(username)
	if err != nil {
		return "", "", false, err
	}

	var latest time.Time
	for subj, topics := range user.Progress {
		for name, tp := range topics {
			if tp.LastAccessed != nil && tp.LastAccessed.After(latest) {
				latest = *tp.LastAccessed
				subject = subj
				topic = name
				ok = true
			}
		}
	}
	return subject, topic, ok, nil
}

// DashboardStats summarizes a user's overall progress for the dashboard.
type DashboardStats struct {
	CompletedTopics int `json:"completedTopics"`
	TotalTopics     int `json:"totalTopics"`
	StudyHours      int `json:"studyHours"`
	StudyMinutes    int `json:"studyMinutes"`
	Rank            int `json:"rank"` // 0 when outside the leaderboard
}

// Stats computes dashboard statistics for a user.
func (s *ProgressService) Stats(username string) (*DashboardStats, error) {
	user, err := s.store.User(username)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		StudyHours:   user.StudyTime / 60,
		StudyMinutes: user.StudyTime % 60,
	}
	for _, topics := range user.Progress {
		for _, tp := range topics {
			stats.TotalTopics++
			if tp.Completed {
				stats.CompletedTopics++
			}
		}
	}

	leaderboard, err := s.store.Leaderboard()
	if err != nil {
		return nil, err
	}
	for _, entry := range leaderboard {
		if entry.Username == username {
			stats.Rank = entry.Rank
			break
		}
	}
	return stats, nil
}
