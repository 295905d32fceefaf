package models

import "time"

// VideosPerTopic is the fixed number of videos in every syllabus topic.
const VideosPerTopic = 3

// User represents one learner's full profile and progress state.
// The username is the unique key and is immutable after creation.
// Passwords are stored and compared verbatim; hardening the credential
// store is an explicit non-goal of this system.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Class    int    `json:"class"`
	Email    string `json:"email,omitempty"`

	Stars              int `json:"stars"`
	Streak             int `json:"streak"`
	Level              int `json:"level"`
	TotalVideosWatched int `json:"totalVideosWatched"`
	DailyGoal          int `json:"dailyGoal"`
	StudyTime          int `json:"studyTime"` // minutes

	JoinDate  time.Time `json:"joinDate"`
	LastLogin time.Time `json:"lastLogin"`

	// Progress maps subject -> topic name -> per-topic state.
	Progress map[string]map[string]*TopicProgress `json:"progress"`

	RecentActivity []Activity `json:"recentActivity"`
	Achievements   []string   `json:"achievements"`

	// Seq records creation order for stable leaderboard tie-breaks.
	Seq int64 `json:"seq"`
}

// TopicProgress tracks completion of one (subject, topic) pair.
// Invariants: VideosWatched <= TotalVideos, Completed is true exactly
// when VideosWatched == TotalVideos, and Percent reflects the ratio.
type TopicProgress struct {
	Completed     bool       `json:"completed"`
	Percent       int        `json:"progress"`
	VideosWatched int        `json:"videosWatched"`
	TotalVideos   int        `json:"totalVideos"`
	TimeSpent     int        `json:"timeSpent"` // minutes
	LastAccessed  *time.Time `json:"lastAccessed"`
}

// NewTopicProgress returns the initial state for an unstarted topic.
func NewTopicProgress() *TopicProgress {
	return &TopicProgress{TotalVideos: VideosPerTopic}
}

// RecalcPercent rederives Percent and Completed from VideosWatched.
func (tp *TopicProgress) RecalcPercent() {
	if tp.TotalVideos <= 0 {
		tp.Percent = 0
		tp.Completed = false
		return
	}
	tp.Percent = int(float64(tp.VideosWatched)/float64(tp.TotalVideos)*100 + 0.5)
	tp.Completed = tp.VideosWatched >= tp.TotalVideos
}

// Overrides carries optional initial values for a new user. Zero values
// fall back to the defaults of a fresh account (level 1, timestamps of
// "now"), so seeding demo accounts and normal signups share one path.
type Overrides struct {
	Stars              int
	Streak             int
	Level              int
	TotalVideosWatched int
	DailyGoal          int
	StudyTime          int
	Email              string
	JoinDate           time.Time
	LastLogin          time.Time
}

// UserUpdate describes a partial update to a user record. Nil fields
// are preserved; non-nil fields entirely replace their prior values.
type UserUpdate struct {
	Password           *string
	FullName           *string
	Class              *int
	Email              *string
	Stars              *int
	Streak             *int
	Level              *int
	TotalVideosWatched *int
	DailyGoal          *int
	StudyTime          *int
	Progress           map[string]map[string]*TopicProgress
	Achievements       []string
}
