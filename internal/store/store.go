package store

import (
	"fmt"
	"sort"
	"time"

	"eduquest/internal/models"
	"eduquest/internal/syllabus"
)

// Storage persists the single Document. Load returns (nil, nil) when no
// Document has been written yet.
type Storage interface {
	Load() (*models.Document, error)
	Save(doc *models.Document) error
}

// Store is the progress store: a durable mapping from username to user
// record plus a read-only leaderboard projection. It holds no state
// between calls — every operation re-reads the Document from storage,
// mutates it in memory, and rewrites it whole.
type Store struct {
	storage Storage
}

// New creates a store over the given document storage.
func New(storage Storage) *Store {
	return &Store{storage: storage}
}

// load fetches the current Document, lazily creating an empty one when
// none has been persisted yet.
func (s *Store) load() (*models.Document, error) {
	doc, err := s.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc == nil {
		doc = models.NewDocument()
	}
	return doc, nil
}

func (s *Store) save(doc *models.Document) error {
	doc.LastUpdated = time.Now().UTC()
	if err := s.storage.Save(doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Initialize ensures a Document exists, seeding two demonstration
// accounts on first run. Calling it when a Document is already
// persisted is a no-op.
func (s *Store) Initialize() error {
	doc, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if doc != nil {
		return nil
	}

	if err := s.save(models.NewDocument()); err != nil {
		return err
	}

	now := time.Now().UTC()
	demos := []struct {
		username, password, fullName string
		class                        int
		ov                           models.Overrides
	}{
		{"demo1", "demo123", "Alex Johnson", 8, models.Overrides{
			Stars:              1250,
			Streak:             7,
			Level:              3,
			TotalVideosWatched: 25,
			DailyGoal:          2,
			StudyTime:          450,
			JoinDate:           now.AddDate(0, 0, -30),
			LastLogin:          now.AddDate(0, 0, -1),
		}},
		{"demo2", "demo123", "Priya Sharma", 10, models.Overrides{
			Stars:              2100,
			Streak:             12,
			Level:              5,
			TotalVideosWatched: 45,
			DailyGoal:          3,
			StudyTime:          720,
			JoinDate:           now.AddDate(0, 0, -60),
			LastLogin:          now,
		}},
	}

	for _, d := range demos {
		if _, err := s.CreateUser(d.username, d.password, d.fullName, d.class, &d.ov); err != nil {
			return fmt.Errorf("failed to seed demo user %s: %w", d.username, err)
		}
	}
	return nil
}

// CreateUser builds a new user record with progress seeded from the
// syllabus for the given class. Overrides supply initial gamification
// state for seeded accounts; zero values fall back to a fresh account.
func (s *Store) CreateUser(username, password, fullName string, class int, ov *models.Overrides) (*models.User, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	if _, exists := doc.Users[username]; exists {
		return nil, ErrDuplicateUsername
	}

	if ov == nil {
		ov = &models.Overrides{}
	}
	now := time.Now().UTC()

	user := &models.User{
		Username:           username,
		Password:           password,
		FullName:           fullName,
		Class:              class,
		Email:              ov.Email,
		Stars:              ov.Stars,
		Streak:             ov.Streak,
		Level:              ov.Level,
		TotalVideosWatched: ov.TotalVideosWatched,
		DailyGoal:          ov.DailyGoal,
		StudyTime:          ov.StudyTime,
		JoinDate:           ov.JoinDate,
		LastLogin:          ov.LastLogin,
		Progress:           InitializeProgress(class),
		RecentActivity:     []models.Activity{},
		Achievements:       []string{},
		Seq:                doc.NextSeq(),
	}
	if user.Level == 0 {
		user.Level = 1
	}
	if user.JoinDate.IsZero() {
		user.JoinDate = now
	}
	if user.LastLogin.IsZero() {
		user.LastLogin = now
	}

	doc.Users[username] = user
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials with a verbatim password comparison
// and records the login instant on success.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	user, exists := doc.Users[username]
	if !exists || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = time.Now().UTC()
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return user, nil
}

// User fetches a single record without side effects.
func (s *Store) User(username string) (*models.User, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	user, exists := doc.Users[username]
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Users returns every record in creation order. Pure read.
func (s *Store) Users() ([]*models.User, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0, len(doc.Users))
	for _, u := range doc.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Seq < users[j].Seq })
	return users, nil
}

// UpdateUser merges the given fields into an existing record. Nil
// fields are preserved; non-nil fields replace their prior values.
func (s *Store) UpdateUser(username string, upd models.UserUpdate) (*models.User, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	user, exists := doc.Users[username]
	if !exists {
		return nil, ErrUserNotFound
	}

	if upd.Password != nil {
		user.Password = *upd.Password
	}
	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Class != nil {
		user.Class = *upd.Class
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Stars != nil {
		user.Stars = *upd.Stars
	}
	if upd.Streak != nil {
		user.Streak = *upd.Streak
	}
	if upd.Level != nil {
		user.Level = *upd.Level
	}
	if upd.TotalVideosWatched != nil {
		user.TotalVideosWatched = *upd.TotalVideosWatched
	}
	if upd.DailyGoal != nil {
		user.DailyGoal = *upd.DailyGoal
	}
	if upd.StudyTime != nil {
		user.StudyTime = *upd.StudyTime
	}
	if upd.Progress != nil {
		user.Progress = upd.Progress
	}
	if upd.Achievements != nil {
		user.Achievements = upd.Achievements
	}

	if err := s.save(doc); err != nil {
		return nil, err
	}
	return user, nil
}

// AppendActivity prepends an activity to the user's history, stamped
// with the current instant, keeping only the 10 newest entries. A
// missing user is a deliberate no-op, not an error.
func (s *Store) AppendActivity(username string, activity models.Activity) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	user, exists := doc.Users[username]
	if !exists {
		return nil
	}

	activity.Timestamp = time.Now().UTC()
	user.RecentActivity = append([]models.Activity{activity}, user.RecentActivity...)
	if len(user.RecentActivity) > 10 {
		user.RecentActivity = user.RecentActivity[:10]
	}

	return s.save(doc)
}

// Leaderboard returns the top 10 users ranked by stars descending.
// Ties keep creation order. Pure read, no side effects.
func (s *Store) Leaderboard() ([]models.LeaderboardEntry, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(doc.Users))
	for _, u := range doc.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Stars != users[j].Stars {
			return users[i].Stars > users[j].Stars
		}
		return users[i].Seq < users[j].Seq
	})

	if len(users) > 10 {
		users = users[:10]
	}

	entries := make([]models.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = models.LeaderboardEntry{
			Rank:     i + 1,
			Username: u.Username,
			FullName: u.FullName,
			Stars:    u.Stars,
			Level:    u.Level,
			Streak:   u.Streak,
			Class:    u.Class,
		}
	}
	return entries, nil
}

// ResetProgress reseeds the user's progress for their current class and
// zeroes all gamification state.
func (s *Store) ResetProgress(username string) (*models.User, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	user, exists := doc.Users[username]
	if !exists {
		return nil, ErrUserNotFound
	}

	user.Progress = InitializeProgress(user.Class)
	user.Stars = 0
	user.Streak = 0
	user.Level = 1
	user.TotalVideosWatched = 0
	user.DailyGoal = 0
	user.StudyTime = 0
	user.RecentActivity = []models.Activity{}
	user.Achievements = []string{}

	if err := s.save(doc); err != nil {
		return nil, err
	}
	return user, nil
}

// InitializeProgress instantiates an unstarted TopicProgress for every
// topic the syllabus lists for the class, across all subjects.
func InitializeProgress(class int) map[string]map[string]*models.TopicProgress {
	progress := make(map[string]map[string]*models.TopicProgress, len(syllabus.Subjects))
	for _, subject := range syllabus.Subjects {
		progress[subject] = make(map[string]*models.TopicProgress)
		for _, topic := range syllabus.Topics(subject, class) {
			progress[subject][topic] = models.NewTopicProgress()
		}
	}
	return progress
}
