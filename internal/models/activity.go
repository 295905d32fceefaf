package models

import "time"

// Activity is one entry in a user's recent-action history. Entries are
// immutable once created; the store keeps only the 10 newest.
type Activity struct {
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Stars       int       `json:"stars,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
