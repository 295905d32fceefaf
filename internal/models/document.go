package models

import "time"

// Document is the root persisted object: every user record keyed by
// username, plus the instant of the last write. Exactly one Document
// exists per deployment; it is read in full and rewritten in full on
// every mutation.
type Document struct {
	Users       map[string]*User `json:"users"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// NewDocument creates an empty Document with no users.
func NewDocument() *Document {
	return &Document{
		Users:       make(map[string]*User),
		LastUpdated: time.Now().UTC(),
	}
}

// NextSeq returns the creation sequence number for the next user.
// Users are never deleted, so the map size is a reliable counter.
func (d *Document) NextSeq() int64 {
	return int64(len(d.Users)) + 1
}
