package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"eduquest/internal/models"
)

// DocumentKey is the fixed storage key the progress Document lives under.
const DocumentKey = "eduquest_db"

// DocumentStore persists the single JSON Document in the documents
// table, one row per key. It implements store.Storage.
type DocumentStore struct {
	db  *DB
	key string
}

// NewDocumentStore creates a document store bound to the default key.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db, key: DocumentKey}
}

// Load reads and decodes the Document, or returns (nil, nil) when no
// row exists for the key yet.
func (s *DocumentStore) Load() (*models.Document, error) {
	var body string
	query := "SELECT body FROM documents WHERE doc_key = ?"
	err := s.db.QueryRow(query, s.key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if doc.Users == nil {
		doc.Users = make(map[string]*models.User)
	}
	return &doc, nil
}

// Save encodes the Document and writes it whole, replacing any prior
// body under the key.
func (s *DocumentStore) Save(doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if _, err := s.db.Exec(s.db.Dialect.UpsertDocumentQuery(), s.key, string(body)); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
