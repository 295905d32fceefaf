package service

import (
	"encoding/json"
	"fmt"
	"os"

	"eduquest/internal/models"
	"eduquest/internal/store"
)

// BackupService exports and imports the progress Document as a JSON
// file, for operator-driven backup and restore.
type BackupService struct {
	storage store.Storage
}

// NewBackupService creates a new backup service
func NewBackupService(storage store.Storage) *BackupService {
	return &BackupService{storage: storage}
}

// Export writes the current Document to a JSON file.
func (s *BackupService) Export(path string) error {
	doc, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if doc == nil {
		doc = models.NewDocument()
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// Import reads a Document from a JSON file. With replace set, the
// persisted Document is overwritten wholesale; otherwise imported
// users are merged in, skipping usernames that already exist.
func (s *BackupService) Import(path string, replace bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var imported models.Document
	if err := json.Unmarshal(data, &imported); err != nil {
		return fmt.Errorf("failed to decode backup file: %w", err)
	}
	if imported.Users == nil {
		imported.Users = make(map[string]*models.User)
	}

	if replace {
		if err := s.storage.Save(&imported); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		return nil
	}

	current, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if current == nil {
		current = models.NewDocument()
	}

	for username, user := range imported.Users {
		if _, exists := current.Users[username]; exists {
			continue
		}
		user.Seq = current.NextSeq()
		current.Users[username] = user
	}

	if err := s.storage.Save(current); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
