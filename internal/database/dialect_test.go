package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT body FROM documents WHERE doc_key = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() = %v, want unchanged", got)
		}
	})

	t.Run("UpsertDocumentQuery", func(t *testing.T) {
		query := dialect.UpsertDocumentQuery()
		if !strings.Contains(query, "ON CONFLICT") {
			t.Errorf("UpsertDocumentQuery() = %v, want ON CONFLICT clause", query)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			want  string
		}{
			{
				"single placeholder",
				"SELECT body FROM documents WHERE doc_key = ?",
				"SELECT body FROM documents WHERE doc_key = $1",
			},
			{
				"multiple placeholders",
				"INSERT INTO documents (doc_key, body) VALUES (?, ?)",
				"INSERT INTO documents (doc_key, body) VALUES ($1, $2)",
			},
			{
				"no placeholders",
				"SELECT COUNT(*) FROM migrations",
				"SELECT COUNT(*) FROM migrations",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := dialect.RewriteQuery(tt.query); got != tt.want {
					t.Errorf("RewriteQuery() = %v, want %v", got, tt.want)
				}
			})
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "mysql" {
			t.Errorf("MigrationsSubdir() = %v, want mysql", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT body FROM documents WHERE doc_key = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() = %v, want unchanged", got)
		}
	})

	t.Run("UpsertDocumentQuery", func(t *testing.T) {
		query := dialect.UpsertDocumentQuery()
		if !strings.Contains(query, "ON DUPLICATE KEY UPDATE") {
			t.Errorf("UpsertDocumentQuery() = %v, want ON DUPLICATE KEY UPDATE clause", query)
		}
	})
}
