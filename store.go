package pubfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultThemeSetting is the settings key holding the site-wide default
// theme name.
const DefaultThemeSetting = "default_theme"

// Store wraps a SQLite database holding imported content documents and site
// settings. It implements Source.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the server read while an import writes; busy_timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS documents (
    slug TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    body BLOB NOT NULL,
    imported_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// List returns every stored slug ordered by slug, matching the file-name
// order of a DirSource.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug FROM documents ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Get returns the document stored under slug.
func (s *Store) Get(ctx context.Context, slug string) (Document, error) {
	var name string
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT name, body FROM documents WHERE slug = ?`, slug).Scan(&name, &body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return Document{Slug: slug, Name: name, Body: body}, nil
}

// SaveDocument upserts a document.
func (s *Store) SaveDocument(ctx context.Context, doc Document) error {
	return saveDocument(ctx, s.db, doc)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveDocument(ctx context.Context, db execer, doc Document) error {
	if !validSlug(doc.Slug) {
		return fmt.Errorf("invalid slug %q", doc.Slug)
	}
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO documents (slug, name, body, imported_at) VALUES (?, ?, ?, ?)`,
		doc.Slug, doc.Name, doc.Body, time.Now().UTC().Format(time.RFC3339))
	return err
}

// DeleteDocument removes a document by slug. Deleting a missing slug is not
// an error.
func (s *Store) DeleteDocument(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE slug = ?`, slug)
	return err
}

// ImportSource copies every document of src into the store in a single
// transaction and returns how many were written. With prune set, stored
// documents absent from src are deleted.
func (s *Store) ImportSource(ctx context.Context, src Source, prune bool) (int, error) {
	slugs, err := src.List(ctx)
	if err != nil {
		return 0, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if prune {
		if _, err := tx.ExecContext(ctx, `DELETE FROM documents`); err != nil {
			return 0, err
		}
	}
	n := 0
	for _, slug := range slugs {
		doc, err := src.Get(ctx, slug)
		if err != nil {
			return n, fmt.Errorf("import %s: %w", slug, err)
		}
		if err := saveDocument(ctx, tx, doc); err != nil {
			return n, fmt.Errorf("import %s: %w", slug, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// GetSetting returns the value stored under key, or "" if unset.
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// SetSetting upserts a setting.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}
