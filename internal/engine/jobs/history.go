package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jobsift/jobsift/internal/engine"
)

// SearchEntry is one recorded aggregation run.
type SearchEntry struct {
	ID             int64    `json:"id"`
	Keywords       []string `json:"keywords"`
	Location       string   `json:"location,omitempty"`
	FromSkillsFile bool     `json:"from_skills_file"`
	Total          int      `json:"total"`
	TopTitle       string   `json:"top_title,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

// SearchHistoryInput is the input for the search_history tool.
type SearchHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default 20, max 100)"`
}

// SearchHistoryOutput is the structured output for search_history.
type SearchHistoryOutput struct {
	Entries []SearchEntry `json:"entries"`
	Total   int           `json:"total"`
}

// History persists a log of past searches in a local SQLite database.
type History struct {
	db *sql.DB
}

// OpenHistory opens (or creates) the search history database at path,
// creating parent directories as needed.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("history: mkdir %s: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initHistorySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}
	return &History{db: db}, nil
}

func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		keywords         TEXT NOT NULL,
		location         TEXT,
		from_skills_file INTEGER NOT NULL DEFAULT 0,
		total            INTEGER NOT NULL,
		top_title        TEXT,
		created_at       TEXT NOT NULL
	)`)
	return err
}

// Record appends one search run. Keywords are stored as a JSON array; the
// top title is a small sample of what the run returned, trimmed so a single
// pathological posting cannot bloat the log.
func (h *History) Record(ctx context.Context, res KeywordResolution, location string, jobs []engine.JobRecord) error {
	kw, err := json.Marshal(res.Keywords)
	if err != nil {
		return fmt.Errorf("history: encode keywords: %w", err)
	}
	topTitle := ""
	if len(jobs) > 0 {
		topTitle = engine.Truncate(jobs[0].Title, 200)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = h.db.ExecContext(ctx,
		`INSERT INTO searches (keywords, location, from_skills_file, total, top_title, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(kw), location, res.FromSkillsFile, len(jobs), topTitle, now,
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]SearchEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, keywords, location, from_skills_file, total, top_title, created_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []SearchEntry{}
	for rows.Next() {
		var e SearchEntry
		var kw string
		var location, topTitle sql.NullString
		if err := rows.Scan(&e.ID, &kw, &location, &e.FromSkillsFile, &e.Total, &topTitle, &e.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(kw), &e.Keywords); err != nil {
			e.Keywords = []string{kw}
		}
		e.Location = location.String
		e.TopTitle = topTitle.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (h *History) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}
