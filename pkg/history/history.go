// Package history records completed conversions in a SQLite database for
// the diagnostics surface. Recording is optional: the pipeline works the
// same with no store configured.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one completed conversion.
type Record struct {
	ID           string    `json:"id"`
	MessageHash  string    `json:"message_hash"`
	Gender       string    `json:"gender"`
	Quality      string    `json:"quality"`
	QualityScore int       `json:"quality_score"`
	Source       string    `json:"source"` // extraction source: model or local
	Fallback     bool      `json:"fallback"`
	Enhanced     bool      `json:"enhanced"`
	CreatedAt    time.Time `json:"created_at"`
}

// QualitySummary aggregates conversions for one quality level.
type QualitySummary struct {
	Quality     string  `json:"quality"`
	Conversions int64   `json:"conversions"`
	AvgScore    float64 `json:"avg_score"`
	Fallbacks   int64   `json:"fallbacks"`
	Enhanced    int64   `json:"enhanced"`
}

// Store persists conversion records in SQLite.
type Store struct {
	db *sql.DB
}

const createTable = `
CREATE TABLE IF NOT EXISTS conversions (
	id TEXT PRIMARY KEY,
	message_hash TEXT NOT NULL,
	gender TEXT NOT NULL,
	quality TEXT NOT NULL,
	quality_score INTEGER NOT NULL,
	source TEXT NOT NULL,
	fallback INTEGER NOT NULL DEFAULT 0,
	enhanced INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_conversions_time ON conversions(created_at);
`

// New opens the history database and runs auto-migration.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

// Record stores one conversion.
func (s *Store) Record(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, message_hash, gender, quality, quality_score, source, fallback, enhanced, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.MessageHash, rec.Gender, rec.Quality, rec.QualityScore,
		rec.Source, rec.Fallback, rec.Enhanced, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record conversion: %w", err)
	}
	return nil
}

// Recent returns the latest records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, message_hash, gender, quality, quality_score, source, fallback, enhanced, created_at
		 FROM conversions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.MessageHash, &r.Gender, &r.Quality, &r.QualityScore,
			&r.Source, &r.Fallback, &r.Enhanced, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Summary returns aggregates grouped by quality level.
func (s *Store) Summary(ctx context.Context) ([]QualitySummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT quality, COUNT(*), AVG(quality_score), SUM(fallback), SUM(enhanced)
		 FROM conversions GROUP BY quality ORDER BY quality`)
	if err != nil {
		return nil, fmt.Errorf("history summary: %w", err)
	}
	defer rows.Close()

	var summaries []QualitySummary
	for rows.Next() {
		var q QualitySummary
		if err := rows.Scan(&q.Quality, &q.Conversions, &q.AvgScore, &q.Fallbacks, &q.Enhanced); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, q)
	}
	return summaries, rows.Err()
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
