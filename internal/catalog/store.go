// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extraction runs and their question records in a
// SQLite database with FTS5 full-text search over the question text.
// Implements: prd003-catalog (R1-R4).
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/exam-extract/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Store manages the question catalog SQLite database.
type Store struct {
	db         *sql.DB
	outputDir  string
	maxResults int
}

// NewStore opens or creates the catalog database at
// outputDir/index/catalog.db, creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.OutputDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, outputDir: cfg.OutputDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			pdf_path TEXT NOT NULL,
			method TEXT NOT NULL,
			created_at TEXT NOT NULL,
			pages INTEGER,
			questions INTEGER,
			images INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			page INTEGER,
			question TEXT NOT NULL,
			image TEXT,
			option_images TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_run_id ON questions(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='questions_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE questions_fts USING fts5(question, content=questions, content_rowid=rowid)`,
			`CREATE TRIGGER questions_ai AFTER INSERT ON questions BEGIN
				INSERT INTO questions_fts(rowid, question) VALUES (new.rowid, new.question);
			END`,
			`CREATE TRIGGER questions_ad AFTER DELETE ON questions BEGIN
				INSERT INTO questions_fts(questions_fts, rowid, question) VALUES('delete', old.rowid, old.question);
			END`,
			`CREATE TRIGGER questions_au AFTER UPDATE ON questions BEGIN
				INSERT INTO questions_fts(questions_fts, rowid, question) VALUES('delete', old.rowid, old.question);
				INSERT INTO questions_fts(rowid, question) VALUES (new.rowid, new.question);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// RecordRun inserts a run manifest and its question records in one
// transaction (R1.3).
func (s *Store) RecordRun(ctx context.Context, m types.RunManifest, questions []types.QuestionRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, pdf_path, method, created_at, pages, questions, images)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.RunID, m.PDFPath, string(m.Method),
		m.FinishedAt.UTC().Format(time.RFC3339),
		m.Pages, m.Questions, m.Images,
	); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for _, q := range questions {
		optJSON, err := json.Marshal(q.OptionImages)
		if err != nil {
			return fmt.Errorf("marshaling option images: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (run_id, page, question, image, option_images)
			 VALUES (?, ?, ?, ?, ?)`,
			m.RunID, q.PageNumber, q.Question, q.Images, string(optJSON),
		); err != nil {
			return fmt.Errorf("inserting question: %w", err)
		}
	}

	return tx.Commit()
}
