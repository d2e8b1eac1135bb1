// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/exam-extract/pkg/types"
)

// QueryOptions holds parameters for catalog queries (R2, R3).
type QueryOptions struct {
	// Query is the FTS5 full-text search string over question text.
	Query string

	// RunID filters by extraction run.
	RunID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.RunID == ""
}

// SearchResult is a QuestionRecord with its run provenance.
type SearchResult struct {
	types.QuestionRecord `yaml:",inline"`

	RunID   string `json:"run_id" yaml:"run_id"`
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`
}

// RunInfo summarizes one recorded extraction run.
type RunInfo struct {
	ID        string `json:"id" yaml:"id"`
	PDFPath   string `json:"pdf_path" yaml:"pdf_path"`
	Method    string `json:"method" yaml:"method"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	Pages     int    `json:"pages" yaml:"pages"`
	Questions int    `json:"questions" yaml:"questions"`
	Images    int    `json:"images" yaml:"images"`
}

// Search queries the catalog with optional full-text search and a run
// filter. Full-text queries are ranked by relevance; run-only queries are
// sorted by page order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]SearchResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT q.run_id, q.page, q.question, q.image, q.option_images, r.pdf_path
			FROM questions_fts
			JOIN questions q ON q.rowid = questions_fts.rowid
			LEFT JOIN runs r ON q.run_id = r.id
			WHERE questions_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT q.run_id, q.page, q.question, q.image, q.option_images, r.pdf_path
			FROM questions q
			LEFT JOIN runs r ON q.run_id = r.id
			WHERE 1=1`)
	}

	if opts.RunID != "" {
		qb.WriteString(` AND q.run_id = ?`)
		args = append(args, opts.RunID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY questions_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY q.run_id, q.page, q.rowid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			sr      SearchResult
			image   sql.NullString
			optJSON sql.NullString
			pdfPath sql.NullString
		)

		if err := rows.Scan(
			&sr.RunID, &sr.PageNumber, &sr.Question, &image, &optJSON, &pdfPath,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if image.Valid {
			sr.Images = image.String
		}
		if optJSON.Valid {
			json.Unmarshal([]byte(optJSON.String), &sr.OptionImages)
		}
		if sr.OptionImages == nil {
			sr.OptionImages = []string{}
		}
		if pdfPath.Valid {
			sr.PDFPath = pdfPath.String
		}

		results = append(results, sr)
	}

	return results, rows.Err()
}

// Runs lists recorded extraction runs, most recent first.
func (s *Store) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, pdf_path, method, created_at, pages, questions, images
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(
			&r.ID, &r.PDFPath, &r.Method, &r.CreatedAt, &r.Pages, &r.Questions, &r.Images,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
