// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes extraction results into the output directory.
// Files are overwritten on each run; there is no merge or append.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/exam-extract/pkg/types"
)

const (
	pagesFile     = "raw_pages.json"
	questionsFile = "questions.json"
	manifestFile  = "manifest.yaml"
)

// WritePages writes the per-page records to raw_pages.json.
func WritePages(outputDir string, pages []types.PageRecord) error {
	if pages == nil {
		pages = []types.PageRecord{}
	}
	return writeJSON(filepath.Join(outputDir, pagesFile), pages)
}

// WriteQuestions writes the question records to questions.json.
func WriteQuestions(outputDir string, questions []types.QuestionRecord) error {
	if questions == nil {
		questions = []types.QuestionRecord{}
	}
	return writeJSON(filepath.Join(outputDir, questionsFile), questions)
}

// WriteManifest writes the run manifest as manifest.yaml.
func WriteManifest(outputDir string, m types.RunManifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	path := filepath.Join(outputDir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
