// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/exam-extract/internal/catalog"
	"github.com/pdiddy/exam-extract/internal/extract"
	"github.com/pdiddy/exam-extract/internal/parse"
	"github.com/pdiddy/exam-extract/internal/report"
	"github.com/pdiddy/exam-extract/pkg/types"
)

const logFileName = "extraction.log"

func runExtract(cmd *cobra.Command, args []string) error {
	pdfPath := args[0]
	cfg := extractorConfig(cmd)

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	// Logging starts stderr-only: the log file lives in the output
	// directory, and a bad input path must leave nothing behind.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if _, err := os.Stat(pdfPath); err != nil {
		log.Error("input PDF not readable", "path", pdfPath, "error", err)
		return fmt.Errorf("input PDF: %w", err)
	}

	backend, err := backendFor(cfg.Method)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logFile, err := os.Create(filepath.Join(cfg.OutputDir, logFileName))
	if err != nil {
		return fmt.Errorf("creating %s: %w", logFileName, err)
	}
	defer logFile.Close()

	log = slog.New(slog.NewTextHandler(
		io.MultiWriter(os.Stderr, logFile),
		&slog.HandlerOptions{Level: level},
	))

	started := time.Now().UTC()
	images := extract.PDFCPUImages{Log: log}
	pages, summary, err := extract.Run(backend, images, pdfPath, cfg.OutputDir, log, os.Stdout)
	if err != nil {
		log.Error("extraction failed", "error", err)
		return err
	}

	var questions []types.QuestionRecord
	for _, p := range pages {
		questions = append(questions, parse.Questions(p.PageNumber, p.Text, p.Images)...)
	}
	log.Info("questions parsed", "count", len(questions))

	if err := report.WritePages(cfg.OutputDir, pages); err != nil {
		return err
	}
	if err := report.WriteQuestions(cfg.OutputDir, questions); err != nil {
		return err
	}

	manifest := types.RunManifest{
		RunID:       uuid.NewString(),
		PDFPath:     pdfPath,
		Method:      cfg.Method,
		StartedAt:   started,
		FinishedAt:  time.Now().UTC(),
		Pages:       summary.Pages,
		Questions:   len(questions),
		Images:      summary.Images,
		FailedPages: summary.FailedPages,
	}
	if err := report.WriteManifest(cfg.OutputDir, manifest); err != nil {
		return err
	}

	if noIndex, _ := cmd.Flags().GetBool("no-index"); !noIndex {
		// The JSON output is already on disk; a catalog failure degrades
		// the run rather than failing it.
		if err := indexRun(cmd, cfg.OutputDir, manifest, questions); err != nil {
			log.Warn("catalog indexing failed", "error", err)
		}
	}

	fmt.Printf("\nExtraction complete: %d pages, %d questions, %d images\n",
		summary.Pages, len(questions), summary.Images)
	if summary.HasFailures() {
		fmt.Printf("Pages with failed text extraction: %d (see %s)\n",
			summary.FailedPages, filepath.Join(cfg.OutputDir, logFileName))
	}
	fmt.Printf("Output directory: %s\n", cfg.OutputDir)
	return nil
}

func indexRun(cmd *cobra.Command, outputDir string, m types.RunManifest, questions []types.QuestionRecord) error {
	store, err := catalog.NewStore(types.CatalogConfig{
		OutputDir:  outputDir,
		MaxResults: viper.GetInt("catalog.max_results"),
	})
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(cmd.Context(), m, questions)
}

func backendFor(m types.Method) (extract.Backend, error) {
	switch m {
	case types.MethodFitz:
		return extract.FitzBackend{}, nil
	case types.MethodPDFText:
		return extract.PDFTextBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction method %q: use fitz or pdftext", m)
	}
}
