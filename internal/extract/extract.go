// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls plain text and embedded raster images out of PDF
// files, one page at a time, with pluggable text backends.
// Implements: prd001-extraction (R1-R4).
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/exam-extract/pkg/types"
)

// imagesDir is the subdirectory under the output base for saved images.
const imagesDir = "images"

// Backend reads text from a PDF. Different libraries (MuPDF, ledongthuc/pdf)
// implement this interface.
type Backend interface {
	// Name identifies the backend in logs and the run manifest.
	Name() types.Method

	// Open parses the PDF at path. Open failures (missing file, corrupt or
	// encrypted document) are fatal to the run.
	Open(path string) (Document, error)
}

// Document is an open PDF positioned for per-page text extraction.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageText returns the plain text of the 1-based page pageNum.
	PageText(pageNum int) (string, error)

	// Close releases the underlying file handle.
	Close() error
}

// ImageExtractor saves the embedded raster images of one page and returns
// their file paths in a stable order.
type ImageExtractor interface {
	// PageImages extracts the images embedded in the 1-based page pageNum
	// of the PDF at pdfPath, saving them under destDir as
	// page_<pageNum>_image_<n> with the source extension preserved.
	PageImages(pdfPath string, pageNum int, destDir string) ([]string, error)
}

// RunSummary holds the outcome of one extraction run.
type RunSummary struct {
	Pages       int
	Images      int
	FailedPages int
}

// HasFailures reports whether any page failed text extraction.
func (s RunSummary) HasFailures() bool {
	return s.FailedPages > 0
}

// Run extracts every page of the PDF at pdfPath, saving images under
// outputDir/images/ and returning records in page order. Opening the
// document is the only fatal step: per-page text failures are logged and
// counted, with the page still emitted (empty text) so numbering stays
// dense, and image failures are logged with the images omitted from their
// record. Progress lines go to w.
func Run(b Backend, imgs ImageExtractor, pdfPath, outputDir string, log *slog.Logger, w io.Writer) ([]types.PageRecord, RunSummary, error) {
	doc, err := b.Open(pdfPath)
	if err != nil {
		return nil, RunSummary{}, fmt.Errorf("opening %s with %s: %w", pdfPath, b.Name(), err)
	}
	defer doc.Close()

	destDir := filepath.Join(outputDir, imagesDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, RunSummary{}, fmt.Errorf("creating image directory: %w", err)
	}

	summary := RunSummary{Pages: doc.PageCount()}
	log.Info("extracting", "pdf", pdfPath, "method", string(b.Name()), "pages", summary.Pages)

	records := make([]types.PageRecord, 0, summary.Pages)
	for pageNum := 1; pageNum <= summary.Pages; pageNum++ {
		text, err := doc.PageText(pageNum)
		if err != nil {
			log.Warn("text extraction failed, page text dropped", "page", pageNum, "error", err)
			summary.FailedPages++
			text = ""
		}

		paths := []string{}
		if imgs != nil {
			extracted, err := imgs.PageImages(pdfPath, pageNum, destDir)
			if err != nil {
				log.Warn("image extraction failed, images omitted", "page", pageNum, "error", err)
			} else if extracted != nil {
				paths = extracted
			}
		}
		summary.Images += len(paths)

		records = append(records, types.PageRecord{
			PageNumber: pageNum,
			Text:       strings.TrimSpace(text),
			Images:     paths,
			ImageCount: len(paths),
		})
		fmt.Fprintf(w, "page %d: %d images, %d text bytes\n", pageNum, len(paths), len(text))
		log.Debug("page done", "page", pageNum, "images", len(paths))
	}

	log.Info("extraction complete",
		"pages", len(records), "images", summary.Images, "failed_pages", summary.FailedPages)
	return records, summary, nil
}
