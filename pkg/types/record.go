// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PageRecord holds the content extracted from a single PDF page.
// Records appear in page order; page numbers are 1-based.
type PageRecord struct {
	// PageNumber is the 1-based page index within the source PDF.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// Text is the extracted plain text, whitespace-trimmed. Empty when the
	// page has no text layer or its extraction failed.
	Text string `json:"text" yaml:"text"`

	// Images lists the saved image files in extraction order.
	Images []string `json:"images" yaml:"images"`

	// ImageCount equals len(Images).
	ImageCount int `json:"image_count" yaml:"image_count"`
}

// QuestionRecord associates question text with nearby images. The
// association is positional (image index proximity), not layout-aware;
// treat it as best-effort.
type QuestionRecord struct {
	// Question is the accumulated question text. Empty when a page held
	// images but no recognizable question lead.
	Question string `json:"question" yaml:"question"`

	// PageNumber is the page the question was found on.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// Images is the path of the question's primary image, or "" if none.
	Images string `json:"images" yaml:"images"`

	// OptionImages lists the remaining images apportioned to the question,
	// in extraction order.
	OptionImages []string `json:"option_images" yaml:"option_images"`
}

// RunManifest summarizes one extraction run. Written as manifest.yaml
// alongside the JSON output and recorded in the catalog.
type RunManifest struct {
	// RunID is a random UUID identifying the run.
	RunID string `json:"run_id" yaml:"run_id"`

	// PDFPath is the source document as given on the command line.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// Method is the text backend used for the run.
	Method Method `json:"method" yaml:"method"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	// Pages is the page count of the source document.
	Pages int `json:"pages" yaml:"pages"`

	// Questions is the number of question records produced.
	Questions int `json:"questions" yaml:"questions"`

	// Images is the number of image files saved.
	Images int `json:"images" yaml:"images"`

	// FailedPages counts pages whose text extraction failed.
	FailedPages int `json:"failed_pages" yaml:"failed_pages"`
}
