// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the record shapes and stage configurations shared
// across the exam-extract pipeline.
package types

// Method identifies the PDF text extraction backend.
// Per prd001-extraction R4.1.
type Method string

const (
	// MethodFitz extracts text through MuPDF (go-fitz). Fastest and the
	// most tolerant of broken glyph maps; needs the MuPDF shared library.
	MethodFitz Method = "fitz"

	// MethodPDFText extracts text with the pure-Go ledongthuc/pdf reader.
	MethodPDFText Method = "pdftext"
)

// ExtractorConfig holds settings for one extraction run.
type ExtractorConfig struct {
	// Method selects the text extraction backend: fitz or pdftext.
	Method Method `json:"method" yaml:"method"`

	// OutputDir is the directory receiving raw_pages.json, questions.json,
	// manifest.yaml, extraction.log, and the images/ subdirectory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Verbose enables debug-level logging.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// CatalogConfig holds settings for the question catalog.
// Per prd003-catalog R1.2.
type CatalogConfig struct {
	// OutputDir is the extraction output directory; the catalog lives in
	// its index/ subdirectory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
