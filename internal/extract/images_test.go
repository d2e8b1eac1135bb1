// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"path/filepath"
	"testing"
)

func TestCountPageImagesNone(t *testing.T) {
	path := writeMinimalPDF(t)

	n, err := CountPageImages(path, 1)
	if err != nil {
		t.Fatalf("CountPageImages() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountPageImages() = %d, want 0 for a text-only page", n)
	}
}

func TestCountPageImagesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	if _, err := CountPageImages(path, 1); err == nil {
		t.Fatal("CountPageImages() error = nil, want error for missing file")
	}
}
