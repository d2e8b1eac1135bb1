// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFCPUImages extracts embedded raster images with pdfcpu. Extraction goes
// through a temp directory because pdfcpu's image API is file-based; the
// files are then renamed into the page_<p>_image_<n> scheme under the
// output images directory.
type PDFCPUImages struct {
	Log *slog.Logger
}

// PageImages implements ImageExtractor for a single page. A failing
// individual image write is logged and skipped; only a failing pdfcpu
// extraction call aborts the page.
func (e PDFCPUImages) PageImages(pdfPath string, pageNum int, destDir string) ([]string, error) {
	tempDir, err := os.MkdirTemp("", "exam-extract-img-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	conf.ValidationMode = model.ValidationRelaxed

	pages := []string{strconv.Itoa(pageNum)}
	if err := api.ExtractImagesFile(pdfPath, tempDir, pages, conf); err != nil {
		return nil, fmt.Errorf("extracting images from page %d: %w", pageNum, err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("reading temp dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	// pdfcpu names files after internal resource IDs; sort before renaming
	// so the extraction order is stable across runs.
	sort.Strings(names)

	saved := []string{}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(tempDir, name))
		if err != nil {
			e.warn("reading extracted image", name, err)
			continue
		}
		target := filepath.Join(destDir,
			fmt.Sprintf("page_%d_image_%d%s", pageNum, len(saved)+1, filepath.Ext(name)))
		if err := os.WriteFile(target, data, 0o644); err != nil {
			e.warn("saving image", target, err)
			continue
		}
		saved = append(saved, target)
	}
	return saved, nil
}

// CountPageImages reports how many embedded raster images the 1-based page
// pageNum carries, without keeping any of them. The inventory still goes
// through a discarded temp directory because pdfcpu's image API is
// file-based.
func CountPageImages(pdfPath string, pageNum int) (int, error) {
	tempDir, err := os.MkdirTemp("", "exam-extract-info-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	conf.ValidationMode = model.ValidationRelaxed

	pages := []string{strconv.Itoa(pageNum)}
	if err := api.ExtractImagesFile(pdfPath, tempDir, pages, conf); err != nil {
		return 0, fmt.Errorf("inspecting images on page %d: %w", pageNum, err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return 0, fmt.Errorf("reading temp dir: %w", err)
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			count++
		}
	}
	return count, nil
}

func (e PDFCPUImages) warn(msg, path string, err error) {
	if e.Log != nil {
		e.Log.Warn(msg+" failed, image omitted", "path", path, "error", err)
	}
}
