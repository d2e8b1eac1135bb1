// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/exam-extract/pkg/types"
)

// FitzBackend extracts text through MuPDF. This is the default backend.
type FitzBackend struct{}

func (FitzBackend) Name() types.Method { return types.MethodFitz }

// Open parses the PDF with MuPDF. Encrypted and corrupt documents fail here.
func (FitzBackend) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("MuPDF open: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) PageCount() int { return d.doc.NumPage() }

// PageText returns the page text. go-fitz pages are 0-based.
func (d *fitzDocument) PageText(pageNum int) (string, error) {
	text, err := d.doc.Text(pageNum - 1)
	if err != nil {
		return "", fmt.Errorf("MuPDF text, page %d: %w", pageNum, err)
	}
	return text, nil
}

func (d *fitzDocument) Close() error { return d.doc.Close() }
