// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/exam-extract/pkg/types"
)

// PDFTextBackend extracts text with the pure-Go ledongthuc/pdf reader.
// Weaker glyph handling than MuPDF but needs no C toolchain.
type PDFTextBackend struct{}

func (PDFTextBackend) Name() types.Method { return types.MethodPDFText }

func (PDFTextBackend) Open(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdf open: %w", err)
	}
	return &pdftextDocument{f: f, r: r}, nil
}

type pdftextDocument struct {
	f *os.File
	r *pdf.Reader
}

func (d *pdftextDocument) PageCount() int { return d.r.NumPage() }

func (d *pdftextDocument) PageText(pageNum int) (string, error) {
	p := d.r.Page(pageNum)
	if p.V.IsNull() {
		return "", nil
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("plain text, page %d: %w", pageNum, err)
	}
	return text, nil
}

func (d *pdftextDocument) Close() error { return d.f.Close() }
