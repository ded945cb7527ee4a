// Package pdfx extracts per-page plain text from raw PDF bytes.
package pdfx

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Extractor pulls ordered per-page text out of a document. Implementations
// must treat malformed input as an error, never a crash.
type Extractor interface {
	Pages(data []byte) ([]string, error)
}

// Reader is the production Extractor backed by the pdf library.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Pages parses data as a PDF and returns the plain text of each page in
// order. The parser panics on some malformed files, so failures of either
// kind come back as a single error.
func (e *Reader) Pages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	total := r.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}
