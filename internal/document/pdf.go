package document

import (
	"bytes"

	pdf "github.com/ledongthuc/pdf"
)

// PDFExtractor extracts page texts from PDF bytes.
type PDFExtractor struct{}

// Extract reads the PDF page by page. Pages that fail to decode yield
// empty text; a file that cannot be opened at all yields zero pages.
func (PDFExtractor) Extract(data []byte) (pages []Page) {
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}

	pages = make([]Page, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		pages = append(pages, Page{Number: i, Text: extractPage(r, i)})
	}
	return pages
}

// extractPage decodes one page, swallowing both errors and panics.
// The pdf library panics on some malformed content streams.
func extractPage(r *pdf.Reader, num int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	p := r.Page(num)
	if p.V.IsNull() {
		return ""
	}
	s, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return s
}
