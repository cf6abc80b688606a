package document

import "strings"

// Page is one page of extracted text. Numbers start at 1.
type Page struct {
	Number int
	Text   string
}

// Document holds the extracted text of one uploaded file. It is replaced
// wholesale on each new upload, never merged with a previous document.
type Document struct {
	Name     string
	Pages    []Page
	FullText string
}

// New builds a Document from extracted pages, concatenating the page
// texts in page order into FullText.
func New(name string, pages []Page) *Document {
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p.Text)
		b.WriteString("\n")
	}
	return &Document{
		Name:     name,
		Pages:    pages,
		FullText: strings.TrimRight(b.String(), "\n"),
	}
}

// Usable reports whether the document has any extracted text at all.
// Callers must treat an unusable document as "no document" and disable
// document-grounded features.
func (d *Document) Usable() bool {
	if d == nil {
		return false
	}
	return strings.TrimSpace(d.FullText) != ""
}
