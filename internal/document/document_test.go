package document

import "testing"

func TestNewConcatenatesPagesInOrder(t *testing.T) {
	d := New("notes.pdf", []Page{
		{Number: 1, Text: "page one"},
		{Number: 2, Text: ""},
		{Number: 3, Text: "page three"},
	})

	if d.Name != "notes.pdf" {
		t.Errorf("name = %q", d.Name)
	}
	if len(d.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(d.Pages))
	}
	want := "page one\n\npage three"
	if d.FullText != want {
		t.Errorf("full text = %q, want %q", d.FullText, want)
	}
	if !d.Usable() {
		t.Error("document with text should be usable")
	}
}

func TestUsable(t *testing.T) {
	var nilDoc *Document
	if nilDoc.Usable() {
		t.Error("nil document must not be usable")
	}

	empty := New("empty.pdf", nil)
	if empty.Usable() {
		t.Error("zero-page document must not be usable")
	}

	blank := New("blank.pdf", []Page{{Number: 1, Text: "   "}, {Number: 2, Text: ""}})
	if blank.Usable() {
		t.Error("whitespace-only document must not be usable")
	}
}

func TestPDFExtractorMalformedInput(t *testing.T) {
	ex := PDFExtractor{}

	if pages := ex.Extract(nil); len(pages) != 0 {
		t.Errorf("nil input yielded %d pages", len(pages))
	}
	if pages := ex.Extract([]byte("not a pdf at all")); len(pages) != 0 {
		t.Errorf("garbage input yielded %d pages", len(pages))
	}
	// Valid header but truncated body.
	if pages := ex.Extract([]byte("%PDF-1.4\ngarbage")); len(pages) != 0 {
		t.Errorf("truncated input yielded %d pages", len(pages))
	}
}
