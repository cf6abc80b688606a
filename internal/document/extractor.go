package document

// Extractor turns raw file bytes into ordered page texts.
//
// Extraction is best-effort: a page that cannot be read yields empty
// text for that page, and malformed input yields no pages at all.
// Implementations never return an error; degraded output is the
// failure signal.
type Extractor interface {
	Extract(data []byte) []Page
}
