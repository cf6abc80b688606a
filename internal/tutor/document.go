package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashwinkumar/biotutor/internal/document"
)

// DocAnswer is the result of a document-grounded question.
type DocAnswer struct {
	// Answer is the response text.
	Answer string

	// FromDocument is true when the document contained the answer.
	// When false, Answer comes from general knowledge and says so.
	FromDocument bool

	// Pages lists the relevant page numbers as reported by the model,
	// e.g. "2, 5". Empty when FromDocument is false or no pages were
	// identified. Best-effort only.
	Pages string
}

// DocumentContains checks whether the document can answer the question.
// This is a single LLM classification, not retrieval.
func (s *Service) DocumentContains(ctx context.Context, doc *document.Document, question string) (bool, error) {
	prompt := containsPrompt(s.clipDoc(doc.FullText), question)
	text, err := s.complete(ctx, "doc-contains", containsSystem, prompt)
	if err != nil {
		return false, fmt.Errorf("containment check: %w", err)
	}
	return parseYesNo(text), nil
}

// Ask answers a question against the document. If the document covers
// the question, the answer is grounded in it and page references are
// extracted best-effort; otherwise the answer falls back to general
// knowledge and notes the gap.
func (s *Service) Ask(ctx context.Context, doc *document.Document, question string) (*DocAnswer, error) {
	contains, err := s.DocumentContains(ctx, doc, question)
	if err != nil {
		return nil, err
	}

	if !contains {
		text, err := s.complete(ctx, "doc-answer", tutorSystem, generalAnswerPrompt(question))
		if err != nil {
			return nil, fmt.Errorf("answer question: %w", err)
		}
		return &DocAnswer{Answer: text}, nil
	}

	text, err := s.complete(ctx, "doc-answer", tutorSystem, docAnswerPrompt(s.clipDoc(doc.FullText), question))
	if err != nil {
		return nil, fmt.Errorf("answer question: %w", err)
	}

	answer := &DocAnswer{Answer: text, FromDocument: true}

	// Page references are decoration; a failure here never fails the answer.
	if pages, err := s.pageReferences(ctx, doc, question); err == nil {
		answer.Pages = pages
	}
	return answer, nil
}

// pageReferences asks the model which pages are relevant to the question.
func (s *Service) pageReferences(ctx context.Context, doc *document.Document, question string) (string, error) {
	text, err := s.complete(ctx, "page-refs", pageRefsSystem, pageRefsPrompt(doc, question, s.cfg.MaxDocChars))
	if err != nil {
		return "", err
	}
	if strings.EqualFold(strings.TrimSpace(text), "none") {
		return "", nil
	}
	return text, nil
}

// Summarize produces a short summary of the document.
func (s *Service) Summarize(ctx context.Context, doc *document.Document) (string, error) {
	text, err := s.complete(ctx, "summary", tutorSystem, summaryPrompt(s.clipDoc(doc.FullText)))
	if err != nil {
		return "", fmt.Errorf("summarize document: %w", err)
	}
	return text, nil
}
