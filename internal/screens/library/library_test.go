package library

import (
	"errors"
	"strings"
	"testing"

	"github.com/ashwinkumar/biotutor/internal/document"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/tutor"
)

func testDoc() *document.Document {
	return document.New("notes.pdf", []document.Page{
		{Number: 1, Text: "CRISPR-Cas9 is a genome editing tool."},
	})
}

func TestStartsInPathInputWithoutDocument(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg, nil)

	if s.phase != phasePathInput {
		t.Error("expected path input for a session without a document")
	}
}

func TestStartsInQAWithDocument(t *testing.T) {
	reg := registry.New(nil)
	reg.Current().SetDocument(testDoc())
	s := New(reg, nil)

	if s.phase != phaseReady {
		t.Error("expected Q&A phase when the session already has a document")
	}
}

func TestDocumentLoadedInstallsOnSession(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg, nil)
	s.phase = phaseLoading

	s.handleDocumentLoaded(documentLoadedMsg{Doc: testDoc(), Summary: "Notes on CRISPR."})

	if reg.Current().Document == nil || reg.Current().Document.Name != "notes.pdf" {
		t.Error("document should be installed on the session")
	}
	if s.phase != phaseReady {
		t.Error("expected ready phase")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Notes on CRISPR.") {
		t.Errorf("summary should be shown:\n%s", view)
	}
}

func TestLoadFailureReturnsToInput(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg, nil)
	s.phase = phaseLoading

	s.handleDocumentLoaded(documentLoadedMsg{Err: errors.New("no extractable text")})

	if s.phase != phasePathInput {
		t.Error("failed load should return to path input")
	}
	if reg.Current().Document != nil {
		t.Error("failed load must not install a document")
	}
}

func TestGroundedAnswerRecordsChatWithPages(t *testing.T) {
	reg := registry.New(nil)
	reg.Current().SetDocument(testDoc())
	s := New(reg, nil)
	s.phase = phaseAsking

	s.handleAnswer(answerMsg{
		Question: "what does cas9 do?",
		Answer:   &tutor.DocAnswer{Answer: "Cuts DNA.", FromDocument: true, Pages: "1"},
	})

	history := reg.Current().ChatHistory
	if len(history) != 1 {
		t.Fatalf("expected 1 chat entry, got %d", len(history))
	}
	if !strings.Contains(history[0].Answer, "pages 1") {
		t.Errorf("answer should note its pages: %q", history[0].Answer)
	}
}

func TestFallbackAnswerNotesGeneralKnowledge(t *testing.T) {
	reg := registry.New(nil)
	reg.Current().SetDocument(testDoc())
	s := New(reg, nil)
	s.phase = phaseAsking

	s.handleAnswer(answerMsg{
		Question: "what is a ribosome?",
		Answer:   &tutor.DocAnswer{Answer: "A protein factory.", FromDocument: false},
	})

	history := reg.Current().ChatHistory
	if len(history) != 1 {
		t.Fatalf("expected 1 chat entry, got %d", len(history))
	}
	if !strings.Contains(history[0].Answer, "general knowledge") {
		t.Errorf("answer should note the fallback: %q", history[0].Answer)
	}
}

func TestAnswerErrorKeepsChatHistory(t *testing.T) {
	reg := registry.New(nil)
	reg.Current().SetDocument(testDoc())
	s := New(reg, nil)
	s.phase = phaseAsking

	s.handleAnswer(answerMsg{Question: "q", Err: errors.New("provider down")})

	if len(reg.Current().ChatHistory) != 0 {
		t.Error("failed answer must not be recorded")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}
