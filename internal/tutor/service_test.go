package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ashwinkumar/biotutor/internal/analytics"
	"github.com/ashwinkumar/biotutor/internal/document"
	"github.com/ashwinkumar/biotutor/internal/llm"
	"github.com/ashwinkumar/biotutor/internal/registry"
)

func textResponse(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func testDoc() *document.Document {
	return document.New("notes.pdf", []document.Page{
		{Number: 1, Text: "CRISPR-Cas9 is a genome editing tool."},
		{Number: 2, Text: "PCR amplifies DNA."},
	})
}

func TestClassifyTopic(t *testing.T) {
	tests := []struct {
		response string
		want     bool
	}{
		{"yes", true},
		{"Yes.", true},
		{" YES, it is", true},
		{"no", false},
		{"No, that is cooking", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		mock := llm.NewMockProvider(textResponse(tt.response))
		s := NewService(mock, DefaultConfig())

		got, err := s.ClassifyTopic(context.Background(), "crispr")
		if err != nil {
			t.Fatalf("classify(%q): %v", tt.response, err)
		}
		if got != tt.want {
			t.Errorf("classify response %q = %v, want %v", tt.response, got, tt.want)
		}
	}
}

func TestExplainPropagatesGatewayError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	s := NewService(mock, DefaultConfig())

	_, err := s.Explain(context.Background(), "crispr")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestAskGroundedInDocument(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("yes"),                        // containment check
		textResponse("Cas9 cuts DNA at the site."), // grounded answer
		textResponse("1"),                          // page refs
	)
	s := NewService(mock, DefaultConfig())

	ans, err := s.Ask(context.Background(), testDoc(), "what does cas9 do?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !ans.FromDocument {
		t.Error("expected a document-grounded answer")
	}
	if ans.Pages != "1" {
		t.Errorf("pages = %q, want %q", ans.Pages, "1")
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 LLM calls, got %d", mock.CallCount())
	}
}

func TestAskFallsBackWhenDocumentLacksAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("no"),
		textResponse("The document does not cover this, but generally..."),
	)
	s := NewService(mock, DefaultConfig())

	ans, err := s.Ask(context.Background(), testDoc(), "what is a ribosome?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if ans.FromDocument {
		t.Error("expected a general-knowledge answer")
	}
	if ans.Pages != "" {
		t.Errorf("pages = %q, want empty", ans.Pages)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls (no page-ref call), got %d", mock.CallCount())
	}
}

func TestAskPageRefFailureDoesNotFailAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("yes"),
		textResponse("grounded answer"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewService(mock, DefaultConfig())

	ans, err := s.Ask(context.Background(), testDoc(), "q")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if ans.Answer != "grounded answer" || ans.Pages != "" {
		t.Errorf("answer = %+v", ans)
	}
}

func TestAskPageRefsNoneNormalizedToEmpty(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("yes"),
		textResponse("grounded answer"),
		textResponse("None"),
	)
	s := NewService(mock, DefaultConfig())

	ans, err := s.Ask(context.Background(), testDoc(), "q")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if ans.Pages != "" {
		t.Errorf("pages = %q, want empty for \"none\"", ans.Pages)
	}
}

func TestAskTopicIncludesRecentExchangesOnly(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("answer"))
	s := NewService(mock, DefaultConfig())

	conversation := []registry.Exchange{
		{Question: "old-1", Answer: "a"},
		{Question: "recent-1", Answer: "b"},
		{Question: "recent-2", Answer: "c"},
		{Question: "recent-3", Answer: "d"},
	}
	_, err := s.AskTopic(context.Background(), "crispr", conversation, "follow-up")
	if err != nil {
		t.Fatalf("ask topic: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "old-1") {
		t.Error("prompt should only include the most recent exchanges")
	}
	for _, want := range []string{"recent-1", "recent-2", "recent-3", "follow-up"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestResources(t *testing.T) {
	body := `{"resources":[{"title":"Molecular Biology of the Gene","kind":"book","description":"The standard text."}]}`
	mock := llm.NewMockProvider(textResponse(body))
	s := NewService(mock, DefaultConfig())

	resources, err := s.Resources(context.Background(), "crispr")
	if err != nil {
		t.Fatalf("resources: %v", err)
	}
	if len(resources) != 1 || resources[0].Kind != "book" {
		t.Errorf("resources = %+v", resources)
	}
	if mock.Calls[0].Schema != ResourcesSchema {
		t.Error("expected resources schema on the request")
	}
}

func TestResourcesMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("no json at all"))
	s := NewService(mock, DefaultConfig())

	_, err := s.Resources(context.Background(), "crispr")
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestFeedbackPromptCarriesScores(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("keep going"))
	s := NewService(mock, DefaultConfig())

	summary := analytics.Summary{Available: true, Quizzes: 2, Correct: 10, Questions: 15, Average: 100 * 10.0 / 15.0}
	breakdown := []analytics.TopicScore{{Topic: "crispr", Percent: 80, Tier: analytics.TierGood}}

	_, err := s.Feedback(context.Background(), summary, breakdown)
	if err != nil {
		t.Fatalf("feedback: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "crispr") || !strings.Contains(prompt, "good") {
		t.Errorf("prompt missing topic breakdown: %s", prompt)
	}
}

func TestClipDoc(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDocChars = 10
	s := NewService(llm.NewMockProvider(), cfg)

	if got := s.clipDoc("0123456789abcdef"); got != "0123456789" {
		t.Errorf("clipDoc = %q", got)
	}
	if got := s.clipDoc("short"); got != "short" {
		t.Errorf("clipDoc = %q", got)
	}
}
