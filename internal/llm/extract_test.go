package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSON_BareObject(t *testing.T) {
	var out struct {
		Answer string `json:"answer"`
	}
	err := ExtractJSON(`{"answer":"mitochondria"}`, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Answer != "mitochondria" {
		t.Fatalf("answer = %q, want %q", out.Answer, "mitochondria")
	}
}

func TestExtractJSON_WrappedInProse(t *testing.T) {
	raw := "Sure! Here is the quiz you asked for:\n```json\n{\"questions\":[{\"question\":\"q1\"}]}\n```\nLet me know if you need more."
	var out struct {
		Questions []struct {
			Question string `json:"question"`
		} `json:"questions"`
	}
	if err := ExtractJSON(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Questions) != 1 || out.Questions[0].Question != "q1" {
		t.Fatalf("unexpected parse result: %+v", out)
	}
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	raw := `prefix {"outer":{"inner":42}} suffix`
	var out struct {
		Outer struct {
			Inner int `json:"inner"`
		} `json:"outer"`
	}
	if err := ExtractJSON(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Outer.Inner != 42 {
		t.Fatalf("inner = %d, want 42", out.Outer.Inner)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	var out map[string]any
	err := ExtractJSON("no json here", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestExtractJSON_MalformedPayload(t *testing.T) {
	var out map[string]any
	err := ExtractJSON(`{"unterminated": }`, &out)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestUnwrapText(t *testing.T) {
	tests := []struct {
		name    string
		content json.RawMessage
		want    string
	}{
		{"json string", json.RawMessage(`"hello world"`), "hello world"},
		{"bare text", json.RawMessage(`hello world`), "hello world"},
		{"escaped", json.RawMessage(`"line one\nline two"`), "line one\nline two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnwrapText(tt.content); got != tt.want {
				t.Errorf("UnwrapText() = %q, want %q", got, tt.want)
			}
		})
	}
}
