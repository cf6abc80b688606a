package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON locates the outermost JSON object in a raw LLM text response
// and unmarshals it into dst. Models frequently wrap JSON in prose or code
// fences; the substring between the first '{' and the last '}' is taken as
// the payload. Any failure returns *ErrInvalidResponse so callers can treat
// it as a recoverable generation failure.
func ExtractJSON(raw string, dst any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return &ErrInvalidResponse{
			Content: json.RawMessage(raw),
			Err:     fmt.Errorf("no JSON object found in response"),
		}
	}

	payload := raw[start : end+1]
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return &ErrInvalidResponse{
			Content: json.RawMessage(payload),
			Err:     fmt.Errorf("parse extracted JSON: %w", err),
		}
	}
	return nil
}

// UnwrapText returns the plain text of a response Content. Providers return
// raw text either bare or as a JSON-encoded string; both forms are handled.
func UnwrapText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}
	return string(content)
}
