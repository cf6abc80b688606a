package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// slowProvider blocks until its context is done, then returns the context error.
type slowProvider struct{}

func (s *slowProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *slowProvider) ModelID() string { return "slow" }

func TestTimeout_SlowProviderMapped(t *testing.T) {
	p := WithTimeout(&slowProvider{}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var timeout *ErrTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrTimeout, got %T: %v", err, err)
	}
	if timeout.Timeout != 5*time.Millisecond {
		t.Fatalf("timeout = %v, want 5ms", timeout.Timeout)
	}
}

func TestTimeout_FastProviderPassesThrough(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_DisabledWhenNonPositive(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("expected zero timeout to return the provider unwrapped")
	}
	if p := WithTimeout(mock, -time.Second); p != Provider(mock) {
		t.Fatal("expected negative timeout to return the provider unwrapped")
	}
}

func TestTimeout_ProviderErrorNotMasked(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	p := WithTimeout(mock, time.Second)

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T: %v", err, err)
	}
}

func TestTimeout_ModelIDDelegates(t *testing.T) {
	p := WithTimeout(&slowProvider{}, time.Second)
	if p.ModelID() != "slow" {
		t.Fatalf("expected 'slow', got %q", p.ModelID())
	}
}

func TestRetry_TimeoutRetriedWithFreshDeadline(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrTimeout{Timeout: time.Millisecond, Err: context.DeadlineExceeded}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}
