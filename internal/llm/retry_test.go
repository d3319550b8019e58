package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// scriptedProvider returns each error in sequence, then succeeds.
type scriptedProvider struct {
	errs  []error
	calls int
}

func (s *scriptedProvider) Generate(context.Context, Request) (*Response, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return nil, err
	}
	return &Response{Content: json.RawMessage(`{}`), Model: "scripted"}, nil
}

func (s *scriptedProvider) ModelID() string { return "scripted" }

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	inner := &scriptedProvider{}
	p := WithRetry(inner, fastRetryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	inner := &scriptedProvider{errs: []error{
		&ErrProviderUnavailable{Err: errors.New("503")},
		&ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")},
	}}
	p := WithRetry(inner, fastRetryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	inner := &scriptedProvider{errs: []error{
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
	}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want MaxAttempts (3)", inner.calls)
	}
}

func TestRetryMaxTokensNotRetried(t *testing.T) {
	inner := &scriptedProvider{errs: []error{&ErrMaxTokensExceeded{}}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (not retryable)", inner.calls)
	}
}

func TestRetryInvalidResponseRetriedOnce(t *testing.T) {
	inner := &scriptedProvider{errs: []error{
		&ErrInvalidResponse{Err: errors.New("schema")},
		&ErrInvalidResponse{Err: errors.New("schema again")},
	}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry for invalid responses)", inner.calls)
	}
}

func TestRetryContextCancelNotRetried(t *testing.T) {
	inner := &scriptedProvider{errs: []error{context.Canceled}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryPreservesModelID(t *testing.T) {
	p := WithRetry(&scriptedProvider{}, fastRetryConfig())
	if p.ModelID() != "scripted" {
		t.Errorf("ModelID = %q, want scripted", p.ModelID())
	}
}
