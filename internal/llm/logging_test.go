package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
)

// captureEvents records appended events in memory.
type captureEvents struct {
	appended []history.LLMRequestEventData
	err      error
}

func (c *captureEvents) AppendLLMRequest(_ context.Context, data history.LLMRequestEventData) error {
	if c.err != nil {
		return c.err
	}
	c.appended = append(c.appended, data)
	return nil
}

func (c *captureEvents) QueryLLMEvents(context.Context, history.QueryOpts) ([]history.LLMRequestEventRecord, error) {
	return nil, nil
}

func (c *captureEvents) GetLLMEvent(context.Context, int) (*history.LLMRequestEventRecord, error) {
	return nil, nil
}

func (c *captureEvents) LLMUsageByPurpose(context.Context) ([]history.LLMUsageStats, error) {
	return nil, nil
}

func (c *captureEvents) LLMUsageByModel(context.Context) ([]history.LLMModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccessfulCall(t *testing.T) {
	events := &captureEvents{}
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"questions":[]}`),
			Usage:   Usage{InputTokens: 120, OutputTokens: 40},
		},
	)
	p := WithLogging(mock, events)

	ctx := WithPurpose(context.Background(), "paper-gen")
	req := Request{
		System:   "You write JEE questions.",
		Messages: []Message{{Role: RoleUser, Content: "10 physics questions"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(events.appended))
	}
	e := events.appended[0]
	if e.Purpose != "paper-gen" {
		t.Errorf("purpose = %q, want paper-gen", e.Purpose)
	}
	if !e.Success {
		t.Error("event not marked successful")
	}
	if e.InputTokens != 120 || e.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d, want 120/40", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "10 physics questions") {
		t.Error("request body not captured")
	}
	if e.ResponseBody != `{"questions":[]}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	events := &captureEvents{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, events)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(events.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(events.appended))
	}
	e := events.appended[0]
	if e.Success {
		t.Error("failed call marked successful")
	}
	if e.ErrorMessage == "" {
		t.Error("error message not captured")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", e.Purpose)
	}
}

func TestLogging_AppendFailureDoesNotFailCall(t *testing.T) {
	events := &captureEvents{err: errors.New("disk full")}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithLogging(mock, events)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("call failed because logging failed: %v", err)
	}
}
