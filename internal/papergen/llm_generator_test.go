package papergen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Atchuta30/JEE-Prep-AI/internal/llm"
)

func validRequest() Request {
	return Request{
		Subject:      SubjectPhysics,
		Topics:       []string{"Kinematics"},
		Difficulty:   DifficultyEasy,
		NumQuestions: 3,
	}
}

// paperJSON builds a well-formed backend reply with n questions.
func paperJSON(n int) json.RawMessage {
	type q struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}
	var out struct {
		Questions []q `json:"questions"`
	}
	for i := 0; i < n; i++ {
		out.Questions = append(out.Questions, q{
			Question:      fmt.Sprintf("A body starts from rest, case %d. Find $v$.", i+1),
			Options:       []string{"$1\\,m/s$", "$2\\,m/s$", "$3\\,m/s$", "$4\\,m/s$"},
			CorrectAnswer: i % 4,
			Explanation:   "Use $v = u + at$.",
		})
	}
	b, _ := json.Marshal(out)
	return b
}

func TestGeneratePaperSuccess(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: paperJSON(3)})
	gen := New(provider, DefaultConfig())

	questions, err := gen.GeneratePaper(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("GeneratePaper: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}

	for i, q := range questions {
		if q.ID == "" {
			t.Errorf("question %d: empty ID", i)
		}
		if len(q.Options) != NumOptions {
			t.Errorf("question %d: %d options, want %d", i, len(q.Options), NumOptions)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= NumOptions {
			t.Errorf("question %d: correctAnswer %d out of range", i, q.CorrectAnswer)
		}
	}

	if provider.CallCount() != 1 {
		t.Errorf("backend called %d times, want 1", provider.CallCount())
	}
	if provider.Calls[0].Schema != PaperSchema {
		t.Error("request did not declare PaperSchema")
	}
}

func TestGeneratePaperRequestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"unknown subject", func(r *Request) { r.Subject = "Biology" }, "subject"},
		{"empty topics", func(r *Request) { r.Topics = nil }, "topics"},
		{"blank topics", func(r *Request) { r.Topics = []string{"  "} }, "topics"},
		{"unknown difficulty", func(r *Request) { r.Difficulty = "Brutal" }, "difficulty"},
		{"count too high", func(r *Request) { r.NumQuestions = 21 }, "numQuestions"},
		{"count negative", func(r *Request) { r.NumQuestions = -1 }, "numQuestions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := llm.NewMockProvider(llm.MockResponse{Content: paperJSON(3)})
			gen := New(provider, DefaultConfig())

			req := validRequest()
			tt.mutate(&req)

			_, err := gen.GeneratePaper(context.Background(), req)
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("err = %v, want *RequestError", err)
			}
			if reqErr.Field != tt.field {
				t.Errorf("field = %q, want %q", reqErr.Field, tt.field)
			}
			if provider.CallCount() != 0 {
				t.Error("backend was contacted for an invalid request")
			}
		})
	}
}

func TestGeneratePaperDefaultsCount(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: paperJSON(10)})
	gen := New(provider, DefaultConfig())

	req := validRequest()
	req.NumQuestions = 0

	if _, err := gen.GeneratePaper(context.Background(), req); err != nil {
		t.Fatalf("GeneratePaper: %v", err)
	}

	// The prompt should carry the defaulted count.
	msg := provider.Calls[0].Messages[0].Content
	if want := "Number of questions: 10"; !strings.Contains(msg, want) {
		t.Errorf("prompt missing %q:\n%s", want, msg)
	}
}

func TestGeneratePaperBackendFailure(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := New(provider, DefaultConfig())

	_, err := gen.GeneratePaper(context.Background(), validRequest())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Error("GenerationError should wrap the backend error")
	}
}

func TestGeneratePaperMalformedResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing questions field", `{"papers": []}`},
		{"empty questions", `{"questions": []}`},
		{"not json", `the model refused`},
		{"three options", `{"questions": [{"question": "Q?", "options": ["a","b","c"], "correctAnswer": 0}]}`},
		{"five options", `{"questions": [{"question": "Q?", "options": ["a","b","c","d","e"], "correctAnswer": 0}]}`},
		{"index out of range", `{"questions": [{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": 4}]}`},
		{"empty question text", `{"questions": [{"question": "", "options": ["a","b","c","d"], "correctAnswer": 0}]}`},
		{"duplicate options", `{"questions": [{"question": "Q?", "options": ["a","a","c","d"], "correctAnswer": 0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(tt.content),
			})
			gen := New(provider, DefaultConfig())

			_, err := gen.GeneratePaper(context.Background(), validRequest())
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("err = %v, want *GenerationError", err)
			}
		})
	}
}

func TestGeneratePaperShortPaperAccepted(t *testing.T) {
	// The backend honoring the count is not guaranteed; a short but
	// valid paper passes through.
	provider := llm.NewMockProvider(llm.MockResponse{Content: paperJSON(2)})
	gen := New(provider, DefaultConfig())

	questions, err := gen.GeneratePaper(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("GeneratePaper: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
}
