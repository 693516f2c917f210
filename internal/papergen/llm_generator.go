package papergen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Atchuta30/JEE-Prep-AI/internal/llm"
)

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// paperOutput mirrors PaperSchema for decoding the raw reply.
type paperOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GeneratePaper produces the questions for one Request with a single
// backend call. There is no application-level retry: the call either
// succeeds with a valid paper or the operation fails as a whole.
func (g *LLMGenerator) GeneratePaper(ctx context.Context, req Request) ([]Question, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "paper-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      PaperSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Reason: "backend call failed", Err: err}
	}

	var raw paperOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Reason: "unparseable response", Err: err}
	}

	if len(raw.Questions) == 0 {
		return nil, &GenerationError{Reason: "backend returned no questions"}
	}

	questions := make([]Question, len(raw.Questions))
	for i, rq := range raw.Questions {
		questions[i] = Question{
			ID:            uuid.NewString(),
			Text:          rq.Question,
			Options:       rq.Options,
			CorrectAnswer: rq.CorrectAnswer,
			Explanation:   rq.Explanation,
		}

		for _, v := range g.config.Validators {
			if qerr := v.Validate(&questions[i], i); qerr != nil {
				return nil, &GenerationError{
					Reason: fmt.Sprintf("response failed validation (%s)", v.Name()),
					Err:    qerr,
				}
			}
		}
	}

	return questions, nil
}
