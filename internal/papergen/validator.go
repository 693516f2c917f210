package papergen

import "strings"

// Validator checks one generated question. Implementations are
// stateless and safe for concurrent use.
type Validator interface {
	// Name identifies the validator in error messages, e.g. "structural".
	Name() string

	// Validate checks the question at position index within its paper
	// and returns nil when it passes.
	Validate(q *Question, index int) *QuestionError
}

// StructuralValidator enforces the Question invariants: non-empty
// text, exactly 4 non-empty options, and a correct index in range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, index int) *QuestionError {
	if strings.TrimSpace(q.Text) == "" {
		return &QuestionError{
			Index:   index,
			Check:   v.Name(),
			Message: "question text is empty",
		}
	}
	if len(q.Options) != NumOptions {
		return &QuestionError{
			Index:   index,
			Check:   v.Name(),
			Message: "options must contain exactly 4 entries",
		}
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return &QuestionError{
				Index:   index,
				Check:   v.Name(),
				Message: "option text is empty",
			}
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= NumOptions {
		return &QuestionError{
			Index:   index,
			Check:   v.Name(),
			Message: "correctAnswer must be between 0 and 3",
		}
	}
	return nil
}

// DistinctOptionsValidator rejects questions whose options repeat.
// A duplicated option makes the correct index ambiguous to the
// test-taker even when the paper is formally well-shaped.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q *Question, index int) *QuestionError {
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		key := strings.TrimSpace(opt)
		if seen[key] {
			return &QuestionError{
				Index:   index,
				Check:   v.Name(),
				Message: "duplicate option text",
			}
		}
		seen[key] = true
	}
	return nil
}
