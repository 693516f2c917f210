package papergen

import "fmt"

// RequestError reports a caller-supplied request that violates the
// Request constraints. It is always produced before the backend is
// contacted.
type RequestError struct {
	Field   string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
}

// GenerationError reports a failed paper generation: the backend was
// unreachable, refused the prompt, returned no questions, or returned
// output that failed validation. The attempt is never created when
// generation fails.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paper generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("paper generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// QuestionError describes a single generated question that violates
// the Question invariants. It is wrapped in a GenerationError; a
// malformed question fails the whole paper rather than being passed
// through or silently dropped.
type QuestionError struct {
	Index   int // position in the generated paper
	Check   string
	Message string
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %d: %s: %s", e.Index+1, e.Check, e.Message)
}
