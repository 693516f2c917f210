package papergen

import "context"

// Generator produces question papers from a generative-text backend.
type Generator interface {
	// GeneratePaper produces the questions for one Request. The
	// request is validated first; a *RequestError is returned without
	// contacting the backend. Backend failure, a refused prompt, or a
	// response violating the Question invariants yields a
	// *GenerationError. On success every returned Question satisfies
	// the invariants: exactly 4 options, correct index in range.
	GeneratePaper(ctx context.Context, req Request) ([]Question, error)
}
