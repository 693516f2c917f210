package papergen

// Config controls the LLMGenerator.
type Config struct {
	// Validators run against every generated question in order; the
	// first failure rejects the whole paper.
	Validators []Validator

	// MaxTokens is the token budget for one paper. Twenty questions
	// with explanations need room.
	MaxTokens int

	// Temperature for the backend call (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctOptionsValidator{},
		},
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
