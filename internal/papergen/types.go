package papergen

import "strings"

// NumOptions is the fixed option count for every question.
const NumOptions = 4

// Question count bounds for a single paper.
const (
	MinQuestions     = 1
	MaxQuestions     = 20
	DefaultQuestions = 10
)

// Subject is an exam subject.
type Subject string

const (
	SubjectPhysics     Subject = "Physics"
	SubjectChemistry   Subject = "Chemistry"
	SubjectMathematics Subject = "Mathematics"
)

// Subjects lists all subjects in display order.
func Subjects() []Subject {
	return []Subject{SubjectPhysics, SubjectChemistry, SubjectMathematics}
}

// Valid reports whether s is a known subject.
func (s Subject) Valid() bool {
	switch s {
	case SubjectPhysics, SubjectChemistry, SubjectMathematics:
		return true
	}
	return false
}

// Difficulty is the requested difficulty level for a paper.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists all levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is one generated multiple-choice question.
type Question struct {
	// ID is a local, ephemeral identifier assigned on generation.
	ID string

	// Text is the question prompt. May contain LaTeX markup for
	// equations, rendered by the mathtext package at display time.
	Text string

	// Options holds exactly NumOptions answer choices, same markup
	// rules as Text.
	Options []string

	// CorrectAnswer is the index into Options of the right choice,
	// in [0, NumOptions).
	CorrectAnswer int

	// Explanation is an optional worked solution. Empty means the
	// backend did not supply one, which consumers must treat
	// differently from a present-but-short explanation.
	Explanation string
}

// Request describes one paper to generate.
type Request struct {
	Subject    Subject
	Topics     []string
	Difficulty Difficulty

	// NumQuestions in [MinQuestions, MaxQuestions]. Zero means
	// DefaultQuestions.
	NumQuestions int
}

// TopicsString returns the topics serialized as a comma-separated
// list, the form used in prompts and persistence.
func (r Request) TopicsString() string {
	return strings.Join(r.Topics, ", ")
}

// Normalize returns a copy of r with the question count defaulted and
// topic names trimmed.
func (r Request) Normalize() Request {
	out := r
	if out.NumQuestions == 0 {
		out.NumQuestions = DefaultQuestions
	}
	topics := make([]string, 0, len(r.Topics))
	for _, t := range r.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	out.Topics = topics
	return out
}

// Validate checks the request constraints before any backend call.
// The returned error is a *RequestError describing the first problem
// found, or nil.
func (r Request) Validate() error {
	if !r.Subject.Valid() {
		return &RequestError{Field: "subject", Message: "unknown subject"}
	}
	if len(r.Topics) == 0 {
		return &RequestError{Field: "topics", Message: "at least one topic is required"}
	}
	if !r.Difficulty.Valid() {
		return &RequestError{Field: "difficulty", Message: "unknown difficulty"}
	}
	if r.NumQuestions < MinQuestions || r.NumQuestions > MaxQuestions {
		return &RequestError{Field: "numQuestions", Message: "question count must be between 1 and 20"}
	}
	return nil
}
