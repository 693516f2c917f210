// Package quiz holds the in-progress attempt: the generated questions,
// the user's answer selections, and the submission lifecycle. An
// Attempt moves from InProgress to Submitted exactly once; there is no
// way back.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
)

// Unanswered marks a question with no selection yet.
const Unanswered = -1

// State is the attempt lifecycle state.
type State int

const (
	// InProgress means answers may still change.
	InProgress State = iota
	// Submitted means the score is computed and answers are frozen.
	Submitted
)

// ErrAlreadySubmitted rejects mutations of a finalized attempt.
var ErrAlreadySubmitted = errors.New("attempt already submitted")

// Sink receives the finalized attempt at submission time. The history
// store registers itself here; the state machine does not know what
// the sink does with the attempt.
type Sink interface {
	// SaveAttempt persists the attempt and returns its record ID.
	SaveAttempt(ctx context.Context, a *Attempt) (string, error)
}

// Attempt is one generated paper being taken. It exclusively owns the
// mutable answer array; everything else is fixed at creation.
type Attempt struct {
	ID         string
	Title      string
	Subject    papergen.Subject
	Topics     []string
	Difficulty papergen.Difficulty

	// NumQuestions is the requested count. len(Questions) may be
	// smaller when the backend under-delivers.
	NumQuestions int

	Questions []papergen.Question
	CreatedAt time.Time

	// OwnerID is the profile that owns this attempt. Empty for
	// anonymous use, in which case submission never reaches the sink.
	OwnerID string

	answers []int
	state   State
	score   int
	sink    Sink
}

// NewAttempt seeds an attempt from a generation request and its
// questions. All questions start unanswered.
func NewAttempt(req papergen.Request, questions []papergen.Question, ownerID string) *Attempt {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}

	return &Attempt{
		ID:           uuid.NewString(),
		Subject:      req.Subject,
		Topics:       req.Topics,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
		Questions:    questions,
		CreatedAt:    time.Now().UTC(),
		OwnerID:      ownerID,
		answers:      answers,
		state:        InProgress,
	}
}

// AttachSink registers the collaborator notified on submission.
func (a *Attempt) AttachSink(s Sink) {
	a.sink = s
}

// State returns the lifecycle state.
func (a *Attempt) State() State {
	return a.state
}

// DisplayTitle returns the explicit title, or "Subject - Difficulty"
// when none was set.
func (a *Attempt) DisplayTitle() string {
	if a.Title != "" {
		return a.Title
	}
	return fmt.Sprintf("%s - %s", a.Subject, a.Difficulty)
}

// SelectAnswer records the user's choice for one question. A later
// call for the same question overwrites the earlier one. Rejected
// once the attempt is submitted.
func (a *Attempt) SelectAnswer(questionIndex, optionIndex int) error {
	if a.state == Submitted {
		return ErrAlreadySubmitted
	}
	if questionIndex < 0 || questionIndex >= len(a.Questions) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	if optionIndex < 0 || optionIndex >= papergen.NumOptions {
		return fmt.Errorf("option index %d out of range", optionIndex)
	}
	a.answers[questionIndex] = optionIndex
	return nil
}

// Answer returns the current selection for a question, or Unanswered.
func (a *Attempt) Answer(questionIndex int) int {
	if questionIndex < 0 || questionIndex >= len(a.answers) {
		return Unanswered
	}
	return a.answers[questionIndex]
}

// Answers returns a copy of the answer array.
func (a *Attempt) Answers() []int {
	out := make([]int, len(a.answers))
	copy(out, a.answers)
	return out
}

// Progress reports how many questions have a selection, out of how
// many there are. Valid in either state.
func (a *Attempt) Progress() (answered, total int) {
	for _, ans := range a.answers {
		if ans != Unanswered {
			answered++
		}
	}
	return answered, len(a.answers)
}

// ReadyToSubmit reports whether every question has a selection. The
// calling surface uses this to gate submission; Submit itself accepts
// partial attempts and scores unanswered questions as incorrect.
func (a *Attempt) ReadyToSubmit() bool {
	answered, total := a.Progress()
	return answered == total
}

// Score returns the computed score. ok is false before submission:
// an in-progress attempt has no score.
func (a *Attempt) Score() (score int, ok bool) {
	if a.state != Submitted {
		return 0, false
	}
	return a.score, true
}

// SubmitResult reports the outcome of a submission. SaveErr carries a
// sink failure separately from the score: a failed save never
// invalidates the locally computed result.
type SubmitResult struct {
	Score int
	Total int

	// RecordID is the persisted record's ID, empty when the attempt
	// was anonymous or the save failed.
	RecordID string

	// SaveErr is the sink failure, nil on success or when no save was
	// attempted.
	SaveErr error
}

// Submit finalizes the attempt: computes the score, freezes the
// answers, and emits the attempt to the attached sink when it has an
// owner. Calling Submit on a submitted attempt is rejected with
// ErrAlreadySubmitted and changes nothing — the stored score stands.
func (a *Attempt) Submit(ctx context.Context) (SubmitResult, error) {
	if a.state == Submitted {
		return SubmitResult{}, ErrAlreadySubmitted
	}

	score := 0
	for i, q := range a.Questions {
		if a.answers[i] != Unanswered && a.answers[i] == q.CorrectAnswer {
			score++
		}
	}

	a.score = score
	a.state = Submitted

	result := SubmitResult{Score: score, Total: len(a.Questions)}

	if a.sink != nil && a.OwnerID != "" {
		id, err := a.sink.SaveAttempt(ctx, a)
		if err != nil {
			result.SaveErr = err
		} else {
			result.RecordID = id
		}
	}

	return result, nil
}
