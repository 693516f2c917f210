package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
)

func testQuestions(n int) []papergen.Question {
	qs := make([]papergen.Question, n)
	for i := range qs {
		qs[i] = papergen.Question{
			ID:            "q",
			Text:          "question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % papergen.NumOptions,
		}
	}
	return qs
}

func testRequest() papergen.Request {
	return papergen.Request{
		Subject:      papergen.SubjectPhysics,
		Topics:       []string{"Kinematics"},
		Difficulty:   papergen.DifficultyMedium,
		NumQuestions: 4,
	}
}

func TestNewAttemptStartsUnanswered(t *testing.T) {
	a := NewAttempt(testRequest(), testQuestions(4), "owner")

	if a.State() != InProgress {
		t.Fatalf("state = %v, want InProgress", a.State())
	}
	if a.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if a.CreatedAt.Location() != a.CreatedAt.UTC().Location() {
		t.Fatalf("CreatedAt not UTC: %v", a.CreatedAt)
	}

	answered, total := a.Progress()
	if answered != 0 || total != 4 {
		t.Fatalf("progress = %d/%d, want 0/4", answered, total)
	}
	for i := 0; i < 4; i++ {
		if a.Answer(i) != Unanswered {
			t.Fatalf("question %d answered at creation", i)
		}
	}
	if _, ok := a.Score(); ok {
		t.Fatal("in-progress attempt reported a score")
	}
}

func TestSelectAnswer(t *testing.T) {
	a := NewAttempt(testRequest(), testQuestions(2), "owner")

	if err := a.SelectAnswer(0, 2); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if got := a.Answer(0); got != 2 {
		t.Fatalf("answer = %d, want 2", got)
	}

	// Last write wins.
	if err := a.SelectAnswer(0, 3); err != nil {
		t.Fatalf("SelectAnswer overwrite: %v", err)
	}
	if got := a.Answer(0); got != 3 {
		t.Fatalf("answer after overwrite = %d, want 3", got)
	}

	answered, _ := a.Progress()
	if answered != 1 {
		t.Fatalf("answered = %d, want 1", answered)
	}
	if a.ReadyToSubmit() {
		t.Fatal("ReadyToSubmit with an unanswered question")
	}
}

func TestSelectAnswerBounds(t *testing.T) {
	a := NewAttempt(testRequest(), testQuestions(2), "owner")

	cases := []struct {
		name     string
		question int
		option   int
	}{
		{"negative question", -1, 0},
		{"question past end", 2, 0},
		{"negative option", 0, -1},
		{"option past end", 0, papergen.NumOptions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := a.SelectAnswer(tc.question, tc.option); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestSubmitScoring(t *testing.T) {
	qs := testQuestions(4) // correct answers 0,1,2,3
	a := NewAttempt(testRequest(), qs, "")

	// Two correct, one wrong, one unanswered.
	mustSelect(t, a, 0, 0)
	mustSelect(t, a, 1, 1)
	mustSelect(t, a, 2, 0)

	res, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 2 || res.Total != 4 {
		t.Fatalf("result = %d/%d, want 2/4", res.Score, res.Total)
	}
	if a.State() != Submitted {
		t.Fatalf("state = %v, want Submitted", a.State())
	}
	score, ok := a.Score()
	if !ok || score != 2 {
		t.Fatalf("Score() = %d, %v, want 2, true", score, ok)
	}
}

func TestSubmitFreezesAttempt(t *testing.T) {
	a := NewAttempt(testRequest(), testQuestions(2), "")
	mustSelect(t, a, 0, 0)
	if _, err := a.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := a.SelectAnswer(1, 1); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("SelectAnswer after submit = %v, want ErrAlreadySubmitted", err)
	}
	if _, err := a.Submit(context.Background()); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("second Submit = %v, want ErrAlreadySubmitted", err)
	}
	// The first score stands.
	if score, ok := a.Score(); !ok || score != 1 {
		t.Fatalf("Score() = %d, %v, want 1, true", score, ok)
	}
}

type recordingSink struct {
	saved *Attempt
	id    string
	err   error
}

func (s *recordingSink) SaveAttempt(_ context.Context, a *Attempt) (string, error) {
	s.saved = a
	return s.id, s.err
}

func TestSubmitEmitsToSink(t *testing.T) {
	sink := &recordingSink{id: "rec-1"}
	a := NewAttempt(testRequest(), testQuestions(2), "owner")
	a.AttachSink(sink)
	mustSelect(t, a, 0, 0)
	mustSelect(t, a, 1, 1)

	res, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sink.saved != a {
		t.Fatal("sink did not receive the attempt")
	}
	if res.RecordID != "rec-1" {
		t.Fatalf("RecordID = %q, want rec-1", res.RecordID)
	}
	if res.SaveErr != nil {
		t.Fatalf("SaveErr = %v, want nil", res.SaveErr)
	}
}

func TestSubmitSinkFailureKeepsScore(t *testing.T) {
	sink := &recordingSink{err: errors.New("disk full")}
	a := NewAttempt(testRequest(), testQuestions(2), "owner")
	a.AttachSink(sink)
	mustSelect(t, a, 0, 0)
	mustSelect(t, a, 1, 1)

	res, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.SaveErr == nil {
		t.Fatal("expected SaveErr")
	}
	if res.Score != 2 {
		t.Fatalf("score = %d, want 2 despite save failure", res.Score)
	}
	if a.State() != Submitted {
		t.Fatal("attempt not finalized after save failure")
	}
}

func TestSubmitAnonymousSkipsSink(t *testing.T) {
	sink := &recordingSink{id: "rec-1"}
	a := NewAttempt(testRequest(), testQuestions(1), "")
	a.AttachSink(sink)

	res, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sink.saved != nil {
		t.Fatal("anonymous attempt reached the sink")
	}
	if res.RecordID != "" {
		t.Fatalf("RecordID = %q, want empty", res.RecordID)
	}
}

func TestDisplayTitle(t *testing.T) {
	a := NewAttempt(testRequest(), testQuestions(1), "")
	if got := a.DisplayTitle(); got != "Physics - Medium" {
		t.Fatalf("DisplayTitle = %q, want %q", got, "Physics - Medium")
	}
	a.Title = "Mock Test 3"
	if got := a.DisplayTitle(); got != "Mock Test 3" {
		t.Fatalf("DisplayTitle = %q, want %q", got, "Mock Test 3")
	}
}

func mustSelect(t *testing.T, a *Attempt, q, opt int) {
	t.Helper()
	if err := a.SelectAnswer(q, opt); err != nil {
		t.Fatalf("SelectAnswer(%d, %d): %v", q, opt, err)
	}
}
