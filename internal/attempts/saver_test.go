package attempts

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/quiz"
)

func openTestStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaverRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	owner, err := s.UserRepo().GetOrCreate(ctx, "atchuta")
	if err != nil {
		t.Fatalf("get or create user: %v", err)
	}

	req := papergen.Request{
		Subject:      papergen.SubjectChemistry,
		Topics:       []string{"Thermodynamics"},
		Difficulty:   papergen.DifficultyHard,
		NumQuestions: 2,
	}
	questions := []papergen.Question{
		{ID: uuid.NewString(), Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{ID: uuid.NewString(), Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3},
	}

	attempt := quiz.NewAttempt(req, questions, owner.ID)
	attempt.AttachSink(NewSaver(s.PaperRepo()))
	if err := attempt.SelectAnswer(0, 0); err != nil {
		t.Fatalf("select: %v", err)
	}

	res, err := attempt.Submit(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.SaveErr != nil {
		t.Fatalf("save err: %v", res.SaveErr)
	}
	if res.RecordID == "" {
		t.Fatal("expected a record ID")
	}

	got, err := s.PaperRepo().GetByID(ctx, owner.ID, res.RecordID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 1 {
		t.Errorf("persisted score = %d, want 1", got.Score)
	}
	if got.Questions[1].SelectedAnswer != nil {
		t.Error("unanswered question persisted with a selection")
	}
	if got.DisplayTitle() != "Chemistry - Hard" {
		t.Errorf("display title = %q", got.DisplayTitle())
	}
}

func TestSaverRejectsUnsubmittedAttempt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	questions := []papergen.Question{
		{ID: uuid.NewString(), Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
	}
	attempt := quiz.NewAttempt(papergen.Request{
		Subject:      papergen.SubjectPhysics,
		Topics:       []string{"Kinematics"},
		Difficulty:   papergen.DifficultyEasy,
		NumQuestions: 1,
	}, questions, "owner-1")

	if _, err := NewSaver(s.PaperRepo()).SaveAttempt(ctx, attempt); err == nil {
		t.Fatal("expected an error for an attempt that was never submitted")
	}
}
