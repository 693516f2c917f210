package setup

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
)

type mockGenerator struct {
	calls     int
	questions []papergen.Question
	err       error
}

func (g *mockGenerator) GeneratePaper(_ context.Context, req papergen.Request) ([]papergen.Question, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.questions, nil
}

func fourQuestions() []papergen.Question {
	qs := make([]papergen.Question, 4)
	for i := range qs {
		qs[i] = papergen.Question{
			Text:          "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
		}
	}
	return qs
}

// fillForm tabs to the topic list, checks the first topic and moves
// the cursor to the generate row.
func fillForm(s *SetupScreen) {
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // difficulty
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // topics
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}) // check first topic
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // count
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // generate
}

func pressGenerate(t *testing.T, s *SetupScreen) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestGenerateRequiresTopics(t *testing.T) {
	gen := &mockGenerator{questions: fourQuestions()}
	s := New(gen, nil, nil)

	// Straight to the generate row with nothing checked.
	for range 4 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
	cmd := pressGenerate(t, s)
	if cmd != nil {
		t.Fatal("generation started without topics")
	}
	if s.validateMsg == "" {
		t.Fatal("expected a validation message")
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times, want 0", gen.calls)
	}
}

func TestGenerateBuildsAttemptAndOpensPaper(t *testing.T) {
	gen := &mockGenerator{questions: fourQuestions()}
	s := New(gen, nil, nil)

	fillForm(s)
	cmd := pressGenerate(t, s)
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if !s.generating {
		t.Fatal("screen not in generating state")
	}

	ready, ok := cmd().(paperReadyMsg)
	if !ok {
		t.Fatalf("expected paperReadyMsg, got %T", cmd())
	}
	if len(ready.Questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(ready.Questions))
	}
	if ready.Request.NumQuestions != papergen.DefaultQuestions {
		t.Errorf("count = %d, want default %d", ready.Request.NumQuestions, papergen.DefaultQuestions)
	}

	_, cmd = s.Update(ready)
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestGenerationFailureShowsErrorAndRetries(t *testing.T) {
	gen := &mockGenerator{err: errors.New("backend refused")}
	s := New(gen, nil, nil)

	fillForm(s)
	cmd := pressGenerate(t, s)
	if cmd == nil {
		t.Fatal("expected a generation command")
	}

	failed, ok := cmd().(paperFailedMsg)
	if !ok {
		t.Fatalf("expected paperFailedMsg, got %T", cmd())
	}
	s.Update(failed)

	if s.generating {
		t.Error("still generating after failure")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "backend refused") {
		t.Errorf("error not shown:\n%s", view)
	}

	// Enter retries the same request.
	gen.err = nil
	gen.questions = fourQuestions()
	cmd = pressGenerate(t, s)
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	if _, ok := cmd().(paperReadyMsg); !ok {
		t.Fatalf("expected paperReadyMsg on retry, got %T", cmd())
	}
	if gen.calls != 2 {
		t.Fatalf("generator called %d times, want 2", gen.calls)
	}
}

func TestEscNavigatesBack(t *testing.T) {
	s := New(&mockGenerator{}, nil, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should navigate back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}
