package paper

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/quiz"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testAttempt(n int) *quiz.Attempt {
	questions := make([]papergen.Question, n)
	for i := range questions {
		questions[i] = papergen.Question{
			ID:            "q",
			Text:          "What is $1 + 1$?",
			Options:       []string{"1", "2", "3", "4"},
			CorrectAnswer: 1,
			Explanation:   "Basic addition.",
		}
	}
	return quiz.NewAttempt(papergen.Request{
		Subject:      papergen.SubjectMathematics,
		Difficulty:   papergen.DifficultyEasy,
		NumQuestions: n,
	}, questions, "")
}

func TestChoosingAdvancesToNextUnanswered(t *testing.T) {
	s := New(testAttempt(3))

	// Choose option A on question 1.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.current != 1 {
		t.Fatalf("current = %d, want 1 after answering", s.current)
	}
	if got := s.attempt.Answer(0); got != 0 {
		t.Fatalf("answer[0] = %d, want 0", got)
	}
}

func TestSubmitGatedUntilAllAnswered(t *testing.T) {
	s := New(testAttempt(2))

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // answer q1
	s.Update(keyPress('s'))
	if s.confirming {
		t.Fatal("submit unlocked with an unanswered question")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // answer q2
	s.Update(keyPress('s'))
	if !s.confirming {
		t.Fatal("submit should unlock once everything is answered")
	}
}

func TestSubmitConfirmAndScore(t *testing.T) {
	s := New(testAttempt(2))

	// Correct answer is option B (index 1); pick it for q1, A for q2.
	s.Update(keyPress('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Update(keyPress('s'))
	s.Update(keyPress('n'))
	if s.result != nil {
		t.Fatal("declining the confirm should not submit")
	}

	s.Update(keyPress('s'))
	s.Update(keyPress('y'))
	if s.result == nil {
		t.Fatal("expected a result after confirming")
	}
	if s.result.Score != 1 {
		t.Errorf("score = %d, want 1", s.result.Score)
	}
	if s.attempt.State() != quiz.Submitted {
		t.Error("attempt not submitted")
	}
}

func TestChangeAnswerBeforeSubmit(t *testing.T) {
	s := New(testAttempt(2))

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // q1 = A
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // q2 = A

	// Go back to q1 and change to B. Last write wins.
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.current != 0 {
		t.Fatalf("current = %d, want 0", s.current)
	}
	s.Update(keyPress('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := s.attempt.Answer(0); got != 1 {
		t.Fatalf("answer[0] = %d, want 1 after change", got)
	}
}

func TestAbandonConfirm(t *testing.T) {
	s := New(testAttempt(1))

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.abandoning {
		t.Fatal("esc should ask for confirmation")
	}

	s.Update(keyPress('n'))
	if s.abandoning {
		t.Fatal("n should cancel abandoning")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("confirming abandon should navigate")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestResultsViewShowsScoreAndEquations(t *testing.T) {
	s := New(testAttempt(1))
	s.Update(keyPress('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(keyPress('s'))
	s.Update(keyPress('y'))

	view := s.View(100, 40)
	if !strings.Contains(view, "Score: 1 / 1") {
		t.Errorf("results view missing score:\n%s", view)
	}
	if !strings.Contains(view, "Not saved") {
		t.Error("anonymous attempt should note it was not saved")
	}
	// LaTeX delimiters must not leak into the rendered view.
	if strings.Contains(view, "$1 + 1$") {
		t.Error("equation markup not rendered")
	}
	if !strings.Contains(view, "1 + 1") {
		t.Error("equation text missing")
	}
}

func TestReviewNavigation(t *testing.T) {
	s := New(testAttempt(3))
	for i := 0; i < 3; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}
	s.Update(keyPress('s'))
	s.Update(keyPress('y'))

	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.reviewIndex != 2 {
		t.Fatalf("reviewIndex = %d, want 2", s.reviewIndex)
	}
	s.Update(keyPress('j'))
	if s.reviewIndex != 2 {
		t.Fatal("review navigation past the last question")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc from results should navigate home")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}
