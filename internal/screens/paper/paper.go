// Package paper is the attempt-taking screen: questions one at a
// time, a submit confirmation, and the graded review afterwards.
package paper

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/quiz"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/components"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/layout"
)

// PaperScreen drives one attempt from first question to graded review.
type PaperScreen struct {
	attempt *quiz.Attempt
	current int
	options components.OptionList

	confirming  bool
	abandoning  bool
	result      *quiz.SubmitResult
	reviewIndex int
}

var _ screen.Screen = (*PaperScreen)(nil)
var _ screen.KeyHintProvider = (*PaperScreen)(nil)

// New creates a PaperScreen for the given attempt.
func New(attempt *quiz.Attempt) *PaperScreen {
	s := &PaperScreen{attempt: attempt}
	s.loadQuestion(0)
	return s
}

func (s *PaperScreen) Init() tea.Cmd {
	return nil
}

func (s *PaperScreen) Title() string {
	if s.attempt == nil {
		return "Paper"
	}
	return s.attempt.DisplayTitle()
}

func (s *PaperScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirming:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep answering"},
		}
	case s.abandoning:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon paper"},
			{Key: "N", Description: "Keep answering"},
		}
	case s.result != nil:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Enter", Description: "Choose"},
		}
		if s.attempt.ReadyToSubmit() {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
		return hints
	}
}

// loadQuestion points the option list at question i, restoring any
// earlier selection.
func (s *PaperScreen) loadQuestion(i int) {
	if s.attempt == nil || i < 0 || i >= len(s.attempt.Questions) {
		return
	}
	s.current = i
	s.options = components.NewOptionList(s.attempt.Questions[i].Options)
	if chosen := s.attempt.Answer(i); chosen != quiz.Unanswered {
		s.options.Chosen = chosen
		s.options.Cursor = chosen
	}
}

func (s *PaperScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.confirming {
		return s.handleConfirmKey(key)
	}
	if s.abandoning {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.abandoning = false
		}
		return s, nil
	}
	if s.result != nil {
		return s.handleReviewKey(key)
	}
	return s.handleAnswerKey(kmsg)
}

func (s *PaperScreen) handleConfirmKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		s.confirming = false
		res, err := s.attempt.Submit(context.Background())
		if err != nil {
			// Already submitted; nothing to redo.
			return s, nil
		}
		s.result = &res
		s.reviewIndex = 0
	case "n", "N", "esc":
		s.confirming = false
	}
	return s, nil
}

func (s *PaperScreen) handleReviewKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc", "q", "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k", "left", "h":
		if s.reviewIndex > 0 {
			s.reviewIndex--
		}
	case "down", "j", "right", "l":
		if s.reviewIndex < len(s.attempt.Questions)-1 {
			s.reviewIndex++
		}
	}
	return s, nil
}

func (s *PaperScreen) handleAnswerKey(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.abandoning = true
		return s, nil
	case "left", "p":
		s.loadQuestion(s.current - 1)
		return s, nil
	case "right", "n":
		s.loadQuestion(s.current + 1)
		return s, nil
	case "s", "S":
		// Submission only unlocks once every question is answered.
		if s.attempt.ReadyToSubmit() {
			s.confirming = true
		}
		return s, nil
	}

	before := s.options.Chosen
	var cmd tea.Cmd
	s.options, cmd = s.options.Update(kmsg)
	if s.options.Chosen != before && s.options.Chosen >= 0 {
		// Selecting again overwrites; the state machine enforces bounds.
		if err := s.attempt.SelectAnswer(s.current, s.options.Chosen); err == nil {
			// Hop to the next unanswered question, if any.
			if next := s.nextUnanswered(); next >= 0 {
				s.loadQuestion(next)
			}
		}
	}
	return s, cmd
}

// nextUnanswered returns the first unanswered question after the
// current one, wrapping around; -1 when everything is answered.
func (s *PaperScreen) nextUnanswered() int {
	n := len(s.attempt.Questions)
	for d := 1; d <= n; d++ {
		i := (s.current + d) % n
		if s.attempt.Answer(i) == quiz.Unanswered {
			return i
		}
	}
	return -1
}
