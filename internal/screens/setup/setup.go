// Package setup is the paper request form: subject, topics,
// difficulty, and question count, followed by generation.
package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/attempts"
	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/quiz"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screens/paper"
	"github.com/Atchuta30/JEE-Prep-AI/internal/topics"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/components"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/layout"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

// Form fields in tab order.
const (
	fieldSubject = iota
	fieldDifficulty
	fieldTopics
	fieldCount
	fieldGenerate
	fieldLast = fieldGenerate
)

type paperReadyMsg struct {
	Request   papergen.Request
	Questions []papergen.Question
}

type paperFailedMsg struct {
	Err error
}

// SetupScreen collects the generation request and runs it.
type SetupScreen struct {
	generator papergen.Generator
	papers    history.PaperRepo
	session   *identity.Session

	field       int
	subjectIdx  int
	difficulty  int
	topicsList  components.MultiSelect
	countInput  components.TextInput
	generating  bool
	errMsg      string
	validateMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(generator papergen.Generator, papers history.PaperRepo, session *identity.Session) *SetupScreen {
	s := &SetupScreen{
		generator:  generator,
		papers:     papers,
		session:    session,
		countInput: components.NewTextInput(fmt.Sprintf("%d", papergen.DefaultQuestions), true, 2),
	}
	s.reloadTopics()
	return s
}

func (s *SetupScreen) subject() papergen.Subject {
	return papergen.Subjects()[s.subjectIdx]
}

func (s *SetupScreen) reloadTopics() {
	s.topicsList = components.NewMultiSelect(topics.ForSubject(s.subject()), 8)
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Paper"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Esc", Description: "Back"},
	}
	switch s.field {
	case fieldSubject, fieldDifficulty:
		hints = append([]layout.KeyHint{{Key: "←→", Description: "Change"}}, hints...)
	case fieldTopics:
		hints = append([]layout.KeyHint{{Key: "Space", Description: "Toggle topic"}}, hints...)
	case fieldGenerate:
		hints = append([]layout.KeyHint{{Key: "Enter", Description: "Generate"}}, hints...)
	}
	return hints
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case paperReadyMsg:
		s.generating = false
		attempt := quiz.NewAttempt(msg.Request, msg.Questions, ownerID(s.session))
		if s.papers != nil {
			attempt.AttachSink(attempts.NewSaver(s.papers))
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: paper.New(attempt)}
		}

	case paperFailedMsg:
		s.generating = false
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func ownerID(session *identity.Session) string {
	if session == nil {
		return ""
	}
	return session.UserID
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.generating {
		return s, nil
	}

	key := msg.String()

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Error state: Enter retries.
	if s.errMsg != "" {
		if key == "enter" {
			s.errMsg = ""
			return s.startGeneration()
		}
		return s, nil
	}

	switch key {
	case "tab", "down":
		if s.field == fieldTopics && key == "down" {
			// Down moves inside the topic list until the end.
			if s.topicsList.Cursor < len(s.topicsList.Items)-1 {
				var cmd tea.Cmd
				s.topicsList, cmd = s.topicsList.Update(msg)
				return s, cmd
			}
		}
		if s.field < fieldLast {
			s.field++
		}
		return s, nil
	case "shift+tab", "up":
		if s.field == fieldTopics && key == "up" {
			if s.topicsList.Cursor > 0 {
				var cmd tea.Cmd
				s.topicsList, cmd = s.topicsList.Update(msg)
				return s, cmd
			}
		}
		if s.field > 0 {
			s.field--
		}
		return s, nil
	}

	switch s.field {
	case fieldSubject:
		switch key {
		case "left", "h":
			s.subjectIdx = (s.subjectIdx + len(papergen.Subjects()) - 1) % len(papergen.Subjects())
			s.reloadTopics()
		case "right", "l", "enter":
			s.subjectIdx = (s.subjectIdx + 1) % len(papergen.Subjects())
			s.reloadTopics()
		}
	case fieldDifficulty:
		switch key {
		case "left", "h":
			s.difficulty = (s.difficulty + len(papergen.Difficulties()) - 1) % len(papergen.Difficulties())
		case "right", "l", "enter":
			s.difficulty = (s.difficulty + 1) % len(papergen.Difficulties())
		}
	case fieldTopics:
		var cmd tea.Cmd
		s.topicsList, cmd = s.topicsList.Update(msg)
		return s, cmd
	case fieldCount:
		var cmd tea.Cmd
		s.countInput, cmd = s.countInput.Update(msg)
		return s, cmd
	case fieldGenerate:
		if key == "enter" {
			return s.startGeneration()
		}
	}

	return s, nil
}

// buildRequest assembles and validates the request from form state.
func (s *SetupScreen) buildRequest() (papergen.Request, error) {
	req := papergen.Request{
		Subject:      s.subject(),
		Topics:       s.topicsList.Selected(),
		Difficulty:   papergen.Difficulties()[s.difficulty],
		NumQuestions: papergen.DefaultQuestions,
	}
	if v := s.countInput.Value(); v != "" {
		n, err := s.countInput.NumericValue()
		if err != nil {
			return req, fmt.Errorf("question count must be a number")
		}
		req.NumQuestions = n
	}
	req = req.Normalize()
	return req, req.Validate()
}

func (s *SetupScreen) startGeneration() (screen.Screen, tea.Cmd) {
	req, err := s.buildRequest()
	if err != nil {
		s.validateMsg = err.Error()
		return s, nil
	}
	s.validateMsg = ""
	s.generating = true

	return s, func() tea.Msg {
		questions, err := s.generator.GeneratePaper(context.Background(), req)
		if err != nil {
			return paperFailedMsg{Err: err}
		}
		return paperReadyMsg{Request: req, Questions: questions}
	}
}

func (s *SetupScreen) View(width, height int) string {
	if s.generating {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n\n  Generating %s paper...\n\n  This can take up to a minute.", s.subject()))
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Generation failed: %s\n\n  Press Enter to retry, Esc to go back.", s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(s.renderChoiceRow(fieldSubject, "Subject", string(s.subject())))
	b.WriteString(s.renderChoiceRow(fieldDifficulty, "Difficulty", string(papergen.Difficulties()[s.difficulty])))

	// Topics section.
	topicsLabel := fmt.Sprintf("Topics (%d selected, pick at least one)", s.topicsList.Count())
	b.WriteString(s.renderLabel(fieldTopics, topicsLabel) + "\n")
	b.WriteString(s.topicsList.View())
	b.WriteString("\n")

	// Count row.
	b.WriteString(s.renderLabel(fieldCount, fmt.Sprintf("Questions (%d-%d)", papergen.MinQuestions, papergen.MaxQuestions)))
	b.WriteString("  " + s.countInput.View() + "\n\n")

	// Generate row.
	generate := "  GENERATE PAPER"
	if s.field == fieldGenerate {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸"+generate) + "\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(" "+generate) + "\n")
	}

	if s.validateMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.validateMsg) + "\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *SetupScreen) renderChoiceRow(field int, label, value string) string {
	row := fmt.Sprintf("%s  ◂ %s ▸\n\n", s.renderLabel(field, label), value)
	return row
}

func (s *SetupScreen) renderLabel(field int, label string) string {
	if s.field == field {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + label)
}
