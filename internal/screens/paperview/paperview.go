// Package paperview is the read-only review of a stored paper. The
// score shown is the one persisted at submission time.
package paperview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
	"github.com/Atchuta30/JEE-Prep-AI/internal/mathtext"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/components"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/layout"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

type paperLoadedMsg struct {
	Paper *history.PaperRecord
	Err   error
}

// PaperViewScreen shows one stored paper, question by question.
type PaperViewScreen struct {
	papers  history.PaperRepo
	session *identity.Session
	paperID string

	paper   *history.PaperRecord
	current int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*PaperViewScreen)(nil)
var _ screen.KeyHintProvider = (*PaperViewScreen)(nil)

// New creates a PaperViewScreen for the given record ID.
func New(papers history.PaperRepo, session *identity.Session, paperID string) *PaperViewScreen {
	return &PaperViewScreen{
		papers:  papers,
		session: session,
		paperID: paperID,
	}
}

func (s *PaperViewScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ownerID := ""
		if s.session != nil {
			ownerID = s.session.UserID
		}
		p, err := s.papers.GetByID(context.Background(), ownerID, s.paperID)
		if err != nil {
			return paperLoadedMsg{Err: err}
		}
		return paperLoadedMsg{Paper: p}
	}
}

func (s *PaperViewScreen) Title() string {
	if s.paper != nil {
		return s.paper.DisplayTitle()
	}
	return "Paper"
}

func (s *PaperViewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PaperViewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case paperLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			if errors.Is(msg.Err, history.ErrNotAvailable) {
				s.errMsg = "This paper is not available."
			} else {
				s.errMsg = msg.Err.Error()
			}
		} else {
			s.paper = msg.Paper
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k", "left", "h":
			if s.current > 0 {
				s.current--
			}
		case "down", "j", "right", "l":
			if s.paper != nil && s.current < len(s.paper.Questions)-1 {
				s.current++
			}
		}
	}
	return s, nil
}

func (s *PaperViewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  %s", s.errMsg))
	}
	if !s.loaded || s.paper == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading paper...")
	}

	p := s.paper
	var b strings.Builder
	b.WriteString("\n")

	// Persisted result header. Never regraded on display.
	head := fmt.Sprintf("%s  ·  %s  ·  Score %d/%d",
		p.DisplayTitle(),
		p.CreatedAt.Local().Format("Jan 02, 2006"),
		p.Score, len(p.Questions))
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).Bold(true).
		Render(head))
	if len(p.Topics) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Topics: " + strings.Join(p.Topics, ", ")))
	}
	b.WriteString("\n\n")

	q := p.Questions[s.current]
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.current+1, len(p.Questions))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		questionStyle.Render(mathtext.Render(q.Text))))
	b.WriteString("\n\n")

	chosen := -1
	if q.SelectedAnswer != nil {
		chosen = *q.SelectedAnswer
	}
	options := make([]string, len(q.Options))
	for i, o := range q.Options {
		options[i] = mathtext.Render(o)
	}
	review := components.NewReviewList(options, q.CorrectAnswer, chosen)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, review.View()))

	if q.Explanation != "" {
		b.WriteString("\n")
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			expStyle.Render(mathtext.Render(q.Explanation))))
	}

	return b.String()
}
