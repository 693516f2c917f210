// Package history lists the profile's past papers and opens them for
// review.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screens/paperview"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/layout"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

type papersLoadedMsg struct {
	Papers []history.PaperSummary
	Err    error
}

// HistoryScreen displays the profile's submitted papers, newest first.
type HistoryScreen struct {
	papers   history.PaperRepo
	session  *identity.Session
	items    []history.PaperSummary
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(papers history.PaperRepo, session *identity.Session) *HistoryScreen {
	return &HistoryScreen{
		papers:  papers,
		session: session,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.session == nil {
			return papersLoadedMsg{}
		}
		items, err := s.papers.ListByOwner(context.Background(), s.session.UserID)
		if err != nil {
			return papersLoadedMsg{Err: err}
		}
		return papersLoadedMsg{Papers: items}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case papersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Papers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.items) {
				item := s.items[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: paperview.New(s.papers, s.session, item.ID),
					}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No papers yet. Generate one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, item := range s.items {
		dateStr := item.CreatedAt.Local().Format("Jan 02, 2006 15:04")
		scoreStr := fmt.Sprintf("%d/%d", item.Score, item.QuestionCount)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-34s  %s  %s", prefix,
			truncate(item.DisplayTitle(), 34), dateStr, scoreStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
