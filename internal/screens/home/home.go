// Package home is the main menu screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
	historyscreen "github.com/Atchuta30/JEE-Prep-AI/internal/screens/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screens/setup"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/components"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	session    *identity.Session
	paperCount int
	lastScore  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(generator papergen.Generator, papers history.PaperRepo, session *identity.Session) *HomeScreen {
	h := &HomeScreen{session: session}

	// Stats for the banner area come straight from the store.
	if papers != nil && session != nil {
		if summaries, err := papers.ListByOwner(context.Background(), session.UserID); err == nil {
			h.paperCount = len(summaries)
			if len(summaries) > 0 {
				h.lastScore = fmt.Sprintf("%d/%d", summaries[0].Score, summaries[0].QuestionCount)
			}
		}
	}

	items := []components.MenuItem{
		{Label: "NEW PAPER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(generator, papers, session),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: historyscreen.New(papers, session),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("JEE Question Paper Generator")
	sections = append(sections, title)

	if h.session != nil {
		greeting := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Studying as %s", h.session.Name))
		sections = append(sections, greeting)
	}

	stats := fmt.Sprintf("Papers taken: %d", h.paperCount)
	if h.lastScore != "" {
		stats += fmt.Sprintf("   Last score: %s", h.lastScore)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(stats))

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
