// Package app wires the screens together into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screens/home"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screens/welcome"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/layout"
)

// Deps holds everything the screens need to operate.
type Deps struct {
	Generator papergen.Generator
	Papers    history.PaperRepo
	Session   *identity.Session
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   Deps
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(deps Deps) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(deps.Generator, deps.Papers, deps.Session)
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory)),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: the paper screen turns it into an
		// abandon confirmation instead of popping straight away.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	profile := ""
	if m.deps.Session != nil {
		profile = m.deps.Session.Name
	}
	header := layout.RenderHeader(title, profile, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
