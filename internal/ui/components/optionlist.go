package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

// OptionList renders the four answer options of a question. Before
// submission it is an interactive selector; in review mode it marks
// the correct option and the one that was chosen.
type OptionList struct {
	Options []string

	// Cursor is the highlighted option during answering.
	Cursor int

	// Chosen is the committed selection, -1 for none.
	Chosen int

	// Review switches from selector to graded display.
	Review       bool
	CorrectIndex int
}

// NewOptionList creates a selector over the given options.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Chosen:  -1,
	}
}

// NewReviewList creates a graded display of an answered question.
func NewReviewList(options []string, correctIndex, chosen int) OptionList {
	return OptionList{
		Options:      options,
		Chosen:       chosen,
		Review:       true,
		CorrectIndex: correctIndex,
	}
}

// Update handles cursor movement and choosing. Choosing does not lock
// the list: a later choice replaces the earlier one.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Review {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", "space", " ":
		o.Chosen = o.Cursor
	}

	return o, nil
}

var optionLabels = []string{"A", "B", "C", "D"}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := optionLabels[i%len(optionLabels)]

		if o.Review {
			s += o.renderReviewLine(i, label, opt) + "\n"
			continue
		}

		marker := "( )"
		if i == o.Chosen {
			marker = "(●)"
		}
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)
		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

func (o OptionList) renderReviewLine(i int, label, opt string) string {
	mark := "  "
	switch {
	case i == o.CorrectIndex:
		mark = "✓ "
	case i == o.Chosen:
		mark = "✗ "
	}

	line := fmt.Sprintf("  %s%s)  %s", mark, label, opt)
	switch {
	case i == o.CorrectIndex:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line)
	case i == o.Chosen:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	}
}
