package paper

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/mathtext"
	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/components"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

// renderedOptions translates equation markup in each option.
func renderedOptions(options []string) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = mathtext.Render(o)
	}
	return out
}

// renderReviewQuestion renders one graded question with its options,
// the chosen answer marked, and the explanation when there is one.
func renderReviewQuestion(q papergen.Question, chosen, index, total, width int) string {
	var b strings.Builder

	header := fmt.Sprintf("Question %d of %d", index+1, total)
	if chosen == q.CorrectAnswer {
		header += "  ·  correct"
	} else if chosen < 0 {
		header += "  ·  unanswered"
	} else {
		header += "  ·  incorrect"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(header))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		questionStyle.Render(mathtext.Render(q.Text))))
	b.WriteString("\n\n")

	review := components.NewReviewList(renderedOptions(q.Options), q.CorrectAnswer, chosen)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, review.View()))

	if q.Explanation != "" {
		b.WriteString("\n")
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			expStyle.Render(mathtext.Render(q.Explanation))))
		b.WriteString("\n")
	}

	return b.String()
}

// renderConfirm renders a yes/no dialog.
func renderConfirm(width int, title, detail, yes, no string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render(yes))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(no))

	return b.String()
}
