package paper

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/mathtext"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/components"
	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

func (s *PaperScreen) View(width, height int) string {
	switch {
	case s.confirming:
		return renderConfirm(width, "Submit this paper?",
			"Unanswered questions count as incorrect.",
			"[Y] Submit", "[N] Keep answering")
	case s.abandoning:
		return renderConfirm(width, "Abandon this paper?",
			"Nothing will be saved.",
			"[Y] Abandon", "[N] Keep answering")
	case s.result != nil:
		return s.renderResults(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func (s *PaperScreen) renderQuestion(width, height int) string {
	q := s.attempt.Questions[s.current]
	answered, total := s.attempt.Progress()

	var b strings.Builder

	// Info line: position left, progress right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.current+1, total))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d answered", answered, total))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(answered)/float64(total), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Question text, equations translated for the terminal.
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		questionStyle.Render(mathtext.Render(q.Text))))
	b.WriteString("\n\n")

	opts := s.options
	opts.Options = renderedOptions(q.Options)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.View()))

	if !s.attempt.ReadyToSubmit() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Answer every question to unlock submission."))
	}

	return b.String()
}

func (s *PaperScreen) renderResults(width, height int) string {
	res := s.result
	total := len(s.attempt.Questions)

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Paper complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score: %d / %d", res.Score, total)))
	b.WriteString("\n")

	// Save status. A failed save never touches the score above.
	var status string
	statusStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case res.RecordID != "":
		status = statusStyle.Foreground(theme.TextDim).Render("Saved to history.")
	case res.SaveErr != nil:
		status = statusStyle.Foreground(theme.Error).
			Render(fmt.Sprintf("Could not save to history: %v", res.SaveErr))
	default:
		status = statusStyle.Foreground(theme.TextDim).Italic(true).Render("Not saved (no profile).")
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	b.WriteString(renderReviewQuestion(s.attempt.Questions[s.reviewIndex],
		s.attempt.Answer(s.reviewIndex), s.reviewIndex, total, width))

	return b.String()
}
