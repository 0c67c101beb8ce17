package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	core "github.com/aeroSapphire/greprep/internal/practice"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.ctrl == nil:
		return renderLoading(width)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case s.showFeedback:
		return s.renderFeedback(width)
	case s.current == nil:
		return renderLoading(width)
	}
	return s.renderQuestion(width)
}

func (s *Screen) renderQuestion(width int) string {
	q := s.current

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.Title()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   difficulty %.1f",
			len(s.ctrl.History())+1, sessionLength, s.ctrl.CurrentDifficulty()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.Passage != "" {
		passage := lipgloss.NewStyle().
			Width(min(width-8, 76)).
			Foreground(theme.TextDim).
			Render(q.Passage)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, passage))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	q := s.current

	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastOK {
		b.WriteString(centered(width, theme.Correct.Render("Correct!")))
	} else {
		b.WriteString(centered(width, theme.Incorrect.Render("Not quite")))
	}
	b.WriteString("\n\n")

	// Show the graded option list so the learner sees the right answer.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n")

	if q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if !s.lastOK && s.diagnosis != nil && s.diagnosis.Label != "" {
		diag := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Pattern: %s — %s", s.diagnosis.Label, s.diagnosis.Explanation))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, diag))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width, theme.Hint.Render("Press any key to continue...")))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End session early?")))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("Your progress will be saved.")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Yes, end session")))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going")))
	return b.String()
}

func renderLoading(width int) string {
	return centered(width, theme.Hint.Render("\n\n\n  Preparing your session..."))
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

// practiceSummaryLines flattens the session summary for display.
func practiceSummaryLines(sum core.Summary, nudge string) []string {
	lines := []string{
		fmt.Sprintf("Questions answered: %d", sum.Total),
		fmt.Sprintf("Correct: %d (%.0f%%)", sum.Correct, sum.Accuracy*100),
		fmt.Sprintf("Best streak: %d", sum.MaxStreak),
	}
	before := sum.MasteryBefore[sum.SkillID]
	after := sum.MasteryAfter[sum.SkillID]
	lines = append(lines, fmt.Sprintf("Mastery: %.2f → %.2f", before, after))
	if sum.ShouldReviewLesson {
		lines = append(lines, "Rough patch in there. Revisit the lesson before the next session.")
	}
	if nudge != "" {
		lines = append(lines, nudge)
	}
	return lines
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
