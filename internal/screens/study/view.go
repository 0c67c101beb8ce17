package study

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/srs"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, theme.Incorrect.Render("\n\n\n  Error: "+s.errMsg+"\n\n  Press any key to go back."))
	}
	if s.prof == nil {
		return centered(width, theme.Hint.Render("\n\n\n  Shuffling your deck..."))
	}

	card, ok := s.currentCard()
	if !ok {
		return centered(width, theme.Hint.Render("\n\n\n  Wrapping up..."))
	}

	var b strings.Builder

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Card %d of %d", s.pos+1, len(s.queue)))
	b.WriteString(progress)
	b.WriteString("\n\n\n")

	word := theme.Title.Width(width).Render(card.Word)
	b.WriteString(word)
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(card.PartOfSpeech))
	b.WriteString("\n\n")

	switch s.ph {
	case phaseFront:
		b.WriteString(centered(width, theme.Hint.Render("Press space to reveal")))
		if s.lastLabel != "" {
			b.WriteString("\n\n")
			b.WriteString(centered(width, theme.Hint.Render("Previous card comes back in "+s.lastLabel)))
		}

	case phaseBack:
		b.WriteString(s.renderBack(width, card.Definition, card.Example, card.Etymology))

	case phaseSentence:
		b.WriteString(s.renderSentence(width, card.Definition))
	}

	return b.String()
}

func (s *Screen) renderBack(width int, definition, example, etymology string) string {
	var b strings.Builder

	def := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(definition)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, def))
	b.WriteString("\n\n")

	ex := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("\"" + example + "\"")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, ex))
	b.WriteString("\n")

	if etymology != "" {
		et := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(etymology)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, et))
		b.WriteString("\n")
	}

	if s.mnemonic != nil {
		b.WriteString("\n")
		mn := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("[%s] %s", s.mnemonic.Technique, s.mnemonic.Mnemonic))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mn))
		b.WriteString("\n")
	} else if s.genPending {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render("Thinking of a mnemonic...")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderGradeRow(width))

	return b.String()
}

// renderGradeRow shows the three grades with their interval previews.
func (s *Screen) renderGradeRow(width int) string {
	card, ok := s.currentCard()
	if !ok {
		return ""
	}
	previews := s.prof.Reviews.Previews(card.ID, time.Now())

	row := strings.Join([]string{
		theme.Incorrect.Render(fmt.Sprintf("[1] Again (%s)", previews[srs.GradeFail])),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("[2] Hard (%s)", previews[srs.GradeHard])),
		theme.Correct.Render(fmt.Sprintf("[3] Easy (%s)", previews[srs.GradeEasy])),
	}, "    ")

	return centered(width, row)
}

func (s *Screen) renderSentence(width int, definition string) string {
	var b strings.Builder

	def := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(definition)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, def))
	b.WriteString("\n\n")

	b.WriteString(centered(width, "Your sentence: "+s.sentence.View()))
	b.WriteString("\n\n")

	if s.evalPending {
		b.WriteString(centered(width, theme.Hint.Render("Checking...")))
	} else if s.evalResult != nil {
		verdict := theme.Correct.Render("Good usage!")
		if !s.evalResult.Correct {
			verdict = theme.Incorrect.Render("Not quite")
		}
		b.WriteString(centered(width, verdict))
		b.WriteString("\n")
		fb := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(s.evalResult.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		if s.evalResult.Suggestion != "" {
			b.WriteString("\n")
			sg := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Italic(true).
				Render("Try: " + s.evalResult.Suggestion)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, sg))
		}
	}

	return b.String()
}

func (s *Screen) summaryLines(reviewed int) []string {
	lines := []string{
		fmt.Sprintf("Cards reviewed: %d", reviewed),
		fmt.Sprintf("Again: %d   Hard: %d   Easy: %d",
			s.gradeCounts[srs.GradeFail], s.gradeCounts[srs.GradeHard], s.gradeCounts[srs.GradeEasy]),
	}
	due := s.prof.Reviews.Due(time.Now())
	if len(due) > 0 {
		lines = append(lines, fmt.Sprintf("Still due: %d", len(due)))
	} else {
		lines = append(lines, "Queue clear. Nothing due right now.")
	}
	return lines
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
