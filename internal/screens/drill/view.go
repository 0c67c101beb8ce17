package drill

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/cluster"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

var drillTypeLabels = map[cluster.DrillType]string{
	cluster.DrillShadeDistinction:     "Shade of meaning",
	cluster.DrillIntensityOrdering:    "Intensity ordering",
	cluster.DrillOddOneOut:            "Odd one out",
	cluster.DrillConfusionResolver:    "Confusion resolver",
	cluster.DrillRelationshipLabeling: "Relationship",
}

func (s *Screen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return centered(width, theme.Incorrect.Render("\n\n\n  Error: "+s.errMsg+"\n\n  Press any key to go back."))
	case s.sess == nil:
		return centered(width, theme.Hint.Render("\n\n\n  Setting up drills..."))
	case s.quitConfirm:
		return centered(width, "\n\n\n"+theme.Body.Render("End this drill session?")+"\n\n"+theme.Hint.Render("Answered drills are kept either way."))
	case s.showFeedback:
		return s.renderFeedback(width)
	case s.currentDrill() != nil:
		return s.renderDrill(width)
	default:
		return centered(width, theme.Hint.Render("\n\n\n  Wrapping up..."))
	}
}

func (s *Screen) renderDrill(width int) string {
	d := s.currentDrill()

	var b strings.Builder

	label := drillTypeLabels[d.Type]
	if label == "" {
		label = string(d.Type)
	}
	info := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  Drill %d of %d  ·  %s", len(s.sess.Answers)+1, len(s.sess.Drills), label))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Bold(true).
		Foreground(theme.Text).
		Render(d.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	d := &s.sess.Drills[len(s.sess.Answers)-1]
	ans := s.sess.Answers[len(s.sess.Answers)-1]

	var b strings.Builder
	b.WriteString("\n")

	verdict := theme.Correct.Render("Correct!")
	if !s.lastOK {
		verdict = theme.Incorrect.Render("Not quite")
	}
	b.WriteString(centered(width, verdict))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n")

	if d.Explain != "" {
		ex := lipgloss.NewStyle().
			Width(min(width-8, 76)).
			Foreground(theme.Text).
			Render(d.Explain)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, ex))
		b.WriteString("\n")
	}

	if !s.lastOK {
		if pair := s.confusedPair(d, ans.Selected); pair != nil && pair.Mnemonic != "" {
			mn := lipgloss.NewStyle().
				Width(min(width-8, 76)).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("%s vs %s: %s", pair.Words[0], pair.Words[1], pair.Mnemonic))
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mn))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// confusedPair finds the cluster pair the miss maps onto, when the
// wrongly chosen option text is itself a cluster word.
func (s *Screen) confusedPair(d *cluster.Drill, selected []string) *cluster.ConfusionPair {
	correctSet := make(map[string]bool, len(d.Answer))
	for _, id := range d.Answer {
		correctSet[id] = true
	}

	var chosenWords []string
	for _, id := range selected {
		if correctSet[id] {
			continue
		}
		for _, o := range d.Options {
			if o.ID == id && s.clu.HasWord(o.Text) {
				chosenWords = append(chosenWords, o.Text)
			}
		}
	}

	for i := range s.clu.Pairs {
		pair := &s.clu.Pairs[i]
		for _, chosen := range chosenWords {
			if pair.Words[0] == chosen || pair.Words[1] == chosen {
				return pair
			}
		}
	}
	return nil
}

func (s *Screen) summaryLines(sum cluster.Summary) []string {
	lines := []string{
		fmt.Sprintf("Drills: %d", sum.Total),
		fmt.Sprintf("Correct: %d (%.0f%%)", sum.Correct, sum.Accuracy*100),
	}

	for _, dt := range []cluster.DrillType{
		cluster.DrillShadeDistinction,
		cluster.DrillIntensityOrdering,
		cluster.DrillOddOneOut,
		cluster.DrillConfusionResolver,
		cluster.DrillRelationshipLabeling,
	} {
		ts := sum.ByType[dt]
		if ts == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d/%d", drillTypeLabels[dt], ts.Correct, ts.Total))
	}

	after := s.prof.Clusters.Mastery(s.clu, time.Now())
	lines = append(lines, fmt.Sprintf("Cluster mastery: %.2f → %.2f (%s)",
		s.masteryBefore, after.Overall, cluster.MasteryLabel(after.Overall)))

	if len(sum.Struggled) > 0 {
		lines = append(lines, "Review these: "+strings.Join(sum.Struggled, ", "))
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

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
