package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/questions"
	svc "github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/ui/components"
	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

// maxTips is how many study tips are shown per suggested category.
const maxTips = 2

// Render lays out a submitted result at the given width. The CLI prints
// the same text the results screen scrolls through.
func Render(res *svc.Submitted, width int) string {
	cw := components.ContentWidth(width)
	sections := []string{
		renderHeadline(res, cw),
		renderCategories(res.Categories, cw),
	}
	if len(res.Suggestions) > 0 {
		sections = append(sections, renderSuggestions(res.Suggestions, cw))
	}
	sections = append(sections, renderFeedback(res.Feedback, cw))
	return strings.Join(sections, "\n\n")
}

func renderHeadline(res *svc.Submitted, cw int) string {
	risk := res.Risk
	info := res.Level.Info()

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 8).Render("Quiz complete!"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw - 8).Render(fmt.Sprintf("%s · %s %s", res.Username, info.Icon, info.Name)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 8).Align(lipgloss.Center).Render(
		theme.Accented(scoring.ColorFor(res.Percentage), scoring.FormatScore(res.Score, res.MaxScore))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 8).Align(lipgloss.Center).Render(
		theme.Accented(risk.Color, risk.Marker+" "+string(risk.Tier))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 8).Foreground(theme.Text).Render(risk.Description))
	return components.Card(b.String(), cw, risk.Color)
}

func renderCategories(stats scoring.CategoryStats, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Category breakdown"))
	for _, cs := range stats {
		label := fmt.Sprintf("%s %-20s %d/%d", questions.CategoryIcon(cs.Category), cs.Category, cs.Correct, cs.Total)
		b.WriteString("\n")
		b.WriteString(components.NewProgressBar(label, cs.Percentage, scoring.ColorFor(cs.Percentage), cw-8).View())
	}
	return components.Card(b.String(), cw, "")
}

func renderSuggestions(sugs []scoring.Suggestion, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Where to improve"))
	for _, s := range sugs {
		color := theme.Accent
		if s.Priority == scoring.PriorityHigh {
			color = theme.Error
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(
			fmt.Sprintf("[%s] %s", strings.ToUpper(string(s.Priority)), s.Category)))
		b.WriteString("  " + theme.Hint.Render(s.Performance))
		b.WriteString("\n" + lipgloss.NewStyle().Width(cw-8).Foreground(theme.Text).Render(s.Recommendation))

		res, ok := scoring.ResourcesFor(s.Category)
		if !ok {
			continue
		}
		for i, tip := range res.Tips {
			if i == maxTips {
				break
			}
			b.WriteString("\n  • " + tip)
		}
		for _, link := range res.Links {
			b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Primary).Underline(true).Render(link))
		}
	}
	return components.Card(b.String(), cw, "")
}

func renderFeedback(items []scoring.FeedbackItem, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Your answers"))
	for i, f := range items {
		mark := theme.Correct.Render("✓")
		if !f.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("\n\n%s %d. ", mark, i+1))
		b.WriteString(lipgloss.NewStyle().Width(cw - 12).Bold(true).Render(f.Question))
		b.WriteString("\n   Your answer: " + f.SelectedAnswer)
		if !f.IsCorrect {
			b.WriteString("\n   Correct: " + theme.Correct.Render(f.CorrectAnswer))
		}
		b.WriteString(fmt.Sprintf("\n   %s", theme.Hint.Render(fmt.Sprintf("%d/%d pts · %s", f.PointsEarned, f.PointsPossible, f.Category))))
	}
	return components.Card(b.String(), cw, "")
}
