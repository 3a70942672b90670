package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/questions"
	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderCentered(width, height, theme.Incorrect.Render("Error: "+s.errMsg))
	case s.sess == nil:
		return renderCentered(width, height, theme.Hint.Render("Loading questions..."))
	case s.submitting:
		return renderCentered(width, height, theme.Hint.Render("Scoring your answers..."))
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.current()
	info := s.level.Info()

	var b strings.Builder

	left := theme.Accented(info.Color, fmt.Sprintf("  %s %s", info.Icon, info.Name))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%s %s   Q %d/%d",
		questions.CategoryIcon(q.CategoryLabel()), q.CategoryLabel(),
		s.index+1, len(s.sess.Questions),
	))
	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(min(width-8, 76)).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n")

	switch {
	case s.check != nil:
		b.WriteString(s.renderCheck(width))
	case s.skipped:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Skipped. It will count as not answered.")))
	}
	return b.String()
}

func (s *QuizScreen) renderCheck(width int) string {
	c := s.check
	var verdict string
	if c.Correct {
		verdict = theme.Correct.Render(fmt.Sprintf("Correct! +%d points", c.Points))
	} else {
		verdict = theme.Incorrect.Render("Not quite.")
	}
	explanation := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.TextDim).
		Render(c.Explanation)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict+"\n\n"+explanation)
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
