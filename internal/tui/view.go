package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paesdiag/internal/engine"
	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/scoring"
	"github.com/abhisek/paesdiag/internal/ui/components"
	"github.com/abhisek/paesdiag/internal/ui/layout"
	"github.com/abhisek/paesdiag/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var content string
	switch {
	case m.err != nil:
		content = m.viewError()
	case m.step == stepIntro:
		content = m.viewIntro()
	case m.step == stepQuestion:
		content = m.viewQuestion()
	case m.step == stepTier:
		content = m.viewTier()
	default:
		content = m.viewResult()
	}

	header := layout.RenderHeader(m.title(), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) title() string {
	switch m.step {
	case stepIntro:
		return "PAES M1 Diagnostic"
	case stepQuestion:
		if m.stage == stageRouting {
			return fmt.Sprintf("Routing · Question %d/%d", m.index+1, len(m.items))
		}
		return fmt.Sprintf("Stage 2 (%s) · Question %d/%d", m.tier.DisplayName(), m.index+1, len(m.items))
	case stepTier:
		return "Routing Complete"
	default:
		return "Results"
	}
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.step {
	case stepIntro, stepTier:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case stepQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Record"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Finish"},
		}
	}
}

func (m Model) viewError() string {
	return theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Session error") +
			"\n\n" + theme.Body.Render(m.err.Error()) +
			"\n\n" + theme.Hint.Render("Press Enter to exit"))
}

func (m Model) viewIntro() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("PAES M1 Math Diagnostic") + "\n")
	b.WriteString(theme.Subtitle.Render("8 routing questions, 8 tiered questions, instant score estimate") + "\n\n")
	b.WriteString(theme.Body.Render("Mark each question as you grade the answer sheet.") + "\n\n")
	b.WriteString(m.name.View() + "\n")
	return b.String()
}

func (m Model) viewQuestion() string {
	item := m.items[m.index]

	bar := components.ProgressBar{
		Percent: float64(m.index) / float64(len(m.items)),
		Width:   m.width - 8,
	}

	card := theme.Card.Render(fmt.Sprintf(
		"%s\n\n%s\n%s\n%s",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("%s · %s", item.Exam, item.ID)),
		theme.Body.Render("Axis:   "+itembank.AxisDisplayName(item.Axis)),
		theme.Body.Render("Skill:  "+itembank.SkillDisplayName(item.Skill)),
		theme.Body.Render(fmt.Sprintf("Weight: %.2f", item.Weight)),
	))

	return bar.View() + "\n\n" + card + "\n\n" +
		theme.Body.Render("How did the student answer?") + "\n\n" + m.pick.View()
}

func (m Model) viewTier() string {
	return theme.Card.Render(fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Routing complete"),
		theme.Body.Render(fmt.Sprintf(
			"%d of %d correct → %s tier (module %s)",
			itembank.CountCorrect(m.sheet), len(m.sheet),
			m.tier.DisplayName(), m.tier.Module(),
		)),
		theme.Hint.Render("Press Enter for the stage-2 questions"),
	))
}

func (m Model) viewResult() string {
	r := m.result
	var b strings.Builder

	who := strings.TrimSpace(m.name.Value())
	if who == "" {
		who = "Student"
	}

	b.WriteString(theme.Title.Render(who+" · Estimated PAES M1 Score") + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(
		fmt.Sprintf("    %d", r.Score.Point)) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"range %d–%d · level %s · tier %s",
		r.Score.Low, r.Score.High,
		scoring.LevelFor(r.Score.Point).DisplayName(),
		r.Tier.DisplayName())) + "\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Correct: routing %d/8 · stage 2 %d/8 · total %d/16",
		r.RoutingCorrect, r.Stage2Correct, r.TotalCorrect)) + "\n\n")

	b.WriteString(theme.Body.Render("By axis") + "\n")
	for _, axis := range itembank.AllAxes() {
		bd := r.ByAxis[axis]
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-26s", itembank.AxisDisplayName(axis)),
			Percent:     bd.Accuracy(),
			ShowPercent: true,
			Width:       m.width - 26,
		}
		b.WriteString("  " + bar.View() + "  " + bandLabel(bd.Band()) + "\n")
	}

	b.WriteString("\n" + theme.Body.Render("By skill") + "\n")
	for _, skill := range itembank.AllSkills() {
		bd := r.BySkill[skill]
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-26s", itembank.SkillDisplayName(skill)),
			Percent:     bd.Accuracy(),
			ShowPercent: true,
			Width:       m.width - 12,
		}
		b.WriteString("  " + bar.View() + "\n")
	}

	reinforce := 0
	for _, axis := range itembank.AllAxes() {
		if r.ByAxis[axis].Band() == engine.BandReinforce {
			reinforce++
		}
	}
	if reinforce > 0 {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf(
			"%d axis area(s) need reinforcement", reinforce)) + "\n")
	}

	if r.Plan.TotalItems > 0 {
		b.WriteString("\n" + theme.Body.Render(fmt.Sprintf(
			"Study plan: %d atoms to learn, %d to correct",
			len(r.Plan.ToLearn), len(r.Plan.ToCorrect))) + "\n")
	}

	return b.String()
}

// bandLabel renders the per-axis reporting band.
func bandLabel(band engine.Band) string {
	color := theme.Error
	switch band {
	case engine.BandStrength:
		color = theme.Success
	case engine.BandDeveloping:
		color = theme.Warning
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(band))
}
