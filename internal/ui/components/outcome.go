package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/ui/theme"
)

// outcomeOptions lists the recordable outcomes in display order.
var outcomeOptions = itembank.AllOutcomes()

// outcomeLabel returns the display label for an outcome option.
func outcomeLabel(o itembank.Outcome) string {
	switch o {
	case itembank.OutcomeCorrect:
		return "Correct"
	case itembank.OutcomeIncorrect:
		return "Incorrect"
	default:
		return "Didn't know"
	}
}

// OutcomeSelect records the outcome of one answered item.
type OutcomeSelect struct {
	Selected  int
	Submitted bool
}

// NewOutcomeSelect creates a fresh selector.
func NewOutcomeSelect() OutcomeSelect {
	return OutcomeSelect{}
}

// Init returns nil.
func (o OutcomeSelect) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (o OutcomeSelect) Update(msg tea.Msg) (OutcomeSelect, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(outcomeOptions)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
	}

	return o, nil
}

// View renders the outcome selector.
func (o OutcomeSelect) View() string {
	s := ""
	for i, opt := range outcomeOptions {
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s", prefix, outcomeLabel(opt))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == o.Selected {
			switch opt {
			case itembank.OutcomeCorrect:
				style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
			case itembank.OutcomeIncorrect:
				style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
			default:
				style = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
			}
		}
		s += style.Render(line) + "\n"
	}
	return s
}

// Outcome returns the chosen outcome.
func (o OutcomeSelect) Outcome() itembank.Outcome {
	return outcomeOptions[o.Selected]
}
