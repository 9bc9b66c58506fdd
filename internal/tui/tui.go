// Package tui implements the interactive session runner: a counselor or
// student walks the two-stage flow marking the outcome of each item and ends
// on the result summary. Question content itself lives in the external QTI
// bank; the runner replays an answer sheet against the engine.
package tui

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/paesdiag/internal/engine"
	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/routing"
	"github.com/abhisek/paesdiag/internal/ui/components"
)

// step is the screen the runner is currently on.
type step int

const (
	stepIntro step = iota
	stepQuestion
	stepTier
	stepResult
)

// stage distinguishes the two question-flow passes.
type stage int

const (
	stageRouting stage = iota
	stageStage2
)

// Model is the root Bubble Tea model for the session runner.
type Model struct {
	eng *engine.Engine

	step  step
	stage stage

	name  textinput.Model
	items []itembank.Item
	index int
	sheet []itembank.Answer
	pick  components.OutcomeSelect

	tier   routing.Tier
	result *engine.Result
	err    error

	width  int
	height int
}

// New creates the runner around a fresh engine.
func New(eng *engine.Engine) Model {
	name := textinput.New()
	name.Placeholder = "Student name (optional)"
	name.CharLimit = 40
	name.Focus()

	return Model{
		eng:  eng,
		step: stepIntro,
		name: name,
		pick: components.NewOutcomeSelect(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.name.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.err != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.step {
	case stepIntro:
		return m.updateIntro(msg)
	case stepQuestion:
		return m.updateQuestion(msg)
	case stepTier:
		return m.updateTier(msg)
	case stepResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m Model) updateIntro(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		m.items = m.eng.RoutingItems()
		m.index = 0
		m.sheet = m.sheet[:0]
		m.stage = stageRouting
		m.step = stepQuestion
		m.pick = components.NewOutcomeSelect()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) updateQuestion(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.pick, cmd = m.pick.Update(msg)
	if !m.pick.Submitted {
		return m, cmd
	}

	m.sheet = append(m.sheet, itembank.Answer{
		Item:    m.items[m.index],
		Outcome: m.pick.Outcome(),
	})
	m.pick = components.NewOutcomeSelect()
	m.index++
	if m.index < len(m.items) {
		return m, cmd
	}

	// Stage finished: hand the sheet to the engine.
	if m.stage == stageRouting {
		tier, err := m.eng.SubmitRouting(m.sheet)
		if err != nil {
			m.err = err
			return m, cmd
		}
		m.tier = tier
		m.step = stepTier
		return m, cmd
	}

	if err := m.eng.SubmitStage2(m.sheet); err != nil {
		m.err = err
		return m, cmd
	}
	result, err := m.eng.Result(context.Background())
	if err != nil {
		m.err = err
		return m, cmd
	}
	m.result = result
	m.step = stepResult
	return m, cmd
}

func (m Model) updateTier(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return m, nil
	}

	items, err := m.eng.Stage2Items()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.items = items
	m.index = 0
	m.sheet = m.sheet[:0]
	m.stage = stageStage2
	m.step = stepQuestion
	m.pick = components.NewOutcomeSelect()
	return m, nil
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// Run starts the Bubble Tea program around the given engine.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
