package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jmdelaney/dayglow/internal/flow"
)

// FormBuilder renders one wizard step as a huh form bound to the draft.
type FormBuilder[D any] func(step flow.Step[D], draft D) *huh.Form

// StepHook runs when a step's form completes, before the machine advances.
// Builders use it to flush free-text buffers into structured draft fields.
type StepHook[D any] func(key string, draft D)

// Wizard drives a flow machine in the terminal: one huh form per step,
// enter advances, esc retreats (and abandons from the first step).
type Wizard[D any] struct {
	machine *flow.Machine[D]
	build   FormBuilder[D]
	onStep  StepHook[D]
	form    *huh.Form
	title   string

	Done      bool
	Abandoned bool
	width     int
}

func NewWizard[D any](title string, machine *flow.Machine[D], build FormBuilder[D], onStep StepHook[D]) *Wizard[D] {
	return &Wizard[D]{machine: machine, build: build, onStep: onStep, title: title}
}

// Draft exposes the machine's draft to the caller after Run finishes.
func (w *Wizard[D]) Draft() D {
	return w.machine.Draft
}

func (w *Wizard[D]) rebuild() tea.Cmd {
	w.form = w.build(w.machine.Step(), w.machine.Draft).WithTheme(huh.ThemeDracula())
	return w.form.Init()
}

func (w *Wizard[D]) Init() tea.Cmd {
	return w.rebuild()
}

func (w *Wizard[D]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			w.Abandoned = true
			return w, tea.Quit
		case tea.KeyEsc:
			if w.machine.Retreat() == flow.Abandoned {
				w.Abandoned = true
				return w, tea.Quit
			}
			return w, w.rebuild()
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	switch w.form.State {
	case huh.StateCompleted:
		if w.onStep != nil {
			w.onStep(w.machine.Step().Key, w.machine.Draft)
		}
		switch w.machine.Advance() {
		case flow.Completed:
			w.Done = true
			return w, tea.Quit
		case flow.Moved:
			return w, w.rebuild()
		default:
			// Gate still failing (empty required value); re-open the step.
			return w, w.rebuild()
		}
	case huh.StateAborted:
		w.Abandoned = true
		return w, tea.Quit
	}

	return w, cmd
}

func (w *Wizard[D]) View() string {
	if w.Done || w.Abandoned {
		return ""
	}

	header := titleStyle.Render(w.title) + "  " +
		stepCountStyle.Render(fmt.Sprintf("step %d/%d", w.machine.Index()+1, w.machine.Len()))
	help := helpStyle.Render("enter: next • esc: back")

	return docStyle.Render(header + "\n\n" + w.form.View() + "\n" + help)
}
