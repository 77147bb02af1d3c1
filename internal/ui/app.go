package ui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/bank"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/services"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/stores"
)

// Deps carries everything the screens need. All fields are required.
type Deps struct {
	Bank     *bank.QuestionBank
	Sessions services.SessionService
	Reviews  services.ReviewService
	Stats    stores.StatsStore
	Logger   *slog.Logger
}

// appModel is the root Bubble Tea model: it owns the terminal size and the
// screen stack and keeps global keys (quit, back) in one place.
type appModel struct {
	stack  *stack
	width  int
	height int
}

func newAppModel(deps Deps) appModel {
	return appModel{stack: newStack(newHomeScreen(deps))}
}

func (m appModel) Init() tea.Cmd {
	return m.stack.active().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that need Esc themselves (quit confirmation, an
			// unfinished test) sit above depth 1 and see it first.
			if m.stack.depth() > 1 {
				if _, capture := m.stack.active().(escHandler); !capture {
					return m, func() tea.Msg { return popMsg{} }
				}
			}
		}
	}

	cmd := m.stack.update(msg)
	return m, cmd
}

// escHandler marks screens that handle Esc themselves instead of being
// popped by the root model.
type escHandler interface {
	handlesEsc()
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if tooSmall(m.width, m.height) {
		v.SetContent(renderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.stack.active()
	header := renderHeader(active.Title(), screenStatus(active), m.width)

	hints := active.KeyHints()
	if m.stack.depth() > 1 {
		hints = append(hints, keyHint{Key: "Esc", Description: "Back"})
	}
	hints = append(hints, keyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := renderFooter(hints, m.width)

	content := active.View(m.width, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	v.SetContent(renderFrame(header, content, footer, m.width, m.height))
	return v
}

// statusProvider lets a screen put a short string (progress counter, mode)
// in the header's right slot.
type statusProvider interface {
	Status() string
}

func screenStatus(s Screen) string {
	if sp, ok := s.(statusProvider); ok {
		return sp.Status()
	}
	return ""
}

// Run starts the terminal program and blocks until the user quits.
func Run(deps Deps) error {
	_, err := tea.NewProgram(newAppModel(deps)).Run()
	return err
}
