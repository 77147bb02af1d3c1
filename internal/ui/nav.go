package ui

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is one full-terminal view: the category menu, a running test, the
// score summary, a review pass or the statistics table.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
	KeyHints() []keyHint
}

// pushMsg asks the root model to put a new screen on top of the stack.
type pushMsg struct {
	Screen Screen
}

// popMsg asks the root model to drop the top screen.
type popMsg struct{}

// replaceMsg swaps the top screen without changing stack depth. Retaking a
// test replaces the summary so Esc still lands on the menu.
type replaceMsg struct {
	Screen Screen
}

// stack is the screen navigation stack. The bottom screen is never popped.
type stack struct {
	screens []Screen
}

func newStack(initial Screen) *stack {
	return &stack{screens: []Screen{initial}}
}

func (s *stack) push(screen Screen) tea.Cmd {
	s.screens = append(s.screens, screen)
	return screen.Init()
}

func (s *stack) pop() {
	if len(s.screens) > 1 {
		s.screens = s.screens[:len(s.screens)-1]
	}
}

func (s *stack) replace(screen Screen) tea.Cmd {
	s.screens[len(s.screens)-1] = screen
	return screen.Init()
}

func (s *stack) active() Screen {
	return s.screens[len(s.screens)-1]
}

func (s *stack) depth() int {
	return len(s.screens)
}

// update routes navigation messages, forwarding everything else to the
// active screen.
func (s *stack) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pushMsg:
		return s.push(msg.Screen)
	case popMsg:
		s.pop()
		return nil
	case replaceMsg:
		return s.replace(msg.Screen)
	}

	updated, cmd := s.active().Update(msg)
	s.screens[len(s.screens)-1] = updated
	return cmd
}
