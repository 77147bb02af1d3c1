package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen is a minimal screen for stack tests.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string             { return s.title }
func (s *stubScreen) Title() string                    { return s.title }
func (s *stubScreen) KeyHints() []keyHint              { return nil }

func TestStackPush(t *testing.T) {
	s := newStack(&stubScreen{title: "menu"})

	quiz := &stubScreen{title: "quiz"}
	s.push(quiz)

	if s.depth() != 2 {
		t.Errorf("depth = %d, want 2", s.depth())
	}
	if s.active().Title() != "quiz" {
		t.Errorf("active = %q, want %q", s.active().Title(), "quiz")
	}
	if !quiz.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestStackPop(t *testing.T) {
	s := newStack(&stubScreen{title: "menu"})
	s.push(&stubScreen{title: "quiz"})
	s.pop()

	if s.depth() != 1 {
		t.Errorf("depth = %d, want 1", s.depth())
	}
	if s.active().Title() != "menu" {
		t.Errorf("active = %q, want %q", s.active().Title(), "menu")
	}
}

func TestStackPopNoopAtBottom(t *testing.T) {
	s := newStack(&stubScreen{title: "menu"})
	s.pop()

	if s.depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", s.depth())
	}
}

func TestStackReplaceKeepsDepth(t *testing.T) {
	s := newStack(&stubScreen{title: "menu"})
	s.push(&stubScreen{title: "summary"})

	retake := &stubScreen{title: "quiz"}
	s.update(replaceMsg{Screen: retake})

	if s.depth() != 2 {
		t.Errorf("depth = %d, want 2", s.depth())
	}
	if s.active().Title() != "quiz" {
		t.Errorf("active = %q, want %q", s.active().Title(), "quiz")
	}
	if !retake.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}
