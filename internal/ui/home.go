package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

// homeScreen is the category menu. It lists every category in the catalog
// plus the statistics screen, and carries the study-mode toggle.
type homeScreen struct {
	deps       Deps
	categories []*models.Category
	selected   int
	studyMode  bool
}

var _ Screen = (*homeScreen)(nil)

func newHomeScreen(deps Deps) *homeScreen {
	return &homeScreen{
		deps:       deps,
		categories: deps.Bank.Categories(),
	}
}

func (h *homeScreen) Init() tea.Cmd {
	return nil
}

func (h *homeScreen) Title() string {
	return "Pick a test"
}

func (h *homeScreen) Status() string {
	if h.studyMode {
		return "study mode"
	}
	return ""
}

func (h *homeScreen) KeyHints() []keyHint {
	return []keyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "S", Description: "Study mode"},
		{Key: "T", Description: "Statistics"},
	}
}

// itemCount is the menu length: every category plus the statistics entry.
func (h *homeScreen) itemCount() int {
	return len(h.categories) + 1
}

func (h *homeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < h.itemCount()-1 {
			h.selected++
		}
	case "enter":
		return h, h.open(h.selected)
	case "s", "S":
		h.studyMode = !h.studyMode
	case "t", "T":
		return h, h.open(len(h.categories))
	case "q", "Q":
		return h, tea.Quit
	}

	return h, nil
}

func (h *homeScreen) open(index int) tea.Cmd {
	if index == len(h.categories) {
		return func() tea.Msg {
			return pushMsg{Screen: newStatsScreen(h.deps)}
		}
	}
	category := h.categories[index]
	studyMode := h.studyMode
	return func() tea.Msg {
		return pushMsg{Screen: newQuizScreen(h.deps, category.ID, studyMode)}
	}
}

func (h *homeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styleDim.Render("  Kentucky commercial driver practice tests"))
	b.WriteString("\n\n")

	for i, category := range h.categories {
		label := fmt.Sprintf("%s  %s", category.Name, styleDim.Render(fmt.Sprintf("(%d questions)", len(category.Questions))))
		b.WriteString(h.renderItem(i, label))
	}
	b.WriteString("\n")
	b.WriteString(h.renderItem(len(h.categories), "Statistics"))

	if h.studyMode {
		b.WriteString("\n")
		b.WriteString(styleAccent.Render("  Study mode on: answers are explained and nothing auto-advances."))
		b.WriteString("\n")
	}

	return b.String()
}

func (h *homeScreen) renderItem(index int, label string) string {
	if index == h.selected {
		return styleSelected.Render("  ▸ "+label) + "\n"
	}
	return styleBody.Render("    "+label) + "\n"
}
