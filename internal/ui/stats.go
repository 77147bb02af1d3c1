package ui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

// statsScreen lists stored results per category.
type statsScreen struct {
	deps    Deps
	records map[string]models.StatsRecord
	errMsg  string
	loaded  bool
}

var _ Screen = (*statsScreen)(nil)

func newStatsScreen(deps Deps) *statsScreen {
	return &statsScreen{deps: deps}
}

type statsLoadedMsg struct {
	Records map[string]models.StatsRecord
	Err     error
}

func (s *statsScreen) Init() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		records, err := deps.Stats.All(context.Background())
		return statsLoadedMsg{Records: records, Err: err}
	}
}

func (s *statsScreen) Title() string {
	return "Statistics"
}

func (s *statsScreen) KeyHints() []keyHint {
	return nil
}

func (s *statsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		s.loaded = true
		s.records = msg.Records
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
	}
	return s, nil
}

func (s *statsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return "\n" + styleIncorrect.Render("  Could not load statistics: "+s.errMsg)
	}
	if !s.loaded {
		return "\n" + styleDim.Render("  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("  %-28s %9s %6s %6s %8s", "Category", "Attempts", "Best", "Last", "Passed")))
	b.WriteString("\n\n")

	shown := 0
	for _, category := range s.deps.Bank.Categories() {
		record, ok := s.records[category.ID]
		if !ok {
			continue
		}
		shown++
		line := fmt.Sprintf("  %-28s %9d %5d%% %5d%% %8d",
			category.Name, record.Attempts, record.HighScore, record.LastScore, record.TimesPassed)
		b.WriteString(styleBody.Render(line))
		b.WriteString("\n")
	}

	if shown == 0 {
		b.WriteString(styleDim.Render("  No tests taken yet."))
		b.WriteString("\n")
	}

	return b.String()
}
