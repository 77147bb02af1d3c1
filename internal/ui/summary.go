package ui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/services"
)

// summaryScreen shows the score of a finished test and offers the review
// and retake paths.
type summaryScreen struct {
	deps    Deps
	session *models.Session
	result  *models.ScoreResult
	errMsg  string
}

var _ Screen = (*summaryScreen)(nil)

func newSummaryScreen(deps Deps, session *models.Session, result *models.ScoreResult) *summaryScreen {
	return &summaryScreen{deps: deps, session: session, result: result}
}

func (s *summaryScreen) Init() tea.Cmd {
	return nil
}

func (s *summaryScreen) Title() string {
	return "Results"
}

func (s *summaryScreen) KeyHints() []keyHint {
	return []keyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "T", Description: "Retake"},
	}
}

type reviewOpenedMsg struct {
	Review *services.Review
	Err    error
}

func (s *summaryScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewOpenedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return pushMsg{Screen: newReviewScreen(s.deps, msg.Review)}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			deps := s.deps
			session := s.session
			return s, func() tea.Msg {
				review, err := deps.Reviews.Open(context.Background(), session)
				return reviewOpenedMsg{Review: review, Err: err}
			}
		case "t", "T":
			// Replace instead of push so Esc from the new test still
			// lands on the menu.
			return s, func() tea.Msg {
				return replaceMsg{Screen: newQuizScreen(s.deps, s.session.CategoryID, s.session.StudyMode)}
			}
		case "enter":
			return s, func() tea.Msg { return popMsg{} }
		}
	}

	return s, nil
}

func (s *summaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.result.Passed {
		b.WriteString(styleCorrect.Render("  PASSED"))
	} else {
		b.WriteString(styleIncorrect.Render("  NOT PASSED"))
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("   %d%% needed to pass", models.PassThreshold)))
	b.WriteString("\n\n")

	b.WriteString(styleTitle.Render(fmt.Sprintf("  %d%%", s.result.Percentage)))
	b.WriteString("\n\n")

	b.WriteString(styleBody.Render(fmt.Sprintf("  %s %s",
		s.deps.Bank.DisplayName(s.session.CategoryID),
		styleDim.Render(fmt.Sprintf("· %d correct · %d incorrect",
			s.result.CorrectCount, s.result.IncorrectCount)))))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styleIncorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}
