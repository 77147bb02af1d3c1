package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/services"
)

// autoAdvanceDelay is how long an answer's feedback stays on screen before
// the test moves on by itself outside study mode.
const autoAdvanceDelay = 1500 * time.Millisecond

var choiceKeys = []string{"a", "b", "c", "d"}

// quizScreen runs one test session from first question to scoring.
type quizScreen struct {
	deps       Deps
	categoryID string
	studyMode  bool

	session *models.Session
	errMsg  string

	confirmQuit   bool
	confirmFinish bool

	// advanceSeq invalidates auto-advance timers: any manual navigation
	// bumps it, so a timer armed for an earlier question does nothing.
	advanceSeq int
}

var _ Screen = (*quizScreen)(nil)

func newQuizScreen(deps Deps, categoryID string, studyMode bool) *quizScreen {
	return &quizScreen{deps: deps, categoryID: categoryID, studyMode: studyMode}
}

// handlesEsc keeps the root model from popping a running test; Esc opens
// the quit confirmation instead.
func (q *quizScreen) handlesEsc() {}

type sessionStartedMsg struct {
	Session *models.Session
	Err     error
}

type autoAdvanceMsg struct {
	Seq int
}

type finishedMsg struct {
	Result *models.ScoreResult
	Err    error
}

func (q *quizScreen) Init() tea.Cmd {
	deps := q.deps
	categoryID := q.categoryID
	studyMode := q.studyMode
	return func() tea.Msg {
		session, err := deps.Sessions.Start(context.Background(), &services.StartSessionRequest{
			CategoryID: categoryID,
			StudyMode:  studyMode,
		})
		return sessionStartedMsg{Session: session, Err: err}
	}
}

func (q *quizScreen) Title() string {
	if q.session == nil {
		return "Loading"
	}
	return q.deps.Bank.DisplayName(q.session.CategoryID)
}

func (q *quizScreen) Status() string {
	if q.session == nil {
		return ""
	}
	status := q.session.Progress()
	if q.studyMode {
		status += "  study"
	}
	return status
}

func (q *quizScreen) KeyHints() []keyHint {
	switch {
	case q.confirmQuit, q.confirmFinish:
		return []keyHint{
			{Key: "Y", Description: "Yes"},
			{Key: "N", Description: "No"},
		}
	default:
		return []keyHint{
			{Key: "1-4/A-D", Description: "Answer"},
			{Key: "←→", Description: "Navigate"},
			{Key: "F", Description: "Finish"},
			{Key: "Esc", Description: "Quit test"},
		}
	}
}

func (q *quizScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.session = msg.Session
		return q, nil

	case autoAdvanceMsg:
		return q.handleAutoAdvance(msg)

	case finishedMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		return q, func() tea.Msg {
			return replaceMsg{Screen: newSummaryScreen(q.deps, q.session, msg.Result)}
		}

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *quizScreen) handleKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		return q, func() tea.Msg { return popMsg{} }
	}
	if q.session == nil {
		return q, nil
	}

	if q.confirmQuit {
		switch key {
		case "y", "Y":
			return q, func() tea.Msg { return popMsg{} }
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return q, nil
	}

	if q.confirmFinish {
		switch key {
		case "y", "Y":
			return q, q.finishCmd()
		case "n", "N", "esc":
			q.confirmFinish = false
		}
		return q, nil
	}

	switch key {
	case "esc":
		q.confirmQuit = true
		return q, nil

	case "left", "p":
		q.advanceSeq++
		q.deps.Sessions.Retreat(q.session)
		return q, nil

	case "right", "n", "enter":
		q.advanceSeq++
		if q.deps.Sessions.IsLastQuestion(q.session) {
			return q, q.requestFinish()
		}
		q.deps.Sessions.Advance(q.session)
		return q, nil

	case "f", "F":
		q.advanceSeq++
		return q, q.requestFinish()
	}

	if choice, ok := choiceForKey(key); ok {
		return q, q.submit(choice)
	}
	return q, nil
}

// choiceForKey maps 1-4 and a-d onto a choice index.
func choiceForKey(key string) (int, bool) {
	key = strings.ToLower(key)
	for i, letter := range choiceKeys {
		if key == letter || key == fmt.Sprintf("%d", i+1) {
			return i, true
		}
	}
	return 0, false
}

func (q *quizScreen) submit(choice int) tea.Cmd {
	if q.session.Answered(q.session.Cursor) {
		return nil
	}
	if err := q.deps.Sessions.SubmitAnswer(context.Background(), q.session, choice); err != nil {
		q.errMsg = err.Error()
		return nil
	}

	if q.studyMode {
		return nil
	}

	q.advanceSeq++
	seq := q.advanceSeq
	return tea.Tick(autoAdvanceDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Seq: seq}
	})
}

func (q *quizScreen) handleAutoAdvance(msg autoAdvanceMsg) (Screen, tea.Cmd) {
	if msg.Seq != q.advanceSeq || q.session == nil || q.confirmQuit || q.confirmFinish {
		return q, nil
	}
	if q.deps.Sessions.IsLastQuestion(q.session) {
		// The timer never skips the unanswered-question confirmation.
		return q, q.requestFinish()
	}
	q.deps.Sessions.Advance(q.session)
	return q, nil
}

// requestFinish scores immediately, or asks first when questions are still
// open.
func (q *quizScreen) requestFinish() tea.Cmd {
	if q.deps.Sessions.CountUnanswered(q.session) > 0 {
		q.confirmFinish = true
		return nil
	}
	return q.finishCmd()
}

func (q *quizScreen) finishCmd() tea.Cmd {
	q.confirmFinish = false
	deps := q.deps
	session := q.session
	return func() tea.Msg {
		result, err := deps.Sessions.Finish(context.Background(), session)
		return finishedMsg{Result: result, Err: err}
	}
}

func (q *quizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return "\n" + styleIncorrect.Render("  "+q.errMsg) + "\n\n" + styleDim.Render("  Press any key to go back.")
	}
	if q.session == nil {
		return "\n" + styleDim.Render("  Loading questions...")
	}
	if q.confirmQuit {
		return renderConfirm(width, "Quit this test?", "Progress will not be scored or saved.")
	}
	if q.confirmFinish {
		unanswered := q.deps.Sessions.CountUnanswered(q.session)
		return renderConfirm(width,
			"Finish now?",
			fmt.Sprintf("%d questions are unanswered and will count as incorrect.", unanswered))
	}
	return q.renderQuestion(width)
}

func (q *quizScreen) renderQuestion(width int) string {
	question := q.session.Current()
	answer := q.session.Answers[q.session.Cursor]
	answered := answer != models.Unanswered

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		Width(width - 4).
		PaddingLeft(2).
		Render(question.Text))
	b.WriteString("\n\n")

	for i, choice := range question.Choices {
		b.WriteString(q.renderChoice(question, i, choice, answer, answered))
	}

	if answered {
		b.WriteString("\n")
		if answer == question.Correct {
			b.WriteString(styleCorrect.Render("  Correct!"))
		} else {
			b.WriteString(styleIncorrect.Render("  Incorrect.") +
				styleBody.Render(fmt.Sprintf(" The answer is %s.", strings.ToUpper(choiceKeys[question.Correct]))))
		}
		b.WriteString("\n")

		if q.studyMode && question.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(colorTextDim).
				Width(width - 4).
				PaddingLeft(2).
				Render(question.Explanation))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (q *quizScreen) renderChoice(question models.Question, index int, choice string, answer int, answered bool) string {
	label := fmt.Sprintf("%s. %s", strings.ToUpper(choiceKeys[index]), choice)

	style := styleBody
	marker := "   "
	if answered {
		switch {
		case index == question.Correct:
			style = styleCorrect
			marker = " ✓ "
		case index == answer:
			style = styleIncorrect
			marker = " ✗ "
		default:
			style = styleDim
		}
	}

	return style.Render(" "+marker+label) + "\n"
}

func renderConfirm(width int, question, detail string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(styleAccent.Render("  " + question))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(colorTextDim).
		Width(width - 4).
		PaddingLeft(2).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(styleBody.Render("  Y / N"))
	return b.String()
}
