package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/services"
)

// reviewScreen walks a finished test question by question, showing what was
// answered against what was right.
type reviewScreen struct {
	deps   Deps
	review *services.Review
}

var _ Screen = (*reviewScreen)(nil)

func newReviewScreen(deps Deps, review *services.Review) *reviewScreen {
	return &reviewScreen{deps: deps, review: review}
}

func (r *reviewScreen) Init() tea.Cmd {
	return nil
}

func (r *reviewScreen) Title() string {
	return "Review"
}

func (r *reviewScreen) Status() string {
	return r.review.Progress()
}

func (r *reviewScreen) KeyHints() []keyHint {
	return []keyHint{
		{Key: "←→", Description: "Navigate"},
	}
}

func (r *reviewScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "p", "k":
		r.review.Retreat()
	case "right", "n", "j", "enter":
		if r.review.IsLast() {
			return r, func() tea.Msg { return popMsg{} }
		}
		r.review.Advance()
	}

	return r, nil
}

func (r *reviewScreen) View(width, height int) string {
	entry := r.review.Current()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		Width(width - 4).
		PaddingLeft(2).
		Render(entry.Text))
	b.WriteString("\n\n")

	for i, choice := range entry.Choices {
		b.WriteString(renderReviewChoice(entry, i, choice))
	}

	b.WriteString("\n")
	switch {
	case !entry.Answered:
		b.WriteString(styleDim.Render("  Not answered."))
	case entry.Correct:
		b.WriteString(styleCorrect.Render("  You got this one right."))
	default:
		b.WriteString(styleIncorrect.Render(
			fmt.Sprintf("  You answered %s; the answer is %s.",
				strings.ToUpper(choiceKeys[entry.Answer]),
				strings.ToUpper(choiceKeys[entry.CorrectIndex]))))
	}
	b.WriteString("\n")

	if entry.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(colorTextDim).
			Width(width - 4).
			PaddingLeft(2).
			Render(entry.Explanation))
		b.WriteString("\n")
	}

	return b.String()
}

func renderReviewChoice(entry services.ReviewEntry, index int, choice string) string {
	label := fmt.Sprintf("%s. %s", strings.ToUpper(choiceKeys[index]), choice)

	style := styleDim
	marker := "   "
	switch {
	case index == entry.CorrectIndex:
		style = styleCorrect
		marker = " ✓ "
	case entry.Answered && index == entry.Answer:
		style = styleIncorrect
		marker = " ✗ "
	}

	return style.Render(" "+marker+label) + "\n"
}
