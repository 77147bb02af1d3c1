package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	minWidth  = 60
	minHeight = 20
)

// keyHint is a key binding shown in the footer.
type keyHint struct {
	Key         string
	Description string
}

func tooSmall(width, height int) bool {
	return width < minWidth || height < minHeight
}

func renderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(colorText).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small\n\nResize to at least %d x %d\nCurrent: %d x %d",
			minWidth, minHeight, width, height,
		))
}

// renderHeader draws the top bar: app name on the left, screen title in the
// middle, a status string (progress, mode) on the right.
func renderHeader(title, status string, width int) string {
	left := styleTitle.Render("  CDL Prep")
	center := styleBody.Render(title)
	right := styleAccent.Render(status)

	innerWidth := width - 4
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-lipgloss.Width(center))/2 - lipgloss.Width(left)
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - lipgloss.Width(left) - leftGap - lipgloss.Width(center) - lipgloss.Width(right)
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return styleBar.Width(width).Render(content)
}

func renderFooter(hints []keyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styleBody.Bold(true).Render(h.Key)+" "+styleDim.Render(h.Description))
	}
	return styleBar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// renderFrame stacks header, content and footer into the full terminal.
func renderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
