package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/articles/internal/article"
)

// previewHeight is the preview pane's full height including its border.
const previewHeight = 7

// renderPreview shows the untruncated fields of the row under the cursor.
func renderPreview(a *article.Article, width int) string {
	inner := width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}
	contentLines := previewHeight - 2

	var lines []string
	if a == nil {
		lines = []string{emptyStyle.Render("Nothing to preview")}
	} else {
		lines = append(lines,
			previewTitleStyle.Render(fit(a.Title, inner)),
			previewSourceStyle.Render(fit(fmt.Sprintf("%s · %s · relevance %s",
				a.ContentSource, a.Date, article.FormatRating(a.RelevanceRating)), inner)),
		)
		body := strings.Split(wrapText(a.Summary, inner), "\n")
		for _, l := range body {
			lines = append(lines, previewBodyStyle.Render(l))
		}
		if len(lines) > contentLines-1 {
			lines = lines[:contentLines-1]
		}
		lines = append(lines, previewLinkStyle.Render(fit(a.URL, inner)))
	}
	for len(lines) < contentLines {
		lines = append(lines, "")
	}

	return previewPaneStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
