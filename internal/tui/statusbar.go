package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/articles/internal/table"
	"github.com/mattn/go-runewidth"
)

func renderStatusBar(shown, total int, state table.State, width int, filtering bool) string {
	left := fmt.Sprintf("%d of %d articles", shown, total)
	if n := state.Selected.Len(); n > 0 {
		left += fmt.Sprintf(" · %d selected", n)
	}
	left += fmt.Sprintf(" · sort %s %s", state.SortColumn, state.SortDirection)

	right := "/ filter  space select  a all  s sort  o open  ? help  q quit"
	if filtering {
		right = "esc clear  enter done"
	}

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the hints before the counts.
		right = ""
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return statusBarStyle.Width(width).Render(runewidth.Truncate(bar, width-2, "…"))
}

func renderErrorBar(err error, width int) string {
	msg := runewidth.Truncate(err.Error(), width-2, "…")
	return statusBarStyle.Width(width).Render(statusErrStyle.Render(msg))
}
