package tui

import (
	"strings"

	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/table"
	"github.com/mattn/go-runewidth"
)

const (
	gutterWidth   = 2 // cursor mark
	checkboxWidth = 3 // "[x]"
	cellGap       = 1
	minSummary    = 12
	minTitle      = 12
	minSource     = 10
)

// preferredWidths are the starting column widths. Summary takes the rest.
var preferredWidths = map[article.Field]int{
	article.ContentSource:   26,
	article.Title:           34,
	article.RelevanceRating: 11,
	article.Date:            10,
}

// layout holds the display width of every column for one terminal width.
type layout struct {
	columns []article.Field
	widths  []int
}

// shrinkOrder is the order columns give up space when the terminal is too
// narrow. A zero floor lets the column disappear.
var shrinkOrder = []struct {
	field article.Field
	floor int
}{
	{article.Title, minTitle},
	{article.ContentSource, minSource},
	{article.Summary, 0},
	{article.RelevanceRating, 0},
	{article.Date, 0},
	{article.ContentSource, 0},
	{article.Title, 0},
}

// minVisible is the narrowest a column may get before it is dropped.
const minVisible = 3

func newLayout(total int) layout {
	cols := article.Columns()
	avail := total - gutterWidth - checkboxWidth

	w := make(map[article.Field]int, len(cols))
	fixed := 0
	for f, n := range preferredWidths {
		w[f] = n
		fixed += n
	}
	w[article.Summary] = max(minSummary, avail-fixed-cellGap*len(cols))

	l := layout{columns: cols, widths: make([]int, len(cols))}
	for _, step := range shrinkOrder {
		over := l.fill(w) - avail
		if over <= 0 {
			break
		}
		w[step.field] -= min(over, max(0, w[step.field]-step.floor))
		if step.floor == 0 && w[step.field] < minVisible {
			w[step.field] = 0
		}
	}
	l.fill(w)
	return l
}

// fill copies w into the layout and returns the cells the columns use.
// A column of width zero is hidden and takes no gap.
func (l layout) fill(w map[article.Field]int) int {
	used := 0
	for i, f := range l.columns {
		l.widths[i] = w[f]
		if w[f] > 0 {
			used += cellGap + w[f]
		}
	}
	return used
}

// width is the full line width of the table.
func (l layout) width() int {
	total := gutterWidth + checkboxWidth
	for _, w := range l.widths {
		if w > 0 {
			total += cellGap + w
		}
	}
	return total
}

// columnAt maps a screen x coordinate to a column index. -1 is the
// checkbox column; ok is false for the gutter and gaps past the table.
func (l layout) columnAt(x int) (int, bool) {
	start := gutterWidth
	if x >= start && x < start+checkboxWidth {
		return -1, true
	}
	start += checkboxWidth + cellGap
	for i, w := range l.widths {
		if w == 0 {
			continue
		}
		if x >= start && x < start+w {
			return i, true
		}
		start += w + cellGap
	}
	return 0, false
}

// fit pads or truncates s to exactly w display cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

func checkbox(checked bool) string {
	if checked {
		return checkedStyle.Render("[x]")
	}
	return "[ ]"
}

func sortMarker(state table.State, f article.Field) string {
	if state.SortColumn != f {
		return "↕"
	}
	if state.SortDirection == table.Ascending {
		return "↑"
	}
	return "↓"
}

func renderColumnHeader(l layout, state table.State, allSelected bool, cursor int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	b.WriteString(checkbox(allSelected))
	for i, f := range l.columns {
		if l.widths[i] == 0 {
			continue
		}
		b.WriteString(strings.Repeat(" ", cellGap))
		label := fit(f.Label()+" "+sortMarker(state, f), l.widths[i])
		if i == cursor {
			b.WriteString(columnHeaderActiveStyle.Render(label))
		} else {
			b.WriteString(columnHeaderStyle.Render(label))
		}
	}
	return b.String()
}

func renderRule(l layout) string {
	return ruleStyle.Render(strings.Repeat("─", l.width()))
}

func renderRow(l layout, a article.Article, selected, isCursor bool) string {
	var b strings.Builder
	if isCursor {
		b.WriteString(cursorMarkStyle.Render(">"))
		b.WriteString(strings.Repeat(" ", gutterWidth-1))
	} else {
		b.WriteString(strings.Repeat(" ", gutterWidth))
	}
	b.WriteString(checkbox(selected))
	for i, f := range l.columns {
		if l.widths[i] == 0 {
			continue
		}
		b.WriteString(strings.Repeat(" ", cellGap))
		text := fit(f.Text(a), l.widths[i])
		switch f {
		case article.Title:
			b.WriteString(linkCellStyle.Render(text))
		case article.ContentSource:
			b.WriteString(sourceCellStyle.Render(text))
		default:
			b.WriteString(cellStyle.Render(text))
		}
	}
	if isCursor {
		return cursorRowStyle.Render(b.String())
	}
	return b.String()
}

// renderRows draws rows[offset:offset+height], padded to height lines.
func renderRows(l layout, rows []article.Article, state table.State, cursor, offset, height int) string {
	if len(rows) == 0 {
		lines := make([]string, height)
		if height > 0 {
			lines[0] = strings.Repeat(" ", gutterWidth+checkboxWidth+cellGap) + emptyStyle.Render("No articles match")
		}
		return strings.Join(lines, "\n")
	}

	lines := make([]string, 0, height)
	for i := offset; i < len(rows) && len(lines) < height; i++ {
		lines = append(lines, renderRow(l, rows[i], state.Selected.Contains(rows[i].URL), i == cursor))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
