package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/browser"
	"github.com/matheuskafuri/articles/internal/table"
)

type mode int

const (
	modeNormal mode = iota
	modeFilter
	modeHelp
)

// Screen rows above the table body: title, filter, column header, rule.
const (
	columnHeaderLine = 2
	bodyTop          = 4
	statusHeight     = 1
)

type App struct {
	collection article.Collection
	state      table.State
	rows       []article.Article // derived from collection and state
	cursor     int
	offset     int
	column     int // header cursor, index into article.Columns()
	mode       mode

	width  int
	height int

	filterInput textinput.Model
	showPreview bool

	logger *slog.Logger
	open   func(url string) error
	err    error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Collection article.Collection
	State      table.State
	Logger     *slog.Logger
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Filter articles..."
	ti.Prompt = filterPromptStyle.Render("/ ")
	ti.CharLimit = 200
	ti.SetValue(opts.State.FilterText)

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{
		collection:  opts.Collection,
		state:       opts.State,
		filterInput: ti,
		showPreview: true,
		logger:      logger,
		open:        browser.Open,
	}
	a.column = columnIndex(a.state.SortColumn)
	a.derive()
	return a
}

// State returns the current view state.
func (a *App) State() table.State {
	return a.state
}

// Rows returns the rows currently displayed, in display order.
func (a *App) Rows() []article.Article {
	return a.rows
}

func columnIndex(f article.Field) int {
	for i, c := range article.Columns() {
		if c == f {
			return i
		}
	}
	return 0
}

// derive recomputes the visible rows after a filter or sort change.
func (a *App) derive() {
	a.rows = table.Derive(a.collection, a.state)
	if a.cursor >= len(a.rows) {
		a.cursor = max(0, len(a.rows)-1)
	}
	a.scroll()
}

func (a *App) bodyHeight() int {
	h := a.height - bodyTop - statusHeight
	if a.showPreview {
		h -= previewHeight
	}
	return max(1, h)
}

// scroll keeps the cursor inside the visible window.
func (a *App) scroll() {
	h := a.bodyHeight()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+h {
		a.offset = a.cursor - h + 1
	}
	if maxOffset := max(0, len(a.rows)-h); a.offset > maxOffset {
		a.offset = maxOffset
	}
}

func (a *App) setState(next table.State) {
	sortChanged := next.SortColumn != a.state.SortColumn || next.SortDirection != a.state.SortDirection
	filterChanged := next.FilterText != a.state.FilterText
	a.state = next
	if sortChanged || filterChanged {
		a.derive()
	}
}

func (a *App) requestSort(column int) {
	cols := article.Columns()
	if column < 0 || column >= len(cols) {
		return
	}
	a.column = column
	a.setState(a.state.RequestSort(cols[column]))
	a.logger.Debug("sort changed", "column", a.state.SortColumn.String(), "direction", a.state.SortDirection.String())
}

func (a *App) toggleCurrent() {
	if a.cursor < len(a.rows) {
		a.setState(a.state.ToggleOne(a.rows[a.cursor].URL))
	}
}

func (a *App) toggleAll() {
	a.setState(a.state.ToggleAll(a.rows))
	a.logger.Debug("toggle all", "selected", a.state.Selected.Len(), "visible", len(a.rows))
}

func (a *App) openBrowserCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{url: url, err: err}
		}
		return nil
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.scroll()
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case openErrMsg:
		a.err = msg.err
		a.logger.Warn("opening article failed", "url", msg.url, "error", msg.err)
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeNormal
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.rows)-1 {
			a.cursor++
			a.scroll()
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
			a.scroll()
		}
	case "g", "home":
		a.cursor = 0
		a.scroll()
	case "G", "end":
		a.cursor = max(0, len(a.rows)-1)
		a.scroll()
	case "h", "left":
		if a.column > 0 {
			a.column--
		}
	case "l", "right":
		if a.column < len(article.Columns())-1 {
			a.column++
		}
	case "s":
		a.requestSort(a.column)
	case "1", "2", "3", "4", "5":
		a.requestSort(int(msg.String()[0] - '1'))
	case " ", "x":
		a.toggleCurrent()
	case "a":
		a.toggleAll()
	case "o", "enter":
		if a.cursor < len(a.rows) {
			return a, a.openBrowserCmd(a.rows[a.cursor].URL)
		}
	case "/":
		a.mode = modeFilter
		return a, a.filterInput.Focus()
	case "esc":
		if a.state.FilterText != "" {
			a.filterInput.SetValue("")
			a.setState(a.state.WithFilter(""))
		}
	case "p":
		a.showPreview = !a.showPreview
		a.scroll()
	case "?":
		a.mode = modeHelp
	}
	return a, nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.filterInput.SetValue("")
		a.filterInput.Blur()
		a.setState(a.state.WithFilter(""))
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.filterInput.Blur()
		a.logger.Debug("filter applied", "text", a.state.FilterText, "rows", len(a.rows))
		return a, nil
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	// Re-derive on every value change so rows track the text as typed.
	if v := a.filterInput.Value(); v != a.state.FilterText {
		a.setState(a.state.WithFilter(v))
	}
	return a, cmd
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return a, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		if a.cursor < len(a.rows)-1 {
			a.cursor++
			a.scroll()
		}
		return a, nil
	case tea.MouseButtonWheelUp:
		if a.cursor > 0 {
			a.cursor--
			a.scroll()
		}
		return a, nil
	case tea.MouseButtonLeft:
	default:
		return a, nil
	}
	if a.mode != modeNormal || a.width == 0 {
		return a, nil
	}

	col, ok := newLayout(a.width).columnAt(msg.X)
	if !ok {
		return a, nil
	}

	if msg.Y == columnHeaderLine {
		if col == -1 {
			a.toggleAll()
		} else {
			a.requestSort(col)
		}
		return a, nil
	}

	row := a.offset + msg.Y - bodyTop
	if msg.Y < bodyTop || msg.Y >= bodyTop+a.bodyHeight() || row >= len(a.rows) {
		return a, nil
	}
	a.cursor = row
	a.scroll()
	if col == -1 {
		a.toggleCurrent()
		return a, nil
	}
	if article.Columns()[col] == article.Title {
		return a, a.openBrowserCmd(a.rows[row].URL)
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  articles")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	l := newLayout(a.width)

	// Header
	headerLeft := headerStyle.Render("articles")
	headerRight := headerSortStyle.Render(fmt.Sprintf("sorted by %s %s ", a.state.SortColumn.Label(), sortMarker(a.state, a.state.SortColumn)))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerRight, headerGap = "", 0
	}
	header := headerLeft + strings.Repeat(" ", headerGap) + headerRight

	// Filter line
	var filter string
	switch {
	case a.mode == modeFilter:
		filter = a.filterInput.View()
	case a.state.FilterText != "":
		filter = filterPromptStyle.Render("/ ") + filterTextStyle.Render(a.state.FilterText)
	default:
		filter = filterPromptStyle.Render("/ ") + filterPlaceholderStyle.Render("Filter articles...")
	}

	parts := []string{
		header,
		filter,
		renderColumnHeader(l, a.state, a.state.AllSelected(a.rows), a.column),
		renderRule(l),
		renderRows(l, a.rows, a.state, a.cursor, a.offset, a.bodyHeight()),
	}

	if a.showPreview {
		var current *article.Article
		if a.cursor < len(a.rows) {
			current = &a.rows[a.cursor]
		}
		parts = append(parts, renderPreview(current, a.width))
	}

	if a.err != nil {
		parts = append(parts, renderErrorBar(a.err, a.width))
	} else {
		parts = append(parts, renderStatusBar(len(a.rows), a.collection.Len(), a.state, a.width, a.mode == modeFilter))
	}

	// Mouse hit-testing assumes the frame never scrolls the screen.
	return lipgloss.NewStyle().
		MaxWidth(a.width).
		MaxHeight(a.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("articles")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Rows") + "\n" +
		"  j/k, ↑/↓      Move between rows\n" +
		"  g/G           First / last row\n" +
		"  space, x      Select row\n" +
		"  a             Select all shown rows (again to clear)\n" +
		"  o, enter      Open article in browser\n\n" +
		dim.Render("Columns") + "\n" +
		"  h/l, ←/→      Move between columns\n" +
		"  s             Sort by column (again to reverse)\n" +
		"  1-5           Sort by column number\n\n" +
		dim.Render("Filter") + "\n" +
		"  /             Edit filter\n" +
		"  enter         Keep filter\n" +
		"  esc           Clear filter\n\n" +
		dim.Render("General") + "\n" +
		"  p             Toggle preview\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI and returns the view state at exit.
func Run(opts RunOpts) (table.State, error) {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return app.State(), err
	}
	if m, ok := final.(*App); ok {
		return m.State(), nil
	}
	return app.State(), nil
}
