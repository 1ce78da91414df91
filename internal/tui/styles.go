package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorLink      = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	colorCursorBg  = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerSortStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	filterPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	filterTextStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	filterPlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	columnHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	columnHeaderActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary).
				Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	sourceCellStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	linkCellStyle = lipgloss.NewStyle().
			Foreground(colorLink).
			Underline(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	cursorRowStyle = lipgloss.NewStyle().
			Background(colorCursorBg)

	cursorMarkStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				PaddingLeft(1).
				PaddingRight(1)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	previewSourceStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	previewBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	previewLinkStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
