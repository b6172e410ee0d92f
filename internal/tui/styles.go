package tui

import "github.com/charmbracelet/lipgloss"

// Color palette, riffing on an old phosphor terminal
var (
	ColorGreen  = lipgloss.Color("#2bd94f") // dump text, headers
	ColorBright = lipgloss.Color("#aaffbb") // highlighted cells
	ColorAmber  = lipgloss.Color("#ffcc66") // accents, menu cursor
	ColorMuted  = lipgloss.Color("#557755") // help text, dimmed rows
	ColorBg     = lipgloss.Color("#101810") // highlight background
	ColorError  = lipgloss.Color("#ff5f5f") // validation failures
)

// Game view styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	GutterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DumpStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBg).
			Background(ColorBright)

	HistoryStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Blink(true).
			Foreground(ColorBright)
)

// Menu styles
var (
	MenuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAmber).
			MarginBottom(1)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	MenuItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAmber).
				Background(ColorBg).
				Padding(0, 1)

	MenuHistoryStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Solver view styles
var (
	SolverWordStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	SolverFilteredStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SolverCountStyle = lipgloss.NewStyle().
				Underline(true).
				Foreground(ColorAmber)

	SolverCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAmber)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
