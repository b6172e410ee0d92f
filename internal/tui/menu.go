package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termcrack/termcrack/internal/history"
	"github.com/termcrack/termcrack/internal/puzzle"
)

// startGameMsg asks the app to launch a game at the chosen difficulty.
type startGameMsg struct {
	difficulty puzzle.Difficulty
}

// startSolverMsg asks the app to launch the solver on a candidate file.
type startSolverMsg struct {
	path string
}

// quitMsg asks the app to shut down.
type quitMsg struct{}

// MenuModel is the entry screen: one row per difficulty, a solver row that
// expands into a file path prompt, and a quit row. Recent results from the
// history store show underneath.
type MenuModel struct {
	cursorIdx int
	recent    []history.Session
	errMsg    string

	// Solver file prompt, shown when the solver row is activated.
	prompting bool
	pathInput textinput.Model
}

const solverRow = len(puzzle.Difficulties)
const quitRow = solverRow + 1

// NewMenu builds the entry screen, pulling up to five recent sessions from
// the store when one is available.
func NewMenu(store *history.Store) MenuModel {
	input := textinput.New()
	input.Placeholder = "path/to/candidates.txt"
	input.CharLimit = 256

	var recent []history.Session
	if store != nil {
		recent, _ = store.Recent(5)
	}

	return MenuModel{recent: recent, pathInput: input}
}

// SetError surfaces a launch failure on the menu screen.
func (m *MenuModel) SetError(msg string) { m.errMsg = msg }

func (m MenuModel) Init() tea.Cmd { return nil }

// Update handles row navigation and the solver path prompt.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.prompting {
		switch keyMsg.String() {
		case "esc":
			m.prompting = false
			m.pathInput.Blur()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				return m, nil
			}
			m.prompting = false
			m.pathInput.Blur()
			return m, func() tea.Msg { return startSolverMsg{path: path} }
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "up", "w":
		if m.cursorIdx > 0 {
			m.cursorIdx--
		}
	case "down", "s":
		if m.cursorIdx < quitRow {
			m.cursorIdx++
		}
	case "enter":
		m.errMsg = ""
		switch {
		case m.cursorIdx < solverRow:
			d := puzzle.Difficulties[m.cursorIdx]
			return m, func() tea.Msg { return startGameMsg{difficulty: d} }
		case m.cursorIdx == solverRow:
			m.prompting = true
			m.pathInput.Focus()
			return m, textinput.Blink
		default:
			return m, func() tea.Msg { return quitMsg{} }
		}
	case "esc", "q":
		return m, func() tea.Msg { return quitMsg{} }
	}

	return m, nil
}

// View renders the rows, the optional path prompt and the recent sessions.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(MenuTitleStyle.Render("TERMCRACK"))
	b.WriteString("\n\n")

	row := func(idx int, label string) {
		style := MenuItemStyle
		prefix := "  "
		if idx == m.cursorIdx {
			style = MenuItemActiveStyle
			prefix = "> "
		}
		b.WriteString(style.Render(prefix+label) + "\n")
	}

	for i, d := range puzzle.Difficulties {
		row(i, fmt.Sprintf("%s (%d chars)", d, d.WordLen()))
	}
	row(solverRow, "Solver")
	row(quitRow, "Quit")

	if m.prompting {
		b.WriteString("\n" + MenuItemStyle.Render("Candidate file:") + "\n")
		b.WriteString(m.pathInput.View() + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + ErrorStyle.Render(m.errMsg) + "\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("\n" + MenuHistoryStyle.Render("RECENT SESSIONS") + "\n")
		for _, e := range m.recent {
			line := fmt.Sprintf("%s %s %d-char %s (%d attempts)",
				e.PlayedAt.Format("2006-01-02 15:04"), e.Mode, e.WordLen, e.Outcome, e.Attempts)
			if e.Mode == "game" {
				line = fmt.Sprintf("%s %s %s %s (%d attempts)",
					e.PlayedAt.Format("2006-01-02 15:04"), e.Mode, e.Difficulty, e.Outcome, e.Attempts)
			}
			b.WriteString(MenuHistoryStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + HelpStyle.Render("↑/↓ move · enter select · esc quit"))
	return b.String()
}
