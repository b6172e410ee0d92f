package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termcrack/termcrack/internal/dict"
	"github.com/termcrack/termcrack/internal/solver"
)

// solverDoneMsg reports a finished solver run back to the app.
type solverDoneMsg struct {
	outcome  string
	attempts int
	wordLen  int
}

// SolverModel is the interactive narrowing view: one row per candidate with
// an editable match-count box, plus a Back row. Counts recompute the
// filtered set live as they are typed.
type SolverModel struct {
	session *solver.Session

	rows      []string // candidate words, fixed display order
	buffers   []string // typed match counts, "" when unset
	filtered  []string // candidates surviving every non-empty count
	cursorIdx int      // len(rows) is the Back row

	// A fresh keystroke on a row that already holds a count starts that
	// count over instead of appending.
	overwrite bool
}

// NewSolver wraps a validated session for interactive use.
func NewSolver(session *solver.Session) SolverModel {
	rows := session.Remaining()
	m := SolverModel{
		session: session,
		rows:    rows,
		buffers: make([]string, len(rows)),
	}
	m.recompute()
	return m
}

// NewSolverFromFile loads a candidate file, validates it against the
// dictionary of the matching word length and applies any pre-supplied
// guesses.
func NewSolverFromFile(path, dictDir string, known []solver.Guess) (SolverModel, error) {
	words, err := solver.LoadCandidates(path)
	if err != nil {
		return SolverModel{}, err
	}

	wordLen, err := solver.RequiredLength(words)
	if err != nil {
		return SolverModel{}, err
	}

	chunk, err := dict.Load(dictDir, wordLen)
	if err != nil {
		return SolverModel{}, fmt.Errorf("loading %d-char dictionary: %w", wordLen, err)
	}

	session, err := solver.NewSession(words, chunk, known)
	if err != nil {
		return SolverModel{}, err
	}
	return NewSolver(session), nil
}

// WordLen returns the length of the candidate words.
func (m SolverModel) WordLen() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

func (m SolverModel) Init() tea.Cmd { return nil }

// recompute rebuilds the filtered set by chaining every row with a typed
// count over the original order.
func (m *SolverModel) recompute() {
	filtered := m.rows
	for i, buf := range m.buffers {
		if buf == "" {
			continue
		}
		count, err := strconv.Atoi(buf)
		if err != nil {
			continue
		}
		filtered = solver.Filter(solver.Guess{Word: m.rows[i], CharCount: count}, filtered)
	}
	m.filtered = filtered
}

func (m SolverModel) attemptsUsed() int {
	used := 0
	for _, buf := range m.buffers {
		if buf != "" {
			used++
		}
	}
	return used
}

func (m SolverModel) done() tea.Cmd {
	outcome := "abandoned"
	if len(m.filtered) <= 1 {
		outcome = "solved"
	}
	return func() tea.Msg {
		return solverDoneMsg{outcome: outcome, attempts: m.attemptsUsed(), wordLen: m.WordLen()}
	}
}

// Update handles navigation, digit entry and backspace on the active row.
func (m SolverModel) Update(msg tea.Msg) (SolverModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, m.done()

	case "up", "w":
		if m.cursorIdx > 0 {
			m.cursorIdx--
			m.overwrite = true
		}

	case "down", "s":
		if m.cursorIdx < len(m.rows) {
			m.cursorIdx++
			m.overwrite = true
		}

	case "enter":
		if m.cursorIdx == len(m.rows) {
			return m, m.done()
		}
		m.cursorIdx++
		m.overwrite = true

	case "backspace":
		if m.cursorIdx < len(m.rows) {
			buf := m.buffers[m.cursorIdx]
			if buf != "" {
				m.buffers[m.cursorIdx] = buf[:len(buf)-1]
				m.overwrite = false
				m.recompute()
			}
		}

	default:
		s := keyMsg.String()
		if m.cursorIdx < len(m.rows) && len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			if m.overwrite {
				m.buffers[m.cursorIdx] = ""
				m.overwrite = false
			}
			if len(m.buffers[m.cursorIdx]) < 2 {
				m.buffers[m.cursorIdx] += s
				m.recompute()
			}
		}
	}

	return m, nil
}

func (m SolverModel) rowFiltered(word string) bool {
	for _, w := range m.filtered {
		if w == word {
			return false
		}
	}
	return true
}

// View lists every candidate with its typed count, dimming the ones the
// counts have ruled out.
func (m SolverModel) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("PASSWORD SOLVER"))
	b.WriteString("\n\n")

	for i, word := range m.rows {
		wordStyle := SolverWordStyle
		if m.rowFiltered(word) {
			wordStyle = SolverFilteredStyle
		}

		count := m.buffers[i]
		if count == "" {
			count = " "
		}
		countCell := SolverCountStyle.Render(count)

		prefix := "  "
		if i == m.cursorIdx {
			prefix = SolverCursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", prefix, wordStyle.Render(word), countCell))
	}

	prefix := "  "
	if m.cursorIdx == len(m.rows) {
		prefix = SolverCursorStyle.Render("> ")
	}
	b.WriteString(fmt.Sprintf("\n%sBack\n\n", prefix))

	b.WriteString(fmt.Sprintf("%d candidate(s) remain\n", len(m.filtered)))
	b.WriteString(HelpStyle.Render("↑/↓ move · 0-9 set count · backspace clear · enter/esc back"))
	return b.String()
}
