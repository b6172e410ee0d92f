package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/termcrack/termcrack/internal/config"
	"github.com/termcrack/termcrack/internal/cursor"
	"github.com/termcrack/termcrack/internal/dict"
	"github.com/termcrack/termcrack/internal/puzzle"
	"github.com/termcrack/termcrack/internal/rng"
	"github.com/termcrack/termcrack/internal/strutil"
)

// Board geometry: two panes of 12x16 character cells.
const (
	paneWidth  = 12
	paneHeight = 16
	paneCount  = 2
)

// gameGrid is the fixed board every game is played on.
var gameGrid = cursor.Grid{Width: paneWidth, Height: paneHeight, Panes: paneCount}

// The dump's base address is randomized for flair.
const (
	minBaseAddr = 0xCC00
	maxBaseAddr = 0xFFFF - paneWidth*paneHeight*paneCount
)

const (
	gutterPad    = 4  // spacing between an address gutter and its cells
	panePad      = 4  // spacing between the two panes
	historyWidth = 20 // right-hand selection history column
)

// framePeriod paces the render loop at roughly 30 Hz.
const framePeriod = 33 * time.Millisecond

// gameTickMsg drives the frame cadence and the game-over hold timer.
type gameTickMsg time.Time

func gameTick() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg { return gameTickMsg(t) })
}

// gameDoneMsg reports a finished game back to the app.
type gameDoneMsg struct {
	outcome  string
	attempts int
}

type deniedEntry struct {
	word  string
	match int
}

type gameKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit}
}

func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Quit}}
}

var gameKeys = gameKeyMap{
	Up:     key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
	Down:   key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
	Left:   key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
	Right:  key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
}

// GameModel runs one cracking session on the board.
type GameModel struct {
	difficulty puzzle.Difficulty

	words   []string
	offsets []int
	goal    string
	dump    string

	baseAddr int
	sel      cursor.Selection

	denied   []deniedEntry
	accepted string

	maxAttempts int
	holdFor     time.Duration
	overAt      time.Time // zero until the game ends
	quit        bool      // player bailed out early

	help help.Model
}

// NewGame generates a fresh puzzle at the given difficulty and places the
// cursor on the first cell, refit in case that cell already sits inside a
// word.
func NewGame(difficulty puzzle.Difficulty, chunk *dict.Chunk, cfg *config.Config, src rng.Source) GameModel {
	words, goal := puzzle.Generate(chunk, difficulty.Tiers(), src)
	puzzle.Shuffle(words, src)

	dump, offsets := puzzle.Obfuscate(words, gameGrid.Size(), src)
	baseAddr := src.Range(minBaseAddr, maxBaseAddr)

	sel := cursor.Refit(cursor.Selection{Len: 1}, words, offsets, gameGrid)

	return GameModel{
		difficulty:  difficulty,
		words:       words,
		offsets:     offsets,
		goal:        goal,
		dump:        dump,
		baseAddr:    baseAddr,
		sel:         sel,
		maxAttempts: cfg.MaxAttempts,
		holdFor:     time.Duration(cfg.GameOverHoldSecs) * time.Second,
		help:        help.New(),
	}
}

// Difficulty returns the difficulty the game was generated at.
func (m GameModel) Difficulty() puzzle.Difficulty { return m.difficulty }

// Init starts the frame ticker.
func (m GameModel) Init() tea.Cmd { return gameTick() }

func (m GameModel) attemptsUsed() int {
	used := len(m.denied)
	if m.accepted != "" {
		used++
	}
	return used
}

func (m GameModel) gameOver() bool {
	return m.accepted != "" || len(m.denied) == m.maxAttempts
}

func (m GameModel) outcome() string {
	switch {
	case m.accepted != "":
		return "won"
	case len(m.denied) == m.maxAttempts:
		return "lost"
	default:
		return "quit"
	}
}

// Update handles one input event or frame tick.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case gameTickMsg:
		// The end screen holds for a fixed beat, then the session closes.
		if m.quit || (!m.overAt.IsZero() && time.Since(m.overAt) >= m.holdFor) {
			return m, func() tea.Msg {
				return gameDoneMsg{outcome: m.outcome(), attempts: m.attemptsUsed()}
			}
		}
		return m, gameTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, gameKeys.Up):
			m.moveAndRefit(cursor.Up)
		case key.Matches(msg, gameKeys.Down):
			m.moveAndRefit(cursor.Down)
		case key.Matches(msg, gameKeys.Left):
			m.moveAndRefit(cursor.Left)
		case key.Matches(msg, gameKeys.Right):
			m.moveAndRefit(cursor.Right)
		case key.Matches(msg, gameKeys.Select):
			m.handleSelect()
		case key.Matches(msg, gameKeys.Quit):
			m.quit = true
		}
		return m, nil
	}

	return m, nil
}

func (m *GameModel) moveAndRefit(dir cursor.Direction) {
	m.sel = cursor.Move(m.sel, dir, gameGrid)
	m.sel = cursor.Refit(m.sel, m.words, m.offsets, gameGrid)
}

func (m *GameModel) handleSelect() {
	if m.gameOver() {
		return
	}

	word, ok := cursor.TrySelect(m.sel, m.words, m.offsets, gameGrid)
	if ok {
		if word == m.goal {
			m.accepted = word
		} else {
			m.denied = append(m.denied, deniedEntry{
				word:  word,
				match: strutil.MatchingCharCount(m.goal, word),
			})
		}
	}

	if m.gameOver() {
		m.overAt = time.Now()
	}
}

// View renders the header, both dump panes and the selection history.
func (m GameModel) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("ROBCO INDUSTRIES (TM) TERMALINK PROTOCOL"))
	b.WriteByte('\n')
	b.WriteString(HeaderStyle.Render("ENTER PASSWORD NOW"))
	b.WriteString("\n\n")
	b.WriteString(m.renderAttempts())
	b.WriteString("\n\n")

	panes := m.renderPanes()
	history := m.renderHistory()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, panes, strings.Repeat(" ", panePad), history))

	b.WriteByte('\n')
	b.WriteString(HelpStyle.Render(m.help.ShortHelpView(gameKeys.ShortHelp())))
	return b.String()
}

func (m GameModel) renderAttempts() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("# ATTEMPT(S) LEFT:"))
	for i := 0; i < m.maxAttempts-m.attemptsUsed(); i++ {
		b.WriteString(" " + SelectedStyle.Render(" "))
	}
	return b.String()
}

func (m GameModel) renderPanes() string {
	selStart := m.sel.Address(gameGrid)
	selEnd := selStart + m.sel.Len

	rows := make([]string, 0, paneHeight)
	for row := 0; row < paneHeight; row++ {
		var b strings.Builder
		for pane := 0; pane < paneCount; pane++ {
			if pane > 0 {
				b.WriteString(strings.Repeat(" ", panePad))
			}

			first := pane*gameGrid.PaneSize() + row*paneWidth
			b.WriteString(GutterStyle.Render(fmt.Sprintf("0x%04X", m.baseAddr+first)))
			b.WriteString(strings.Repeat(" ", gutterPad))

			for col := 0; col < paneWidth; col++ {
				addr := first + col
				cell := m.dump[addr : addr+1]
				if addr >= selStart && addr < selEnd {
					b.WriteString(SelectedStyle.Render(cell))
				} else {
					b.WriteString(DumpStyle.Render(cell))
				}
			}
		}
		rows = append(rows, b.String())
	}

	return strings.Join(rows, "\n")
}

// renderHistory builds the right-hand column: every denied selection in
// order, with the win or lockout banner at the bottom once the game ends.
func (m GameModel) renderHistory() string {
	var lines []string
	entry := func(style lipgloss.Style, text string) {
		lines = append(lines, style.Render(truncateTo(">"+text, historyWidth)))
	}

	for _, d := range m.denied {
		entry(HistoryStyle, "Entry denied")
		entry(HistoryStyle, fmt.Sprintf("%d/%d correct.", d.match, len(d.word)))
		entry(HistoryStyle, d.word)
	}

	if m.accepted != "" {
		for _, text := range []string{m.accepted, "Exact match!", "Please wait", "while system", "is accessed."} {
			entry(StatusStyle, text)
		}
	} else if len(m.denied) == m.maxAttempts {
		for _, text := range []string{"TOO MANY ATTEMPTS!", "Entering secure", "lock mode"} {
			entry(StatusStyle, text)
		}
	}

	// Keep only what fits, newest at the bottom.
	if len(lines) > paneHeight {
		lines = lines[len(lines)-paneHeight:]
	}
	return strings.Join(lines, "\n")
}

// truncateTo clips s to at most width display cells.
func truncateTo(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
