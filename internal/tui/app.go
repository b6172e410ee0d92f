// Package tui holds the bubbletea models for the interactive screens: the
// entry menu, the cracking game board and the candidate solver.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/termcrack/termcrack/internal/config"
	"github.com/termcrack/termcrack/internal/dict"
	"github.com/termcrack/termcrack/internal/history"
	"github.com/termcrack/termcrack/internal/puzzle"
	"github.com/termcrack/termcrack/internal/rng"
)

type viewType int

const (
	viewMenu viewType = iota
	viewGame
	viewSolver
)

// AppModel routes messages to the active screen and records finished
// sessions. When launched straight into a game or the solver it exits once
// that session ends instead of falling back to the menu.
type AppModel struct {
	cfg    *config.Config
	store  *history.Store
	logger zerolog.Logger
	src    rng.Source

	view       viewType
	standalone bool

	menu   MenuModel
	game   GameModel
	solver SolverModel
}

// NewApp starts at the menu. store may be nil when the history database is
// unavailable.
func NewApp(cfg *config.Config, store *history.Store, logger zerolog.Logger, src rng.Source) AppModel {
	return AppModel{
		cfg:    cfg,
		store:  store,
		logger: logger,
		src:    src,
		view:   viewMenu,
		menu:   NewMenu(store),
	}
}

// StartedWithGame skips the menu and exits once the game ends.
func (m AppModel) StartedWithGame(difficulty puzzle.Difficulty, chunk *dict.Chunk) AppModel {
	m.view = viewGame
	m.standalone = true
	m.game = NewGame(difficulty, chunk, m.cfg, m.src)
	return m
}

// StartedWithSolver skips the menu and exits once the solver ends.
func (m AppModel) StartedWithSolver(solver SolverModel) AppModel {
	m.view = viewSolver
	m.standalone = true
	m.solver = solver
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.game.Init()
	}
	return nil
}

func (m AppModel) record(sess history.Session) {
	m.logger.Info().
		Str("mode", sess.Mode).
		Str("outcome", sess.Outcome).
		Int("attempts", sess.Attempts).
		Msg("session finished")

	if m.store == nil {
		return
	}
	if err := m.store.Record(sess); err != nil {
		m.logger.Warn().Err(err).Msg("recording session")
	}
}

// backToMenu refreshes the menu's recent-session list, or quits when the
// app was launched straight into a single session.
func (m AppModel) backToMenu() (AppModel, tea.Cmd) {
	if m.standalone {
		return m, tea.Quit
	}
	m.view = viewMenu
	m.menu = NewMenu(m.store)
	return m, nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case quitMsg:
		return m, tea.Quit

	case startGameMsg:
		chunk, err := dict.Load(m.cfg.DictDir, msg.difficulty.WordLen())
		if err != nil {
			m.logger.Error().Err(err).Msg("loading dictionary")
			m.menu.SetError(fmt.Sprintf("cannot start game: %v", err))
			return m, nil
		}
		m.view = viewGame
		m.game = NewGame(msg.difficulty, chunk, m.cfg, m.src)
		return m, m.game.Init()

	case startSolverMsg:
		solver, err := NewSolverFromFile(msg.path, m.cfg.DictDir, nil)
		if err != nil {
			m.logger.Error().Err(err).Msg("loading solver candidates")
			m.menu.SetError(fmt.Sprintf("cannot start solver: %v", err))
			return m, nil
		}
		m.view = viewSolver
		m.solver = solver
		return m, m.solver.Init()

	case gameDoneMsg:
		m.record(history.Session{
			Mode:       "game",
			Difficulty: m.game.Difficulty().String(),
			WordLen:    m.game.Difficulty().WordLen(),
			Outcome:    msg.outcome,
			Attempts:   msg.attempts,
			PlayedAt:   time.Now(),
		})
		return m.backToMenu()

	case solverDoneMsg:
		m.record(history.Session{
			Mode:     "solver",
			WordLen:  msg.wordLen,
			Outcome:  msg.outcome,
			Attempts: msg.attempts,
			PlayedAt: time.Now(),
		})
		return m.backToMenu()
	}

	var cmd tea.Cmd
	switch m.view {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGame:
		m.game, cmd = m.game.Update(msg)
	case viewSolver:
		m.solver, cmd = m.solver.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewSolver:
		return m.solver.View()
	default:
		return m.menu.View()
	}
}
