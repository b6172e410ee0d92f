// Package cmd contains the CLI commands for the termcrack tool.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/termcrack/termcrack/internal/config"
	"github.com/termcrack/termcrack/internal/dict"
	"github.com/termcrack/termcrack/internal/history"
	"github.com/termcrack/termcrack/internal/logging"
	"github.com/termcrack/termcrack/internal/puzzle"
	"github.com/termcrack/termcrack/internal/rng"
	"github.com/termcrack/termcrack/internal/solver"
	"github.com/termcrack/termcrack/internal/tui"
)

var (
	cfgFile    string
	gameFlag   string
	solverFlag string
	seedFlag   int64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termcrack [word count]...",
	Short: "Terminal password cracking game and solver",
	Long: `Termcrack is a terminal password cracking puzzle in the style of
old green-phosphor maintenance consoles.

A memory dump hides one password among a set of decoys of the same
length. Each wrong selection reveals how many characters it shares with
the password, position by position. Crack it before the console locks.

Running 'termcrack' without flags opens the menu. Use --game to jump
straight into a round, or --solver with a candidate file to narrow a
puzzle you are facing elsewhere. In solver mode, trailing word/count
pairs pre-apply known guesses.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/termcrack)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.Flags().StringVar(&gameFlag, "game", "", "start a game at the given difficulty (very-easy, easy, average, hard, very-hard)")
	rootCmd.Flags().StringVar(&solverFlag, "solver", "", "start the solver on a newline-delimited candidate file")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed the puzzle generator for a reproducible game")
	rootCmd.MarkFlagsMutuallyExclusive("game", "solver")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "termcrack"))
	}

	viper.SetEnvPrefix("TERMCRACK")
	viper.AutomaticEnv()
}

func getConfigDir() string {
	return viper.GetString("config_dir")
}

// parseGuessArgs turns trailing "word count" pairs into pre-supplied
// guesses for the solver.
func parseGuessArgs(args []string) ([]solver.Guess, error) {
	if len(args)%2 != 0 {
		return nil, errors.New("guesses must be word/count pairs")
	}

	var known []solver.Guess
	for i := 0; i < len(args); i += 2 {
		count, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("parsing match count %q: %w", args[i+1], err)
		}
		known = append(known, solver.Guess{Word: args[i], CharCount: count})
	}
	return known, nil
}

func newSource() rng.Source {
	if seedFlag != 0 {
		return rng.NewSeeded(uint64(seedFlag))
	}
	return rng.NewSystem()
}

func run(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.LogFile, viper.GetBool("verbose"))

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		logger.Warn().Err(err).Msg("history unavailable")
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	app := tui.NewApp(cfg, store, logger, newSource())

	switch {
	case gameFlag != "":
		difficulty, err := puzzle.ParseDifficulty(gameFlag)
		if err != nil {
			return err
		}
		chunk, err := dict.Load(cfg.DictDir, difficulty.WordLen())
		if err != nil {
			return fmt.Errorf("loading dictionary: %w", err)
		}
		app = app.StartedWithGame(difficulty, chunk)

	case solverFlag != "":
		known, err := parseGuessArgs(args)
		if err != nil {
			return err
		}
		solverModel, err := tui.NewSolverFromFile(solverFlag, cfg.DictDir, known)
		if err != nil {
			return err
		}
		app = app.StartedWithSolver(solverModel)

	default:
		if len(args) > 0 {
			return errors.New("word/count guesses need --solver")
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
