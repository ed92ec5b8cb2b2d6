// Package main implements the hanoi command: an interactive Tower of Hanoi.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/hanoi/internal/adapters/console"
	"svw.info/hanoi/internal/config"
	"svw.info/hanoi/internal/logging"
	"svw.info/hanoi/internal/ports"
	"svw.info/hanoi/internal/solver"
	"svw.info/hanoi/internal/usecase"
	"svw.info/hanoi/internal/validator"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	surrender  string
	solverKind string
	difficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Play the Tower of Hanoi in the terminal",
	Long: `hanoi is an interactive Tower of Hanoi.

Pick a difficulty (F = 3 disks, N = 5, D = 7), then move disks by typing
two peg letters: O (origin), D (destination), A (auxiliary). Enter R to
give up and watch the solver finish the puzzle.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "console|json")
	rootCmd.PersistentFlags().StringVar(&solverKind, "solver", "", "solver to use: recursive|iterative")
	rootCmd.Flags().StringVar(&surrender, "surrender", "", "what R does: resume (finish the current position) | legacy")
	rootCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "preselect F, N or D and skip the menu")
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges file, environment and the flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("solver") {
		cfg.Game.Solver = solverKind
	}
	if flags.Lookup("surrender") != nil && flags.Changed("surrender") {
		cfg.Game.Surrender = surrender
	}
	if flags.Lookup("difficulty") != nil && flags.Changed("difficulty") {
		cfg.Game.Difficulty = difficulty
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "iterative":
		return solver.NewIterativeSolver()
	default:
		return solver.NewRecursiveSolver()
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire solver -> game dependencies -> console adapter
	s := newSolver(cfg.Game.Solver)
	h := console.New(
		console.NewLineReader(cmd.InOrStdin()),
		console.NewView(cmd.OutOrStdout()),
		s, solver.NewResumer(s), validator.New(),
		logger,
		console.Options{
			Difficulty: cfg.Game.Difficulty,
			Surrender:  usecase.SurrenderMode(cfg.Game.Surrender),
		},
	)
	logger.Debug("starting", zap.String("solver", cfg.Game.Solver), zap.String("surrender", cfg.Game.Surrender))

	res, err := h.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "interrupted")
			return nil
		}
		logger.Error("session failed", zap.Error(err))
		return err
	}
	logger.Debug("finished", zap.Stringer("outcome", res.Outcome), zap.Int("moves", res.Moves), zap.Int("auto_moves", res.AutoMoves))
	return nil
}
