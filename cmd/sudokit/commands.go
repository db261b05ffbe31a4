package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokit/internal/config"
)

var (
	cfgPath      string
	flagLogLevel string
	flagSolver   string
	flagAddr     string
	flagDataDir  string
	flagTimeout  time.Duration

	cfg    config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:           "sudokit",
		Short:         "Solve, check, and serve 9x9 sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("solver") {
				cfg.Solver = flagSolver
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = flagAddr
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = flagDataDir
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLevel(cfg.LogLevel),
			}))
			return nil
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [symbols]",
		Short: "Solve one puzzle and print the result",
		Long: `Solve one puzzle and print the result.

The puzzle is an 81-character string of digits and dots ('.' = empty cell),
a sample-set reference like easy50:3 or top95:0, or '-' to read the string
from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&flagSolver, "solver", "candidates", "solver engine: candidates|backtrack")
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&flagDataDir, "data-dir", "./data", "puzzle save directory")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "abort the solve after this long")
	rootCmd.AddCommand(serveCmd, solveCmd)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
