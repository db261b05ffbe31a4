package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokit/internal/domain"
	"svw.info/sudokit/internal/puzzles"
)

// readPuzzle resolves the solve argument: a raw symbols string, a sample-set
// reference like easy50:3, or stdin.
func readPuzzle(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		sc := bufio.NewScanner(os.Stdin)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("no puzzle on stdin")
		}
		return strings.TrimSpace(sc.Text()), nil
	}
	arg := args[0]
	if set, idx, ok := strings.Cut(arg, ":"); ok && len(arg) != domain.Cells {
		n, err := strconv.Atoi(idx)
		if err != nil {
			return "", fmt.Errorf("bad sample reference %q: index must be an integer", arg)
		}
		return puzzles.Pick(puzzles.Set(set), n)
	}
	return arg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	symbols, err := readPuzzle(args)
	if err != nil {
		return err
	}
	b, err := domain.FromSymbols(symbols)
	if err != nil {
		return fmt.Errorf("bad puzzle: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	out, st, err := newSolver(cfg.Solver).Solve(ctx, b)
	if err != nil {
		return err
	}
	logger.Debug("solved", "nodes", st.Nodes, "dur", st.Duration)
	fmt.Println(out)
	fmt.Printf("\n%s  (%d nodes, %v)\n", out.Symbols(), st.Nodes, st.Duration.Round(100*time.Microsecond))
	return nil
}
