package main

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokit/internal/adapters/http"
	"svw.info/sudokit/internal/hint"
	"svw.info/sudokit/internal/infrastructure/storage"
	"svw.info/sudokit/internal/ports"
	"svw.info/sudokit/internal/solver"
	"svw.info/sudokit/internal/usecase"
	"svw.info/sudokit/internal/validator"
)

func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewCandidateSolver()
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	uc := usecase.NewService(
		newSolver(cfg.Solver),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(cfg.DataDir),
	)

	reg := prometheus.NewRegistry()
	h := httpadapter.New(uc).WithMetrics(httpadapter.NewMetrics(reg))
	router := httpadapter.NewRouter(logger, h, reg)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "data_dir", cfg.DataDir, "solver", cfg.Solver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
