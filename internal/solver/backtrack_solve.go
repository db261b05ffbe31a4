package solver

import (
	"context"
	"time"

	"svw.info/sudokit/internal/domain"
	"svw.info/sudokit/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if !b.IsValid() {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrContradiction
	}
	grid := b.Cells()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		x, y, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := domain.Symbol(1); v <= domain.Size; v++ {
			nodes++
			if isAllowed(&grid, x, y, v) {
				grid[y][x] = v
				if dfs() {
					return true
				}
				grid[y][x] = domain.Empty
			}
		}
		return false
	}
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !solved {
		if ctx.Err() != nil {
			return nil, st, ctx.Err()
		}
		return nil, st, ErrUnsolvable
	}
	buf := make([]byte, 0, domain.Cells)
	for y := 0; y < domain.Size; y++ {
		for x := 0; x < domain.Size; x++ {
			buf = append(buf, grid[y][x].Char())
		}
	}
	out, err := domain.FromSymbols(string(buf))
	if err != nil {
		return nil, st, err
	}
	return out, st, nil
}
