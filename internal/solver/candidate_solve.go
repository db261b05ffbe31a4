package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokit/internal/domain"
	"svw.info/sudokit/internal/ports"
)

var (
	// ErrContradiction reports givens that conflict before any search
	// begins. This is a caller contract violation, not a search outcome.
	ErrContradiction = errors.New("givens are contradictory")

	// ErrUnsolvable reports a consistent puzzle with no completion.
	ErrUnsolvable = errors.New("puzzle has no solution")
)

// CandidateSolver solves by forced-move propagation plus backtracking search
// over the cell with the fewest remaining candidates. Candidate order is
// always ascending and ties go to the first cell in row-major order, so
// identical inputs produce identical solutions.
type CandidateSolver struct{}

func NewCandidateSolver() *CandidateSolver { return &CandidateSolver{} }

// Solve returns a completed board for b's givens. b itself is never
// mutated, so on failure the caller still holds the original givens.
func (s *CandidateSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	cands, err := newCandidates(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	nodes := 0
	out, ok := search(ctx, &cands, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if ctx.Err() != nil {
			return nil, st, ctx.Err()
		}
		return nil, st, ErrUnsolvable
	}
	return out, st, nil
}

// search branches on the undetermined cell with the smallest candidate set.
// Each trial works on its own copy of the candidate state; a trial whose
// propagation empties some cell is simply skipped.
func search(ctx context.Context, c *candidates, nodes *int) (*domain.Board, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	best, bestCount := -1, domain.Size+1
	for i := 0; i < domain.Cells; i++ {
		if n := c[i].count(); n > 1 && n < bestCount {
			best, bestCount = i, n
		}
	}
	if best < 0 {
		// propagation settled every cell
		b := c.board()
		return b, b.IsSolved()
	}

	for v := domain.Symbol(1); v <= domain.Size; v++ {
		if !c[best].has(v) {
			continue
		}
		*nodes++
		branch := *c
		if !branch.assign(best, v) {
			continue
		}
		b := branch.board()
		if !b.IsValid() {
			continue
		}
		if b.IsFull() {
			return b, true
		}
		if out, ok := search(ctx, &branch, nodes); ok {
			return out, true
		}
		if ctx.Err() != nil {
			return nil, false
		}
	}
	return nil, false
}
