package ports

import (
	"context"
	"time"

	"svw.info/sudokit/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces a completed board from a board of givens. The input board
// is never mutated; the first solution found is returned.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/column/box) and reports the
// coordinates of conflicting cells.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced move, if one exists.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
