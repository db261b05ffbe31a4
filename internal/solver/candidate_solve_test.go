package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokit/internal/domain"
	"svw.info/sudokit/internal/puzzles"
)

const solution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestCandidateSolveKnownPuzzle(t *testing.T) {
	b, err := domain.FromSymbols(givens)
	require.NoError(t, err)

	out, st, err := NewCandidateSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, solution, out.Symbols())
	assert.True(t, out.IsSolved())
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestCandidateSolveLeavesInputUntouched(t *testing.T) {
	b, err := domain.FromSymbols(givens)
	require.NoError(t, err)
	_, _, err = NewCandidateSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, givens, b.Symbols())
}

func TestCandidateSolveEmptyBoard(t *testing.T) {
	b, err := domain.FromSymbols(strings.Repeat(".", domain.Cells))
	require.NoError(t, err)

	out, _, err := NewCandidateSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, out.IsFull())
	assert.True(t, out.IsValid())
}

func TestCandidateSolveDeterministic(t *testing.T) {
	b, err := domain.FromSymbols(strings.Repeat(".", domain.Cells))
	require.NoError(t, err)

	s := NewCandidateSolver()
	first, _, err := s.Solve(context.Background(), b)
	require.NoError(t, err)
	second, _, err := s.Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, first.Symbols(), second.Symbols())
}

func TestCandidateSolvePropagationOnly(t *testing.T) {
	// blank a few cells of a complete solution: forced moves alone refill
	// them, so the search phase never has to branch
	buf := []byte(solution)
	for _, i := range []int{0, 17, 40, 63, 80} {
		buf[i] = domain.EmptyChar
	}
	b, err := domain.FromSymbols(string(buf))
	require.NoError(t, err)

	out, st, err := NewCandidateSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, solution, out.Symbols())
	assert.Zero(t, st.Nodes, "propagation-only puzzle should not branch")
}

func TestCandidateSolveContradictoryGivens(t *testing.T) {
	// two 5s in the top row: pairwise duplicate, rejected before any search
	b, err := domain.FromSymbolsLax("55" + givens[2:])
	require.NoError(t, err)

	out, _, err := NewCandidateSolver().Solve(context.Background(), b)
	assert.ErrorIs(t, err, ErrContradiction)
	assert.Nil(t, out)
	assert.Equal(t, "55"+givens[2:], b.Symbols())
}

func TestCandidateSolveInsolubleGivens(t *testing.T) {
	// row 0 holds 1..8, and the 9 that cell (8,0) would need already sits
	// lower in column 8: no duplicates anywhere, yet propagation empties
	// the corner cell
	buf := []byte(strings.Repeat(".", domain.Cells))
	copy(buf, "12345678.")
	buf[5*domain.Size+8] = '9'
	b, err := domain.FromSymbols(string(buf))
	require.NoError(t, err)

	out, _, err := NewCandidateSolver().Solve(context.Background(), b)
	assert.ErrorIs(t, err, ErrContradiction)
	assert.Nil(t, out)
}

// noCompletion is consistent and survives forced-move propagation, yet has
// no solution: the three open cells of the top row can only take 1 or 2,
// since the row givens rule out 4..9 and the 3 below rules out 3. Two
// symbols cannot fill three cells, so only the search phase can fail it.
var noCompletion = "...456789" + "3........" + strings.Repeat(".", 63)

func TestCandidateSolveExhaustsSearch(t *testing.T) {
	b, err := domain.FromSymbols(noCompletion)
	require.NoError(t, err)

	out, st, err := NewCandidateSolver().Solve(context.Background(), b)
	assert.ErrorIs(t, err, ErrUnsolvable)
	assert.Nil(t, out)
	assert.Positive(t, st.Nodes, "failure must come from the search phase")
	assert.Equal(t, noCompletion, b.Symbols())
}

func TestCandidateSolveSampleCollections(t *testing.T) {
	for _, set := range []puzzles.Set{puzzles.Easy50, puzzles.Hardest} {
		all, err := puzzles.Load(set)
		require.NoError(t, err)
		for i := 0; i < 3 && i < len(all); i++ {
			b, err := domain.FromSymbols(all[i])
			require.NoError(t, err)
			out, _, err := NewCandidateSolver().Solve(context.Background(), b)
			require.NoError(t, err, "%s:%d", set, i)
			assert.True(t, out.IsSolved(), "%s:%d", set, i)
		}
	}
}

func TestCandidateSolveCanceled(t *testing.T) {
	b, err := domain.FromSymbols(strings.Repeat(".", domain.Cells))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, _, err := NewCandidateSolver().Solve(ctx, b)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestCandidateSolveUnder1s(t *testing.T) {
	b, err := domain.FromSymbols(givens)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, st, err := NewCandidateSolver().Solve(ctx, b)
	require.NoError(t, err)
	assert.Less(t, st.Duration, time.Second)
}
